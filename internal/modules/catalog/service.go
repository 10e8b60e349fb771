package catalog

import (
	"context"
	"errors"
	"strings"

	"carsline/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	customers    CustomerRepository
	vehicles     VehicleRepository
	serviceTypes ServiceTypeRepository
}

func NewService(customers CustomerRepository, vehicles VehicleRepository, serviceTypes ServiceTypeRepository) *Service {
	return &Service{
		customers:    customers,
		vehicles:     vehicles,
		serviceTypes: serviceTypes,
	}
}

/* ---------- customers ---------- */

func (s *Service) CreateCustomer(ctx context.Context, req CustomerRequest) (*domain.Customer, error) {
	c := customerFromRequest(req)
	c.Active = true
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id int64, req CustomerRequest) (*domain.Customer, error) {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return nil, err
	}
	c := customerFromRequest(req)
	c.ID = id
	c.Active = true
	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id int64) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customers.Deactivate(ctx, id)
}

func (s *Service) ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.customers.List(ctx, limit, offset)
}

func (s *Service) SearchCustomers(ctx context.Context, name string, limit int) ([]domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.customers.SearchByName(ctx, name, limit)
}

func (s *Service) CustomerVehicles(ctx context.Context, customerID int64) ([]domain.Vehicle, error) {
	if _, err := s.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	return s.vehicles.ListByCustomer(ctx, customerID)
}

func customerFromRequest(req CustomerRequest) *domain.Customer {
	return &domain.Customer{
		FullName:     req.FullName,
		TaxID:        req.TaxID,
		MobilePhone:  req.MobilePhone,
		HomePhone:    req.HomePhone,
		Email:        req.Email,
		Street:       req.Street,
		ExteriorNo:   req.ExteriorNo,
		Neighborhood: req.Neighborhood,
		Municipality: req.Municipality,
		State:        req.State,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
	}
}

/* ---------- vehicles ---------- */

func (s *Service) CreateVehicle(ctx context.Context, req VehicleRequest) (*domain.Vehicle, error) {
	if _, err := s.GetCustomer(ctx, req.CustomerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	v := vehicleFromRequest(req)
	v.Active = true
	if err := s.vehicles.Create(ctx, v); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateVIN
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) UpdateVehicle(ctx context.Context, id int64, req VehicleRequest) (*domain.Vehicle, error) {
	if _, err := s.GetVehicle(ctx, id); err != nil {
		return nil, err
	}
	v := vehicleFromRequest(req)
	v.ID = id
	v.Active = true
	if err := s.vehicles.Update(ctx, v); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateVIN
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) DeleteVehicle(ctx context.Context, id int64) error {
	if _, err := s.GetVehicle(ctx, id); err != nil {
		return err
	}
	return s.vehicles.Deactivate(ctx, id)
}

func vehicleFromRequest(req VehicleRequest) *domain.Vehicle {
	return &domain.Vehicle{
		CustomerID: req.CustomerID,
		VIN:        strings.ToUpper(strings.TrimSpace(req.VIN)),
		Make:       req.Make,
		Model:      req.Model,
		Version:    req.Version,
		Year:       req.Year,
		Color:      req.Color,
		Plates:     req.Plates,
		InitialKm:  req.InitialKm,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

/* ---------- service types ---------- */

func (s *Service) CreateServiceType(ctx context.Context, req ServiceTypeRequest) (*domain.ServiceType, error) {
	st := &domain.ServiceType{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Active:      true,
	}
	if err := s.serviceTypes.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error) {
	return s.serviceTypes.List(ctx)
}
