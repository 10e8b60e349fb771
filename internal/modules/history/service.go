package history

import (
	"context"
	"errors"
	"time"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

// OrderHistoryRepository reads past orders of a vehicle.
type OrderHistoryRepository interface {
	HistoryByVehicle(ctx context.Context, vehicleID int64, since time.Time) ([]domain.Order, error)
	AllHistoryByVehicle(ctx context.Context, vehicleID int64, since time.Time) ([]domain.Order, error)
}

// VehicleRepository resolves the vehicle the history belongs to.
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleHistory is the history view: the vehicle, its orders of the last
// year and a summary of the most recent delivered service.
type VehicleHistory struct {
	Vehicle       *domain.Vehicle `json:"vehicle"`
	Orders        []domain.Order  `json:"orders"`
	LastServiceAt *time.Time      `json:"last_service_at,omitempty"`
	LastServiceKm int             `json:"last_service_km,omitempty"`
}

type Service struct {
	orders   OrderHistoryRepository
	vehicles VehicleRepository
}

func NewService(orders OrderHistoryRepository, vehicles VehicleRepository) *Service {
	return &Service{orders: orders, vehicles: vehicles}
}

// ByVehicle returns the delivered service orders of the last twelve calendar
// months, newest first.
func (s *Service) ByVehicle(ctx context.Context, vehicleID int64) (*VehicleHistory, error) {
	v, err := s.resolveVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.HistoryByVehicle(ctx, vehicleID, cutoff())
	if err != nil {
		return nil, err
	}

	h := &VehicleHistory{Vehicle: v, Orders: orders}
	if len(orders) > 0 {
		// repository returns newest first
		h.LastServiceAt = orders[0].DeliveredAt
		h.LastServiceKm = orders[0].CurrentKm
	}
	return h, nil
}

// GeneralByVehicle returns every order of the last twelve calendar months,
// any type or status, newest first.
func (s *Service) GeneralByVehicle(ctx context.Context, vehicleID int64) (*VehicleHistory, error) {
	v, err := s.resolveVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.AllHistoryByVehicle(ctx, vehicleID, cutoff())
	if err != nil {
		return nil, err
	}
	return &VehicleHistory{Vehicle: v, Orders: orders}, nil
}

func (s *Service) resolveVehicle(ctx context.Context, vehicleID int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

// cutoff is twelve calendar months back, not a fixed day count.
func cutoff() time.Time {
	return time.Now().AddDate(-1, 0, 0)
}
