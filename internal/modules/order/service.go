package order

import (
	"context"
	"errors"

	"carsline/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	orders    OrderRepository
	customers CustomerRepository
	vehicles  VehicleRepository
}

func NewService(orders OrderRepository, customers CustomerRepository, vehicles VehicleRepository) *Service {
	return &Service{
		orders:    orders,
		customers: customers,
		vehicles:  vehicles,
	}
}

// Create validates the customer/vehicle pair and persists the order with its
// initial jobs atomically. The order number is claimed inside the same
// transaction; if a concurrent creation wins the race on the unique index we
// retry once with a freshly scanned sequence.
func (s *Service) Create(ctx context.Context, advisorID int64, req CreateOrderRequest) (*domain.Order, error) {
	if len(req.Jobs) == 0 {
		return nil, ErrValidation
	}

	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}
	v, err := s.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}
	if v.CustomerID != req.CustomerID {
		return nil, ErrVehicleMismatch
	}

	o := &domain.Order{
		TypeID:           req.TypeID,
		CustomerID:       req.CustomerID,
		VehicleID:        req.VehicleID,
		AdvisorID:        advisorID,
		ServiceTypeID:    req.ServiceTypeID,
		CurrentKm:        req.CurrentKm,
		PromisedDelivery: req.PromisedDelivery,
		AdvisorComments:  req.AdvisorComments,
	}
	jobs := make([]domain.Job, 0, len(req.Jobs))
	for _, j := range req.Jobs {
		jobs = append(jobs, domain.Job{
			Description:  j.Description,
			Instructions: j.Instructions,
		})
	}

	err = s.orders.CreateWithJobs(ctx, o, jobs)
	if isOrderNumberConflict(err) {
		err = s.orders.CreateWithJobs(ctx, o, jobs)
		if isOrderNumberConflict(err) {
			return nil, ErrNumberExhausted
		}
	}
	if err != nil {
		return nil, err
	}
	o.Jobs = jobs
	return o, nil
}

func isOrderNumberConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "idx_orders_order_number"
	}
	return false
}

// ListOpen returns the shop-floor queue for one order type. advisorID zero
// means the unfiltered foreman view.
func (s *Service) ListOpen(ctx context.Context, typeID, advisorID int64) ([]domain.Order, error) {
	if typeID == 0 {
		typeID = domain.OrderTypeService
	}
	return s.orders.ListOpen(ctx, typeID, advisorID)
}

func (s *Service) GetDetail(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := s.orders.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// Deliver closes the order for handover. Returns the outstanding job count
// with ErrJobsOutstanding when any active job is not yet completed.
func (s *Service) Deliver(ctx context.Context, id int64) (int, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	if !o.Active || !o.IsOpen() {
		return 0, ErrOrderClosed
	}

	outstanding, err := s.orders.Deliver(ctx, id)
	if err != nil {
		return 0, err
	}
	if outstanding > 0 {
		return outstanding, ErrJobsOutstanding
	}
	return 0, nil
}

// Cancel is unconditional for open orders: the order goes inactive and its
// still-pending jobs are force-cancelled. Work already assigned or done is
// left as the record of what happened.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !o.Active || !o.IsOpen() {
		return ErrOrderClosed
	}
	return s.orders.Cancel(ctx, id)
}
