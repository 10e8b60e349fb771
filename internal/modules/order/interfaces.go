package order

import (
	"context"

	"carsline/internal/domain"
)

// OrderRepository defines the persistence operations the order service needs.
type OrderRepository interface {
	CreateWithJobs(ctx context.Context, o *domain.Order, jobs []domain.Job) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetDetail(ctx context.Context, id int64) (*domain.Order, error)
	ListOpen(ctx context.Context, typeID, advisorID int64) ([]domain.Order, error)
	Deliver(ctx context.Context, id int64) (int, error)
	Cancel(ctx context.Context, id int64) error
}

// CustomerRepository is the slice of the customer store used for validation.
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// VehicleRepository is the slice of the vehicle store used for validation.
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}
