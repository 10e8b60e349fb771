package catalog

import (
	"context"

	"carsline/internal/domain"
)

// CustomerRepository defines the customer reference-data operations.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Deactivate(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.Customer, error)
	SearchByName(ctx context.Context, name string, limit int) ([]domain.Customer, error)
}

// VehicleRepository defines the vehicle reference-data operations.
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Deactivate(ctx context.Context, id int64) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Vehicle, error)
}

// ServiceTypeRepository defines the service-type catalog operations.
type ServiceTypeRepository interface {
	Create(ctx context.Context, st *domain.ServiceType) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceType, error)
	List(ctx context.Context) ([]domain.ServiceType, error)
}
