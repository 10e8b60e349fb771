package search

import (
	"context"

	"carsline/internal/domain"
)

// OrderSearcher matches orders by number substring.
type OrderSearcher interface {
	SearchByNumber(ctx context.Context, number string, limit int) ([]domain.Order, error)
}

// VehicleSearcher matches vehicles by VIN suffix.
type VehicleSearcher interface {
	SearchByVINSuffix(ctx context.Context, suffix string, limit int) ([]domain.Vehicle, error)
}

// CustomerSearcher matches customers by name substring.
type CustomerSearcher interface {
	SearchByName(ctx context.Context, name string, limit int) ([]domain.Customer, error)
}
