package evidence

import (
	"context"

	"carsline/internal/domain"
)

// EvidenceRepository persists the photo rows.
type EvidenceRepository interface {
	CreateBatch(ctx context.Context, items []*domain.Evidence) error
	GetByID(ctx context.Context, id int64) (*domain.Evidence, error)
	ListByOrder(ctx context.Context, orderID int64, isWork *bool) ([]domain.Evidence, error)
	SoftDelete(ctx context.Context, id int64) error
}

// OrderRepository resolves the order whose folder the files land in.
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}
