package inventory

import (
	"context"

	"carsline/internal/domain"
)

// PartRepository defines the persistence operations for stocked parts.
type PartRepository interface {
	Create(ctx context.Context, p *domain.Part) error
	List(ctx context.Context) ([]domain.Part, error)
	ListPaginated(ctx context.Context, search string, page, pageSize int) ([]domain.Part, int64, error)
	Autocomplete(ctx context.Context, prefix string) ([]domain.Part, error)
	GetByID(ctx context.Context, id int64) (*domain.Part, error)
	GetByPartNumber(ctx context.Context, number string) (*domain.Part, error)
	AdjustQuantity(ctx context.Context, id int64, delta int) (*domain.Part, error)
	Deactivate(ctx context.Context, id int64) error
}
