package partline

import (
	"context"

	"carsline/internal/domain"
)

// PartLineRepository defines the persistence operations for the per-job
// parts ledger.
type PartLineRepository interface {
	AddBatch(ctx context.Context, jobID, orderID int64, lines []domain.PartLine) error
	GetByID(ctx context.Context, id int64) (*domain.PartLine, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.PartLine, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.PartLine, error)
	Delete(ctx context.Context, id int64) error
}

// JobRepository is the slice of the job store used for state guards.
type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
}
