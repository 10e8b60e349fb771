package checklist

import (
	"context"

	"carsline/internal/domain"
)

// ChecklistRepository persists the one-per-job inspection form.
type ChecklistRepository interface {
	UpsertAndCompleteJob(ctx context.Context, c *domain.Checklist, techComments string) error
	GetByJob(ctx context.Context, jobID int64) (*domain.Checklist, error)
}

// JobRepository is the slice of the job store used to resolve the job.
type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
}
