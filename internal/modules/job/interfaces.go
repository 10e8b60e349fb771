package job

import (
	"context"

	"carsline/internal/domain"
)

// JobRepository defines the persistence operations for jobs and pauses.
type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	Save(ctx context.Context, j *domain.Job) error
	CompleteAndRecalc(ctx context.Context, j *domain.Job) error
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Job, error)
	ListByTechnician(ctx context.Context, technicianID int64, status *domain.JobStatus) ([]domain.Job, error)
	Pause(ctx context.Context, jobID, orderID int64, reason string) error
	Resume(ctx context.Context, jobID int64) error
	ListPauses(ctx context.Context, jobID int64) ([]domain.JobPause, error)
}

// OrderRepository is the slice of the order store the job service touches.
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	MarkInProcess(ctx context.Context, id int64) error
}

// UserRepository resolves actors and assignment targets.
type UserRepository interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.User, error)
}
