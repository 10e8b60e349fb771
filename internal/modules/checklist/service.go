package checklist

import (
	"context"
	"errors"

	"carsline/internal/domain"
	"carsline/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	checklists ChecklistRepository
	jobs       JobRepository
}

func NewService(checklists ChecklistRepository, jobs JobRepository) *Service {
	return &Service{checklists: checklists, jobs: jobs}
}

// Submit writes the inspection form for a job, creating it or overwriting
// every field of an earlier submission, and completes the job in the same
// stroke. The form is the technician's sign-off; submitting it again
// re-stamps completion.
func (s *Service) Submit(ctx context.Context, jobID int64, req SubmitRequest) (*domain.Checklist, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobGone
		}
		return nil, err
	}
	if !j.Active {
		return nil, ErrJobGone
	}

	c := req.Checklist
	c.JobID = jobID
	c.OrderID = j.OrderID
	if c.JobDesc == "" {
		c.JobDesc = j.Description
	}
	if fields := validator.Validate(c); fields != nil {
		return nil, ErrValidation
	}

	if err := s.checklists.UpsertAndCompleteJob(ctx, &c, req.TechComments); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) GetByJob(ctx context.Context, jobID int64) (*domain.Checklist, error) {
	c, err := s.checklists.GetByJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
