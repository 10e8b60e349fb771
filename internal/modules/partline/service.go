package partline

import (
	"context"
	"errors"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	lines PartLineRepository
	jobs  JobRepository
}

func NewService(lines PartLineRepository, jobs JobRepository) *Service {
	return &Service{lines: lines, jobs: jobs}
}

// Add books a batch of parts against a job. Completed and cancelled jobs no
// longer take charges.
func (s *Service) Add(ctx context.Context, jobID int64, req AddLinesRequest) ([]domain.PartLine, error) {
	if len(req.Lines) == 0 {
		return nil, ErrValidation
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !j.Active || j.Status.Terminal() {
		return nil, ErrJobClosed
	}

	lines := make([]domain.PartLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, domain.PartLine{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	if err := s.lines.AddBatch(ctx, jobID, j.OrderID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Service) ListByJob(ctx context.Context, jobID int64) ([]domain.PartLine, error) {
	return s.lines.ListByJob(ctx, jobID)
}

func (s *Service) ListByOrder(ctx context.Context, orderID int64) ([]domain.PartLine, error) {
	return s.lines.ListByOrder(ctx, orderID)
}

// Delete removes a charged line. Charges on a completed job are frozen; a
// cancelled job may still shed charges that will never be billed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	line, err := s.lines.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	j, err := s.jobs.GetByID(ctx, line.JobID)
	if err != nil {
		return err
	}
	if j.Status == domain.JobCompleted {
		return ErrJobClosed
	}

	return s.lines.Delete(ctx, id)
}
