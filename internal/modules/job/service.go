package job

import (
	"context"
	"errors"
	"time"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	jobs   JobRepository
	orders OrderRepository
	users  UserRepository
}

func NewService(jobs JobRepository, orders OrderRepository, users UserRepository) *Service {
	return &Service{
		jobs:   jobs,
		orders: orders,
		users:  users,
	}
}

// Add appends a job to an open order. Passing a technician id assigns it
// immediately.
func (s *Service) Add(ctx context.Context, orderID int64, req AddJobRequest) (*domain.Job, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !o.Active || !o.IsOpen() {
		return nil, ErrOrderClosed
	}

	if req.TechnicianID != nil {
		if err := s.checkTechnician(ctx, *req.TechnicianID); err != nil {
			return nil, err
		}
	}

	j := &domain.Job{
		OrderID:      orderID,
		Description:  req.Description,
		Instructions: req.Instructions,
		TechnicianID: req.TechnicianID,
	}
	if err := s.jobs.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Assign hands a pending job to a technician. Only the foreman assigns work.
func (s *Service) Assign(ctx context.Context, actorID, jobID, technicianID int64) (*domain.Job, error) {
	if err := s.checkForeman(ctx, actorID); err != nil {
		return nil, err
	}

	j, err := s.getActive(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != domain.JobPending {
		return nil, ErrInvalidTransition
	}
	if j.TechnicianID != nil {
		return nil, ErrAlreadyAssigned
	}
	if err := s.checkTechnician(ctx, technicianID); err != nil {
		return nil, err
	}

	now := time.Now()
	j.TechnicianID = &technicianID
	j.AssignedAt = &now
	j.Status = domain.JobAssigned
	if err := s.jobs.Save(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Reassign moves a not-yet-started job to a different technician, resetting
// the assignment clock.
func (s *Service) Reassign(ctx context.Context, actorID, jobID, technicianID int64) (*domain.Job, error) {
	if err := s.checkForeman(ctx, actorID); err != nil {
		return nil, err
	}

	j, err := s.getActive(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != domain.JobPending && j.Status != domain.JobAssigned {
		return nil, ErrInvalidTransition
	}
	// reassign replaces an existing assignment; an unassigned job takes Assign
	if j.TechnicianID == nil {
		return nil, ErrInvalidTransition
	}
	if *j.TechnicianID == technicianID {
		return nil, ErrSameTechnician
	}
	if err := s.checkTechnician(ctx, technicianID); err != nil {
		return nil, err
	}

	now := time.Now()
	j.TechnicianID = &technicianID
	j.AssignedAt = &now
	j.StartedAt = nil
	j.Status = domain.JobAssigned
	if err := s.jobs.Save(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Start is the assigned technician picking the job up. The first start on an
// order also moves the order itself into process.
func (s *Service) Start(ctx context.Context, actorID, jobID int64) (*domain.Job, error) {
	j, err := s.getActive(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.TechnicianID == nil || *j.TechnicianID != actorID {
		return nil, ErrNotYourJob
	}
	if j.Status != domain.JobAssigned {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	j.StartedAt = &now
	j.Status = domain.JobInProcess
	if err := s.jobs.Save(ctx, j); err != nil {
		return nil, err
	}
	if err := s.orders.MarkInProcess(ctx, j.OrderID); err != nil {
		return nil, err
	}
	return j, nil
}

// Complete finishes an in-process job and stores the technician's comments.
func (s *Service) Complete(ctx context.Context, actorID, jobID int64, comments string) (*domain.Job, error) {
	j, err := s.getActive(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.TechnicianID == nil || *j.TechnicianID != actorID {
		return nil, ErrNotYourJob
	}
	if j.Status != domain.JobInProcess {
		return nil, ErrInvalidTransition
	}

	j.TechComments = comments
	if err := s.jobs.CompleteAndRecalc(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Pause suspends an in-process job with a mandatory reason.
func (s *Service) Pause(ctx context.Context, actorID, jobID int64, reason string) (*domain.Job, error) {
	if reason == "" {
		return nil, ErrValidation
	}
	j, err := s.getActive(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.TechnicianID == nil || *j.TechnicianID != actorID {
		return nil, ErrNotYourJob
	}
	if j.Status != domain.JobInProcess {
		return nil, ErrInvalidTransition
	}

	if err := s.jobs.Pause(ctx, jobID, j.OrderID, reason); err != nil {
		return nil, err
	}
	j.Status = domain.JobPaused
	return j, nil
}

// Resume puts a paused job back in process.
func (s *Service) Resume(ctx context.Context, actorID, jobID int64) (*domain.Job, error) {
	j, err := s.getActive(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.TechnicianID == nil || *j.TechnicianID != actorID {
		return nil, ErrNotYourJob
	}
	if j.Status != domain.JobPaused {
		return nil, ErrInvalidTransition
	}

	if err := s.jobs.Resume(ctx, jobID); err != nil {
		return nil, err
	}
	j.Status = domain.JobInProcess
	return j, nil
}

// MyQueue lists a technician's active jobs, optionally filtered by status.
func (s *Service) MyQueue(ctx context.Context, technicianID int64, status *domain.JobStatus) ([]domain.Job, error) {
	return s.jobs.ListByTechnician(ctx, technicianID, status)
}

func (s *Service) ListByOrder(ctx context.Context, orderID int64) ([]domain.Job, error) {
	return s.jobs.ListByOrder(ctx, orderID)
}

func (s *Service) ListPauses(ctx context.Context, jobID int64) ([]domain.JobPause, error) {
	return s.jobs.ListPauses(ctx, jobID)
}

func (s *Service) getActive(ctx context.Context, jobID int64) (*domain.Job, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !j.Active {
		return nil, ErrNotFound
	}
	return j, nil
}

func (s *Service) checkForeman(ctx context.Context, actorID int64) error {
	u, err := s.users.GetActiveByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrForbidden
		}
		return err
	}
	if !u.IsForeman() && u.RoleID != domain.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

func (s *Service) checkTechnician(ctx context.Context, technicianID int64) error {
	u, err := s.users.GetActiveByID(ctx, technicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidTechnician
		}
		return err
	}
	if !u.IsTechnician() {
		return ErrInvalidTechnician
	}
	return nil
}
