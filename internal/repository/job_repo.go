package repository

import (
	"context"
	"time"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

type jobModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	OrderID         int64      `gorm:"column:order_id;index"`
	Description     string     `gorm:"column:description;type:text"`
	TechnicianID    *int64     `gorm:"column:technician_id;index"`
	AssignedAt      *time.Time `gorm:"column:assigned_at"`
	StartedAt       *time.Time `gorm:"column:started_at"`
	FinishedAt      *time.Time `gorm:"column:finished_at"`
	Instructions    *string    `gorm:"column:instructions;type:text"`
	TechComments    *string    `gorm:"column:tech_comments;type:text"`
	ForemanComments *string    `gorm:"column:foreman_comments;type:text"`
	Status          int        `gorm:"column:status"`
	PartsTotal      float64    `gorm:"column:parts_total"`
	Active          bool       `gorm:"column:active"`
	CreatedAt       time.Time  `gorm:"column:created_at"`

	Technician *userModel `gorm:"foreignKey:TechnicianID"`
}

func (jobModel) TableName() string { return "jobs" }

type jobPauseModel struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	JobID     int64      `gorm:"column:job_id;index"`
	OrderID   int64      `gorm:"column:order_id;index"`
	Reason    string     `gorm:"column:reason;type:text"`
	PausedAt  time.Time  `gorm:"column:paused_at"`
	ResumedAt *time.Time `gorm:"column:resumed_at"`
}

func (jobPauseModel) TableName() string { return "job_pauses" }

func toDomainJob(m jobModel) *domain.Job {
	j := &domain.Job{
		ID:              m.ID,
		OrderID:         m.OrderID,
		Description:     m.Description,
		TechnicianID:    m.TechnicianID,
		AssignedAt:      m.AssignedAt,
		StartedAt:       m.StartedAt,
		FinishedAt:      m.FinishedAt,
		Instructions:    strOrEmpty(m.Instructions),
		TechComments:    strOrEmpty(m.TechComments),
		ForemanComments: strOrEmpty(m.ForemanComments),
		Status:          domain.JobStatus(m.Status),
		PartsTotal:      m.PartsTotal,
		Active:          m.Active,
		CreatedAt:       m.CreatedAt,
	}
	if m.Technician != nil {
		j.Technician = toDomainUser(*m.Technician)
	}
	return j
}

func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := jobModel{
			OrderID:      j.OrderID,
			Description:  j.Description,
			TechnicianID: j.TechnicianID,
			Instructions: strOrNil(j.Instructions),
			Status:       int(domain.JobPending),
			Active:       true,
			CreatedAt:    time.Now(),
		}
		if m.TechnicianID != nil {
			now := m.CreatedAt
			m.AssignedAt = &now
			m.Status = int(domain.JobAssigned)
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		j.ID = m.ID
		j.Status = domain.JobStatus(m.Status)
		j.AssignedAt = m.AssignedAt
		j.Active = true
		j.CreatedAt = m.CreatedAt

		// a new job dilutes the order's completion percentage
		return recalcOrderProgress(tx, j.OrderID)
	})
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	var m jobModel
	if err := r.db.WithContext(ctx).Preload("Technician").First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainJob(m), nil
}

// Save persists lifecycle fields mutated by the assignment state machine.
func (r *JobRepository) Save(ctx context.Context, j *domain.Job) error {
	updates := map[string]interface{}{
		"technician_id":    j.TechnicianID,
		"assigned_at":      j.AssignedAt,
		"started_at":       j.StartedAt,
		"finished_at":      j.FinishedAt,
		"tech_comments":    strOrNil(j.TechComments),
		"foreman_comments": strOrNil(j.ForemanComments),
		"status":           int(j.Status),
	}
	return r.db.WithContext(ctx).Model(&jobModel{}).Where("id = ?", j.ID).Updates(updates).Error
}

// CompleteAndRecalc marks the job completed and refreshes the order's
// progress in one transaction.
func (r *JobRepository) CompleteAndRecalc(ctx context.Context, j *domain.Job) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		updates := map[string]interface{}{
			"status":        int(domain.JobCompleted),
			"finished_at":   now,
			"tech_comments": strOrNil(j.TechComments),
		}
		if err := tx.Model(&jobModel{}).Where("id = ?", j.ID).Updates(updates).Error; err != nil {
			return err
		}
		j.Status = domain.JobCompleted
		j.FinishedAt = &now
		return recalcOrderProgress(tx, j.OrderID)
	})
}

func (r *JobRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.Job, error) {
	var rows []jobModel
	err := r.db.WithContext(ctx).
		Preload("Technician").
		Where("order_id = ? AND active = ?", orderID, true).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Job, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainJob(m))
	}
	return out, nil
}

// ListByTechnician returns a technician's active jobs, optionally filtered
// by status, ordered by status then age (the work queue view).
func (r *JobRepository) ListByTechnician(ctx context.Context, technicianID int64, status *domain.JobStatus) ([]domain.Job, error) {
	q := r.db.WithContext(ctx).
		Where("technician_id = ? AND active = ?", technicianID, true)
	if status != nil {
		q = q.Where("status = ?", int(*status))
	}

	var rows []jobModel
	if err := q.Order("status").Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Job, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainJob(m))
	}
	return out, nil
}

// Pause sets the job paused and opens a pause record atomically.
func (r *JobRepository) Pause(ctx context.Context, jobID, orderID int64, reason string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&jobModel{}).Where("id = ?", jobID).
			Update("status", int(domain.JobPaused)).Error; err != nil {
			return err
		}
		p := jobPauseModel{
			JobID:    jobID,
			OrderID:  orderID,
			Reason:   reason,
			PausedAt: time.Now(),
		}
		return tx.Create(&p).Error
	})
}

// Resume puts the job back in process and closes its open pause record.
func (r *JobRepository) Resume(ctx context.Context, jobID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&jobModel{}).Where("id = ?", jobID).
			Update("status", int(domain.JobInProcess)).Error; err != nil {
			return err
		}
		now := time.Now()
		return tx.Model(&jobPauseModel{}).
			Where("job_id = ? AND resumed_at IS NULL", jobID).
			Update("resumed_at", now).Error
	})
}

func (r *JobRepository) ListPauses(ctx context.Context, jobID int64) ([]domain.JobPause, error) {
	var rows []jobPauseModel
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("paused_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.JobPause, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.JobPause{
			ID:        m.ID,
			JobID:     m.JobID,
			OrderID:   m.OrderID,
			Reason:    m.Reason,
			PausedAt:  m.PausedAt,
			ResumedAt: m.ResumedAt,
		})
	}
	return out, nil
}
