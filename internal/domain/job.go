package domain

import "time"

// JobStatus is the canonical six-state job lifecycle.
type JobStatus int

const (
	JobPending   JobStatus = 1
	JobAssigned  JobStatus = 2
	JobInProcess JobStatus = 3
	JobCompleted JobStatus = 4
	JobPaused    JobStatus = 5
	JobCancelled JobStatus = 6
)

func (s JobStatus) String() string {
	switch s {
	case JobPending:
		return "pending"
	case JobAssigned:
		return "assigned"
	case JobInProcess:
		return "in_process"
	case JobCompleted:
		return "completed"
	case JobPaused:
		return "paused"
	case JobCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further lifecycle transitions are allowed.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobCancelled
}

type Job struct {
	ID              int64      `json:"id"`
	OrderID         int64      `json:"order_id"`
	Description     string     `json:"description" validate:"required,max=1000"`
	TechnicianID    *int64     `json:"technician_id,omitempty"`
	AssignedAt      *time.Time `json:"assigned_at,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
	Instructions    string     `json:"instructions,omitempty"`
	TechComments    string     `json:"tech_comments,omitempty"`
	ForemanComments string     `json:"foreman_comments,omitempty"`
	Status          JobStatus  `json:"status"`
	PartsTotal      float64    `json:"parts_total"`
	Active          bool       `json:"active"`
	CreatedAt       time.Time  `json:"created_at"`

	Technician *User  `json:"technician,omitempty"`
	Order      *Order `json:"order,omitempty"`
}

// JobPause records one pause interval of a job.
type JobPause struct {
	ID        int64      `json:"id"`
	JobID     int64      `json:"job_id"`
	OrderID   int64      `json:"order_id"`
	Reason    string     `json:"reason" validate:"required"`
	PausedAt  time.Time  `json:"paused_at"`
	ResumedAt *time.Time `json:"resumed_at,omitempty"`
}
