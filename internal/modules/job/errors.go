package job

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("job not found")
	ErrOrderClosed       = errors.New("order is not open")
	ErrForbidden         = errors.New("actor is not allowed to do this")
	ErrInvalidTransition = errors.New("invalid job status transition")
	ErrInvalidTechnician = errors.New("technician is not valid for assignment")
	ErrAlreadyAssigned   = errors.New("job already has a technician")
	ErrSameTechnician    = errors.New("job is already assigned to this technician")
	ErrNotYourJob        = errors.New("job is assigned to another technician")
)
