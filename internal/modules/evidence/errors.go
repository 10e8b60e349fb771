package evidence

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("evidence not found")
	ErrOrderGone   = errors.New("order not found or inactive")
	ErrFileMissing = errors.New("stored file missing")
)
