package partline

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("part line not found")
	ErrJobClosed  = errors.New("job no longer accepts part changes")
)
