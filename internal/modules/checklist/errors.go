package checklist

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("checklist not found")
	ErrJobGone    = errors.New("job not found or inactive")
)
