package catalog

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateVIN = errors.New("vin already registered")
)
