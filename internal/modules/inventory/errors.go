package inventory

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("part not found")
	ErrDuplicate    = errors.New("part number already exists")
	ErrInsufficient = errors.New("not enough stock")
)
