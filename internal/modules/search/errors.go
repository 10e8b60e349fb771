package search

import "errors"

var ErrQueryTooShort = errors.New("query must have at least 3 characters")
