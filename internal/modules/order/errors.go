package order

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("order not found")
	ErrVehicleMismatch = errors.New("vehicle does not belong to customer")
	ErrOrderClosed     = errors.New("order is not open")
	ErrJobsOutstanding = errors.New("order has unfinished jobs")
	ErrNumberExhausted = errors.New("could not claim an order number")
)
