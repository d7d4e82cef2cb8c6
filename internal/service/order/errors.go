package order

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidStatus  = errors.New("invalid order status")

	ErrOrderNotFound    = errors.New("order not found")
	ErrTireNotFound     = errors.New("tire not found")
	ErrTireNotAvailable = errors.New("tire is not available")
)
