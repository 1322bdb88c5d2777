package timeblocks

import "errors"

var (
	// ErrBlockNotFound is returned when the time block does not exist
	ErrBlockNotFound = errors.New("time block not found")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
