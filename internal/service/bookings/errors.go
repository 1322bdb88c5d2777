package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel is returned when the booking is not in a cancellable state
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrAccessDenied is returned when a customer touches someone else's booking
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus is returned for an unknown booking status
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
