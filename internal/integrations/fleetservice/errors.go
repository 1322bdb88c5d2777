package fleetservice

import "errors"

var (
	// ErrPackageNotFound is returned when the charter package does not exist
	ErrPackageNotFound = errors.New("charter package not found")

	// ErrYachtNotFound is returned when the yacht does not exist
	ErrYachtNotFound = errors.New("yacht not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("fleetservice client: internal error")

	// ErrInvalidResponse is returned on a malformed response from the service
	ErrInvalidResponse = errors.New("fleetservice client: invalid response")
)
