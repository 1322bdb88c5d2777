package create_time_block

import "errors"

var (
	// ErrPackageNotFound is returned when the scoped package does not exist
	ErrPackageNotFound = errors.New("create_time_block: package not found")

	// ErrYachtNotFound is returned when the scoped yacht does not exist
	ErrYachtNotFound = errors.New("create_time_block: yacht not found")

	// ErrInvalidRange is returned when the start date is after the end date
	ErrInvalidRange = errors.New("create_time_block: invalid date range")

	// ErrInvalidReason is returned for an unknown block reason
	ErrInvalidReason = errors.New("create_time_block: invalid reason")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("create_time_block: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_time_block: internal error")
)
