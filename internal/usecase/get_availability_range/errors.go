package get_availability_range

import "errors"

var (
	// ErrPackageNotFound is returned when the charter package does not exist
	ErrPackageNotFound = errors.New("get_availability_range: package not found")

	// ErrYachtNotFound is returned when the yacht does not exist
	ErrYachtNotFound = errors.New("get_availability_range: yacht not found")

	// ErrYachtNotInPackage is returned when the yacht is not part of the package's fleet
	ErrYachtNotInPackage = errors.New("get_availability_range: yacht does not belong to this package")

	// ErrInvalidRange is returned when the date range is inverted
	ErrInvalidRange = errors.New("get_availability_range: start date is after end date")

	// ErrRangeTooLarge is returned when the window exceeds the allowed span
	ErrRangeTooLarge = errors.New("get_availability_range: date range is too large")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("get_availability_range: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("get_availability_range: internal error")
)
