package get_availability

import "errors"

var (
	// ErrPackageNotFound is returned when the charter package does not exist
	ErrPackageNotFound = errors.New("get_availability: package not found")

	// ErrYachtNotFound is returned when the yacht does not exist
	ErrYachtNotFound = errors.New("get_availability: yacht not found")

	// ErrYachtNotInPackage is returned when the yacht is not part of the package's fleet
	ErrYachtNotInPackage = errors.New("get_availability: yacht does not belong to this package")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("get_availability: internal error")
)
