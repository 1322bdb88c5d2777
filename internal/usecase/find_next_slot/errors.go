package find_next_slot

import "errors"

var (
	// ErrPackageNotFound is returned when the charter package does not exist
	ErrPackageNotFound = errors.New("find_next_slot: package not found")

	// ErrYachtNotFound is returned when the yacht does not exist
	ErrYachtNotFound = errors.New("find_next_slot: yacht not found")

	// ErrYachtNotInPackage is returned when the yacht is not part of the package's fleet
	ErrYachtNotInPackage = errors.New("find_next_slot: yacht does not belong to this package")

	// ErrUnknownSlotType is returned when the preferred slot type is not in the catalog
	ErrUnknownSlotType = errors.New("find_next_slot: unknown preferred slot type")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("find_next_slot: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("find_next_slot: internal error")
)
