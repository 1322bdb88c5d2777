package create_booking

import "errors"

var (
	// ErrPackageNotFound is returned when the charter package does not exist
	ErrPackageNotFound = errors.New("create_booking: package not found")

	// ErrPackageInactive is returned when the package is not open for booking
	ErrPackageInactive = errors.New("create_booking: package is not active")

	// ErrYachtNotFound is returned when the yacht does not exist
	ErrYachtNotFound = errors.New("create_booking: yacht not found")

	// ErrYachtNotInPackage is returned when the yacht is not part of the package's fleet
	ErrYachtNotInPackage = errors.New("create_booking: yacht does not belong to this package")

	// ErrUnknownSlotType is returned when the slot type is not in the catalog
	ErrUnknownSlotType = errors.New("create_booking: unknown slot type")

	// ErrInvalidDate is returned when the booking date is in the past
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture is returned when the date exceeds the booking horizon
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrDateBlocked is returned when an administrative block covers the slot
	ErrDateBlocked = errors.New("create_booking: date is blocked")

	// ErrSlotNotAvailable is returned when the slot has no remaining capacity
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrTooManyGuests is returned when the party exceeds the yacht's limit
	ErrTooManyGuests = errors.New("create_booking: guest count exceeds yacht limit")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_booking: internal error")
)
