package create_booking

import (
	"fmt"
	"time"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	"github.com/voyagecrest/charter-booking-service/internal/integrations/fleetservice"
)

// validateRequest validates the request fields
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.PackageID == "" {
		return fmt.Errorf("%w: packageID is required", ErrInvalidInput)
	}

	if req.YachtID != nil && *req.YachtID == "" {
		return fmt.Errorf("%w: yachtID must not be empty when set", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.SlotType == "" {
		return fmt.Errorf("%w: slotType is required", ErrInvalidInput)
	}

	if req.GuestCount < 0 {
		return fmt.Errorf("%w: guestCount must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate checks that the booking date is inside the booking horizon
func validateDate(bookingDate, now time.Time, maxLookaheadDays int) error {
	day := domain.NormalizeDate(bookingDate)
	today := domain.NormalizeDate(now)

	if day.Before(today) {
		return ErrInvalidDate
	}

	maxDate := today.AddDate(0, 0, maxLookaheadDays)
	if day.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxLookaheadDays)
	}

	return nil
}

// validateYachtInPackage checks that the yacht belongs to the package's fleet
func validateYachtInPackage(pkg *fleetservice.Package, yachtID string) error {
	for _, id := range pkg.YachtIDs {
		if id == yachtID {
			return nil
		}
	}
	return ErrYachtNotInPackage
}
