package find_next_slot

import (
	"fmt"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	"github.com/voyagecrest/charter-booking-service/internal/integrations/fleetservice"
)

// validateRequest validates the search input
func validateRequest(req *Request, catalog domain.Catalog) error {
	if req.PackageID == "" {
		return fmt.Errorf("%w: packageID is required", ErrInvalidInput)
	}

	if req.YachtID != nil && *req.YachtID == "" {
		return fmt.Errorf("%w: yachtID must not be empty when set", ErrInvalidInput)
	}

	if req.LookaheadDays < 0 || req.LookaheadDays > domain.MaxLookaheadDays {
		return fmt.Errorf("%w: lookaheadDays must be between 0 and %d", ErrInvalidInput, domain.MaxLookaheadDays)
	}

	if req.PreferredSlotType != "" {
		if _, ok := catalog.SlotByType(req.PreferredSlotType); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSlotType, req.PreferredSlotType)
		}
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
