package get_availability

import (
	"fmt"

	"github.com/voyagecrest/charter-booking-service/internal/integrations/fleetservice"
)

// validateRequest validates the query input
func validateRequest(req *Request) error {
	if req.PackageID == "" {
		return fmt.Errorf("%w: packageID is required", ErrInvalidInput)
	}

	if req.YachtID != nil && *req.YachtID == "" {
		return fmt.Errorf("%w: yachtID must not be empty when set", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
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
