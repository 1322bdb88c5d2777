package get_availability_range

import (
	"fmt"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
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

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	start := domain.NormalizeDate(req.StartDate)
	end := domain.NormalizeDate(req.EndDate)

	if start.After(end) {
		return ErrInvalidRange
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > domain.MaxLookaheadDays {
		return fmt.Errorf("%w: %d days requested, limit is %d", ErrRangeTooLarge, days, domain.MaxLookaheadDays)
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
