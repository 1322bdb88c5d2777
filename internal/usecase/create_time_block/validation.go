package create_time_block

import (
	"fmt"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
)

// validateRequest validates the request fields
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.Reason == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}

	if req.CreatedBy == "" {
		return fmt.Errorf("%w: createdBy is required", ErrInvalidInput)
	}

	if req.PackageID != nil && *req.PackageID == "" {
		return fmt.Errorf("%w: packageID must not be empty when set", ErrInvalidInput)
	}

	if req.YachtID != nil && *req.YachtID == "" {
		return fmt.Errorf("%w: yachtID must not be empty when set", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
