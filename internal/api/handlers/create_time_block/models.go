package create_time_block

import (
	"time"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	createTimeBlock "github.com/voyagecrest/charter-booking-service/internal/usecase/create_time_block"
)

// CreateTimeBlockRequest HTTP request model
type CreateTimeBlockRequest struct {
	StartDate string  `json:"startDate"` // "2025-10-15"
	EndDate   string  `json:"endDate"`   // inclusive
	Reason    string  `json:"reason"`
	PackageID *string `json:"packageId,omitempty"`
	YachtID   *string `json:"yachtId,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CreatedBy string  `json:"createdBy"`
}

// TimeBlockResponse HTTP response model
type TimeBlockResponse struct {
	ID        string  `json:"id"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Reason    string  `json:"reason"`
	PackageID *string `json:"packageId,omitempty"`
	YachtID   *string `json:"yachtId,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CreatedBy string  `json:"createdBy"`
	CreatedAt string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateTimeBlockRequest) ToUseCaseRequest() (*createTimeBlock.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createTimeBlock.Request{
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    r.Reason,
		PackageID: r.PackageID,
		YachtID:   r.YachtID,
		Notes:     r.Notes,
		CreatedBy: r.CreatedBy,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createTimeBlock.Response) *TimeBlockResponse {
	return &TimeBlockResponse{
		ID:        resp.ID,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Reason:    resp.Reason,
		PackageID: resp.PackageID,
		YachtID:   resp.YachtID,
		Notes:     resp.Notes,
		CreatedBy: resp.CreatedBy,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
