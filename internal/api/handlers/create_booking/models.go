package create_booking

import (
	"time"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	createBooking "github.com/voyagecrest/charter-booking-service/internal/usecase/create_booking"
	"github.com/voyagecrest/charter-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID int64   `json:"customerId"`
	PackageID  string  `json:"packageId"`
	YachtID    *string `json:"yachtId,omitempty"`
	Date       string  `json:"date"`     // "2025-10-15"
	SlotType   string  `json:"slotType"` // "morning"
	GuestCount int     `json:"guestCount,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         string  `json:"id"`
	CustomerID int64   `json:"customerId"`
	PackageID  string  `json:"packageId"`
	YachtID    *string `json:"yachtId,omitempty"`
	Date       string  `json:"date"`
	SlotType   string  `json:"slotType"`
	SlotName   string  `json:"slotName"`
	StartTime  *string `json:"startTime,omitempty"`
	EndTime    *string `json:"endTime,omitempty"`
	GuestCount int     `json:"guestCount"`
	Status     string  `json:"status"`

	PackageName  string  `json:"packageName"`
	PackagePrice float64 `json:"packagePrice"`
	YachtName    *string `json:"yachtName,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID: r.CustomerID,
		PackageID:  r.PackageID,
		YachtID:    r.YachtID,
		Date:       date,
		SlotType:   r.SlotType,
		GuestCount: r.GuestCount,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		CustomerID:   resp.CustomerID,
		PackageID:    resp.PackageID,
		YachtID:      resp.YachtID,
		Date:         resp.Date.Format(domain.DateFormat),
		SlotType:     resp.SlotType,
		SlotName:     resp.SlotName,
		StartTime:    timeStringPtr(resp.StartTime),
		EndTime:      timeStringPtr(resp.EndTime),
		GuestCount:   resp.GuestCount,
		Status:       resp.Status,
		PackageName:  resp.PackageName,
		PackagePrice: resp.PackagePrice,
		YachtName:    resp.YachtName,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}

func timeStringPtr(ts *types.TimeString) *string {
	if ts == nil {
		return nil
	}
	s := ts.String()
	return &s
}
