package get_availability

import (
	"time"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	getAvailability "github.com/voyagecrest/charter-booking-service/internal/usecase/get_availability"
	"github.com/voyagecrest/charter-booking-service/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date          string  `json:"date"`
	PackageID     string  `json:"packageId"`
	YachtID       *string `json:"yachtId,omitempty"`
	Slots         []Slot  `json:"slots"`
	IsFullyBooked bool    `json:"isFullyBooked"`
}

// Slot is the availability of one catalog slot
type Slot struct {
	Type              string  `json:"type"`
	Name              string  `json:"name"`
	StartTime         *string `json:"startTime,omitempty"` // "08:00", absent for untimed slots
	EndTime           *string `json:"endTime,omitempty"`
	IsAvailable       bool    `json:"isAvailable"`
	RemainingCapacity int     `json:"remainingCapacity"`
}

// ToUseCaseRequest builds the use case request from path and query parameters
func ToUseCaseRequest(packageID, dateStr string, yachtID *string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		PackageID: packageID,
		YachtID:   yachtID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Type:              slot.Type,
			Name:              slot.Name,
			StartTime:         timeStringPtr(slot.StartTime),
			EndTime:           timeStringPtr(slot.EndTime),
			IsAvailable:       slot.IsAvailable,
			RemainingCapacity: slot.RemainingCapacity,
		}
	}

	return &AvailabilityResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		PackageID:     resp.PackageID,
		YachtID:       resp.YachtID,
		Slots:         slots,
		IsFullyBooked: resp.IsFullyBooked,
	}
}

func timeStringPtr(ts *types.TimeString) *string {
	if ts == nil {
		return nil
	}
	s := ts.String()
	return &s
}
