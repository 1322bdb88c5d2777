package get_availability_range

import (
	"time"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	getAvailabilityRange "github.com/voyagecrest/charter-booking-service/internal/usecase/get_availability_range"
	"github.com/voyagecrest/charter-booking-service/pkg/types"
)

// AvailabilityRangeResponse HTTP response model
type AvailabilityRangeResponse struct {
	PackageID string  `json:"packageId"`
	YachtID   *string `json:"yachtId,omitempty"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Days      []Day   `json:"days"`
}

// Day is the availability of one calendar day in the window
type Day struct {
	Date          string `json:"date"`
	Slots         []Slot `json:"slots"`
	IsFullyBooked bool   `json:"isFullyBooked"`
}

// Slot is the availability of one catalog slot
type Slot struct {
	Type              string  `json:"type"`
	Name              string  `json:"name"`
	StartTime         *string `json:"startTime,omitempty"`
	EndTime           *string `json:"endTime,omitempty"`
	IsAvailable       bool    `json:"isAvailable"`
	RemainingCapacity int     `json:"remainingCapacity"`
}

// ToUseCaseRequest builds the use case request from path and query parameters
func ToUseCaseRequest(packageID, startStr, endStr string, yachtID *string) (*getAvailabilityRange.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		return nil, err
	}

	return &getAvailabilityRange.Request{
		PackageID: packageID,
		YachtID:   yachtID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getAvailabilityRange.Response) *AvailabilityRangeResponse {
	days := make([]Day, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]Slot, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = Slot{
				Type:              slot.Type,
				Name:              slot.Name,
				StartTime:         timeStringPtr(slot.StartTime),
				EndTime:           timeStringPtr(slot.EndTime),
				IsAvailable:       slot.IsAvailable,
				RemainingCapacity: slot.RemainingCapacity,
			}
		}
		days[i] = Day{
			Date:          day.Date.Format(domain.DateFormat),
			Slots:         slots,
			IsFullyBooked: day.IsFullyBooked,
		}
	}

	return &AvailabilityRangeResponse{
		PackageID: resp.PackageID,
		YachtID:   resp.YachtID,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Days:      days,
	}
}

func timeStringPtr(ts *types.TimeString) *string {
	if ts == nil {
		return nil
	}
	s := ts.String()
	return &s
}
