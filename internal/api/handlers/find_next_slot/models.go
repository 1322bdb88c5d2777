package find_next_slot

import (
	"strconv"
	"time"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	findNextSlot "github.com/voyagecrest/charter-booking-service/internal/usecase/find_next_slot"
	"github.com/voyagecrest/charter-booking-service/pkg/types"
)

// NextSlotResponse HTTP response model
type NextSlotResponse struct {
	Found     bool    `json:"found"`
	PackageID string  `json:"packageId"`
	YachtID   *string `json:"yachtId,omitempty"`
	Date      *string `json:"date,omitempty"`
	Slot      *Slot   `json:"slot,omitempty"`
}

// Slot is the found catalog slot
type Slot struct {
	Type              string  `json:"type"`
	Name              string  `json:"name"`
	StartTime         *string `json:"startTime,omitempty"`
	EndTime           *string `json:"endTime,omitempty"`
	RemainingCapacity int     `json:"remainingCapacity"`
}

// ToUseCaseRequest builds the use case request from path and query parameters.
// fromStr and lookaheadStr may be empty, the use case applies its defaults.
func ToUseCaseRequest(packageID, fromStr, lookaheadStr, preferredSlot string, yachtID *string) (*findNextSlot.Request, error) {
	var startDate time.Time
	if fromStr != "" {
		parsed, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		startDate = parsed
	}

	var lookaheadDays int
	if lookaheadStr != "" {
		parsed, err := strconv.Atoi(lookaheadStr)
		if err != nil {
			return nil, err
		}
		lookaheadDays = parsed
	}

	return &findNextSlot.Request{
		PackageID:         packageID,
		YachtID:           yachtID,
		StartDate:         startDate,
		LookaheadDays:     lookaheadDays,
		PreferredSlotType: preferredSlot,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *findNextSlot.Response) *NextSlotResponse {
	out := &NextSlotResponse{
		Found:     resp.Found,
		PackageID: resp.PackageID,
		YachtID:   resp.YachtID,
	}

	if resp.Date != nil {
		date := resp.Date.Format(domain.DateFormat)
		out.Date = &date
	}

	if resp.Slot != nil {
		out.Slot = &Slot{
			Type:              resp.Slot.Type,
			Name:              resp.Slot.Name,
			StartTime:         timeStringPtr(resp.Slot.StartTime),
			EndTime:           timeStringPtr(resp.Slot.EndTime),
			RemainingCapacity: resp.Slot.RemainingCapacity,
		}
	}

	return out
}

func timeStringPtr(ts *types.TimeString) *string {
	if ts == nil {
		return nil
	}
	s := ts.String()
	return &s
}
