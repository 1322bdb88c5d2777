package get_availability_range

import (
	"time"

	"github.com/voyagecrest/charter-booking-service/pkg/types"
)

// Request is the availability query for one resource over a date range
type Request struct {
	PackageID string
	YachtID   *string
	StartDate time.Time
	EndDate   time.Time // inclusive
}

// Response aggregates availability over the requested window
type Response struct {
	PackageID string
	YachtID   *string
	StartDate time.Time
	EndDate   time.Time
	Days      []Day
}

// Day is the availability of one calendar day in the window
type Day struct {
	Date          time.Time
	Slots         []Slot
	IsFullyBooked bool
}

// Slot is the availability of one catalog slot
type Slot struct {
	Type              string
	Name              string
	StartTime         *types.TimeString
	EndTime           *types.TimeString
	IsAvailable       bool
	RemainingCapacity int
}
