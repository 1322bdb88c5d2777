package get_availability

import (
	"time"

	"github.com/voyagecrest/charter-booking-service/pkg/types"
)

// Request is the availability query for one resource on one day
type Request struct {
	PackageID string    // charter package id
	YachtID   *string   // optional, narrows the query to one yacht
	Date      time.Time // calendar day, time of day is ignored
}

// Response is the computed availability of one day
type Response struct {
	Date          time.Time
	PackageID     string
	YachtID       *string
	Slots         []Slot
	IsFullyBooked bool
}

// Slot is the availability of one catalog slot
type Slot struct {
	Type              string
	Name              string
	StartTime         *types.TimeString // nil for untimed slots
	EndTime           *types.TimeString
	IsAvailable       bool
	RemainingCapacity int
}
