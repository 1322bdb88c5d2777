package find_next_slot

import (
	"time"

	"github.com/voyagecrest/charter-booking-service/pkg/types"
)

// Request is the search for the earliest bookable slot
type Request struct {
	PackageID         string
	YachtID           *string
	StartDate         time.Time // zero value = search from today
	LookaheadDays     int       // 0 = configured default window
	PreferredSlotType string    // optional, e.g. "morning"
}

// Response is the search result. Found=false with no error means the whole
// window is booked out.
type Response struct {
	Found     bool
	PackageID string
	YachtID   *string
	Date      *time.Time
	Slot      *Slot
}

// Slot is the found catalog slot
type Slot struct {
	Type              string
	Name              string
	StartTime         *types.TimeString
	EndTime           *types.TimeString
	RemainingCapacity int
}
