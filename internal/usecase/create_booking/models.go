package create_booking

import (
	"time"

	"github.com/voyagecrest/charter-booking-service/pkg/types"
)

// Request is the booking creation request
type Request struct {
	CustomerID int64
	PackageID  string
	YachtID    *string // optional, pins the booking to one vessel
	Date       time.Time
	SlotType   string // catalog slot key, e.g. "morning"
	GuestCount int    // 0 = default party of one
	Notes      *string
}

// Response is the created booking
type Response struct {
	ID         string
	CustomerID int64
	PackageID  string
	YachtID    *string
	Date       time.Time
	SlotType   string
	SlotName   string
	StartTime  *types.TimeString
	EndTime    *types.TimeString
	GuestCount int
	Status     string

	// Denormalized package and yacht data
	PackageName  string
	PackagePrice float64
	YachtName    *string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
