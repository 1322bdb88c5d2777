package create_time_block

import "time"

// Request is the time block creation request. Leaving both PackageID and
// YachtID unset creates a global block covering the whole fleet.
type Request struct {
	StartDate time.Time
	EndDate   time.Time // inclusive
	Reason    string    // maintenance, weather, holiday, reserved, other
	PackageID *string
	YachtID   *string
	Notes     *string
	CreatedBy string // administrator identifier
}

// Response is the created time block
type Response struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	PackageID *string
	YachtID   *string
	Notes     *string
	CreatedBy string
	CreatedAt time.Time
}
