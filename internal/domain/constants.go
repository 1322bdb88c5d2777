package domain

// Default configuration values
const (
	DefaultMaxLookaheadDays = 60
	DefaultGuestCount       = 1
)

// Business validation constants
const (
	MinLookaheadDays = 1
	MaxLookaheadDays = 365
	MaxNotesLength   = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists the statuses excluded from capacity and conflict
// accounting.
var InactiveStatuses = []BookingStatus{
	StatusDraft,
	StatusCancelled,
}
