package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusDraft      BookingStatus = "draft"
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// Booking represents a charter booking in the system
type Booking struct {
	ID          string
	CustomerID  int64
	PackageID   string
	YachtID     *string // nil when the booking is not tied to a specific yacht
	BookingDate time.Time
	TimeSlot    *TimeSlot // nil means whole-resource, no slot-level contention
	GuestCount  int
	Status      BookingStatus

	// Denormalized data for history
	PackageName  string
	PackagePrice float64
	YachtName    *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsTowardCapacity reports whether the booking occupies capacity.
// Cancelled bookings and unfinished drafts do not.
func (b *Booking) CountsTowardCapacity() bool {
	return b.Status != StatusCancelled && b.Status != StatusDraft
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// OnDate reports whether the booking falls on the given calendar day.
// Time-of-day components on either side are ignored.
func (b *Booking) OnDate(date time.Time) bool {
	return NormalizeDate(b.BookingDate).Equal(NormalizeDate(date))
}

// matchesResource reports whether the booking belongs to the queried
// resource: same package, or same yacht when a yacht is specified.
func (b *Booking) matchesResource(packageID string, yachtID *string) bool {
	if b.PackageID == packageID {
		return true
	}
	if yachtID != nil && b.YachtID != nil && *b.YachtID == *yachtID {
		return true
	}
	return false
}

// ResourceFilter selects bookings for a package and optionally a yacht
// within a date window.
type ResourceFilter struct {
	PackageID       string
	YachtID         *string    // nil = all yachts of the package
	StartDate       *time.Time // nil = no lower bound
	EndDate         *time.Time // nil = no upper bound
	Status          *BookingStatus
	IncludeInactive bool // include cancelled and draft bookings
}

// NormalizeDate truncates a timestamp to the start of its calendar day.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of the timestamp's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second)-1, t.Location())
}
