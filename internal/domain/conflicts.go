package domain

// ConflictResult is the outcome of a booking-conflict check. It lists every
// colliding booking, not only the first one found.
type ConflictResult struct {
	HasConflict    bool
	ConflictingIDs []string
}

// CheckConflicts decides whether a prospective booking collides with any of
// the existing bookings for the same resource and day.
//
// A prospective booking without a time slot never conflicts: absence of a
// slot means whole-resource usage with no slot-level contention modeled.
func CheckConflicts(prospective *Booking, existing []*Booking) ConflictResult {
	result := ConflictResult{ConflictingIDs: make([]string, 0)}

	if prospective == nil || prospective.TimeSlot == nil {
		return result
	}

	for _, b := range existing {
		if b.ID == prospective.ID {
			continue
		}
		if !b.CountsTowardCapacity() {
			continue
		}
		if !b.matchesResource(prospective.PackageID, prospective.YachtID) {
			continue
		}
		if !b.OnDate(prospective.BookingDate) {
			continue
		}
		if b.TimeSlot == nil {
			continue
		}
		if b.TimeSlot.Overlaps(*prospective.TimeSlot) {
			result.ConflictingIDs = append(result.ConflictingIDs, b.ID)
		}
	}

	result.HasConflict = len(result.ConflictingIDs) > 0
	return result
}
