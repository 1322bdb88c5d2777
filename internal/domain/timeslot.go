package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrPartialSlotTimes is returned when only some of the four slot time
	// fields are set. A slot is either fully timed or fully untimed.
	ErrPartialSlotTimes = errors.New("time slot must set all four time fields or none")

	// ErrInvalidSlotTimes is returned when slot times are out of range or
	// the window is empty.
	ErrInvalidSlotTimes = errors.New("invalid time slot window")
)

// TimeSlot is an immutable named daily time window a resource can be booked
// in. A slot without time fields represents a whole-day ("untimed") slot.
type TimeSlot struct {
	Type string // short machine key, e.g. "morning"
	Name string // display label

	StartHour   *int
	StartMinute *int
	EndHour     *int
	EndMinute   *int
}

// NewTimedSlot creates a slot with an explicit [start, end) window.
func NewTimedSlot(slotType, name string, startHour, startMinute, endHour, endMinute int) (TimeSlot, error) {
	if startHour < 0 || startHour > 23 || endHour < 0 || endHour > 24 ||
		startMinute < 0 || startMinute > 59 || endMinute < 0 || endMinute > 59 {
		return TimeSlot{}, fmt.Errorf("%w: %02d:%02d-%02d:%02d", ErrInvalidSlotTimes, startHour, startMinute, endHour, endMinute)
	}

	start := startHour*60 + startMinute
	end := endHour*60 + endMinute
	if end <= start {
		return TimeSlot{}, fmt.Errorf("%w: end %02d:%02d is not after start %02d:%02d",
			ErrInvalidSlotTimes, endHour, endMinute, startHour, startMinute)
	}

	return TimeSlot{
		Type:        slotType,
		Name:        name,
		StartHour:   &startHour,
		StartMinute: &startMinute,
		EndHour:     &endHour,
		EndMinute:   &endMinute,
	}, nil
}

// NewUntimedSlot creates a whole-day slot identified only by its type.
func NewUntimedSlot(slotType, name string) TimeSlot {
	return TimeSlot{Type: slotType, Name: name}
}

// NewTimeSlot builds a slot from optional time fields, enforcing the
// all-or-none invariant.
func NewTimeSlot(slotType, name string, startHour, startMinute, endHour, endMinute *int) (TimeSlot, error) {
	set := 0
	for _, f := range []*int{startHour, startMinute, endHour, endMinute} {
		if f != nil {
			set++
		}
	}

	switch set {
	case 0:
		return NewUntimedSlot(slotType, name), nil
	case 4:
		return NewTimedSlot(slotType, name, *startHour, *startMinute, *endHour, *endMinute)
	default:
		return TimeSlot{}, fmt.Errorf("%w: slot %q has %d of 4 time fields", ErrPartialSlotTimes, slotType, set)
	}
}

// HasTime reports whether the slot carries an explicit time window.
func (s TimeSlot) HasTime() bool {
	return s.StartHour != nil && s.StartMinute != nil && s.EndHour != nil && s.EndMinute != nil
}

// startMinutes returns the window start as minutes since midnight.
// Only valid when HasTime is true.
func (s TimeSlot) startMinutes() int {
	return *s.StartHour*60 + *s.StartMinute
}

// endMinutes returns the window end as minutes since midnight.
// Only valid when HasTime is true.
func (s TimeSlot) endMinutes() int {
	return *s.EndHour*60 + *s.EndMinute
}

// Overlaps reports whether two slots contend for the same time.
// Timed slots overlap when either slot's start falls inside the other's
// [start, end) window. When either slot is untimed the comparison is
// nominal: slots overlap iff their type keys are equal.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	if !s.HasTime() || !other.HasTime() {
		return s.Type == other.Type
	}

	sStart, sEnd := s.startMinutes(), s.endMinutes()
	oStart, oEnd := other.startMinutes(), other.endMinutes()

	return (sStart >= oStart && sStart < oEnd) || (oStart >= sStart && oStart < sEnd)
}

// String returns a short human-readable description of the slot.
func (s TimeSlot) String() string {
	if !s.HasTime() {
		return fmt.Sprintf("%s (all day)", s.Type)
	}
	return fmt.Sprintf("%s (%02d:%02d-%02d:%02d)", s.Type, *s.StartHour, *s.StartMinute, *s.EndHour, *s.EndMinute)
}
