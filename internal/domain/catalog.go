package domain

// Catalog is the ordered set of time slots a deployment offers.
// It is built once at startup and never mutated; changing slot definitions
// means constructing a new Calculator with a new Catalog.
type Catalog struct {
	slots []TimeSlot
}

// NewCatalog creates a catalog from the given slots, preserving order.
// The slice is copied so later modifications by the caller cannot leak in.
func NewCatalog(slots []TimeSlot) Catalog {
	copied := make([]TimeSlot, len(slots))
	copy(copied, slots)
	return Catalog{slots: copied}
}

// DefaultCatalog returns the standard charter day: morning, afternoon,
// evening and a full-day slot spanning all three.
func DefaultCatalog() Catalog {
	morning, _ := NewTimedSlot("morning", "Morning Charter", 8, 0, 12, 0)
	afternoon, _ := NewTimedSlot("afternoon", "Afternoon Charter", 12, 0, 16, 0)
	evening, _ := NewTimedSlot("evening", "Evening Charter", 16, 0, 20, 0)
	fullDay, _ := NewTimedSlot("full_day", "Full Day Charter", 8, 0, 20, 0)

	return NewCatalog([]TimeSlot{morning, afternoon, evening, fullDay})
}

// Slots returns the catalog's slots in order. The returned slice is a copy.
func (c Catalog) Slots() []TimeSlot {
	copied := make([]TimeSlot, len(c.slots))
	copy(copied, c.slots)
	return copied
}

// Len returns the number of slots in the catalog.
func (c Catalog) Len() int {
	return len(c.slots)
}

// SlotByType looks up a slot by its type key.
func (c Catalog) SlotByType(slotType string) (TimeSlot, bool) {
	for _, s := range c.slots {
		if s.Type == slotType {
			return s, true
		}
	}
	return TimeSlot{}, false
}
