package domain

import "time"

// AvailableTimeSlot is the computed availability of a single catalog slot
// on a single day. It is never persisted.
type AvailableTimeSlot struct {
	TimeSlot          TimeSlot
	IsAvailable       bool
	RemainingCapacity int
}

// AvailabilityResult is the computed availability of one calendar day.
// Slots appear in catalog order.
type AvailabilityResult struct {
	Date          time.Time
	Slots         []AvailableTimeSlot
	IsFullyBooked bool
}

// NextAvailableSlot is the result of a lookahead search.
type NextAvailableSlot struct {
	Date time.Time
	Slot AvailableTimeSlot
}

// Calculator is the availability engine. It is a pure function of its
// arguments plus the immutable catalog injected at construction; it performs
// no I/O and is safe for concurrent use without locking.
//
// A Calculator verdict is a decision, not a reservation: callers that intend
// to write a booking must re-run the check inside the storage layer's
// serializable transaction, otherwise two callers can both see a free slot
// and over-book it.
type Calculator struct {
	catalog Catalog
}

// NewCalculator creates a calculator over the given slot catalog.
func NewCalculator(catalog Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

// Catalog returns the calculator's slot catalog.
func (c *Calculator) Catalog() Catalog {
	return c.catalog
}

// ComputeAvailability computes per-slot availability for one resource on one
// calendar day. The date is normalized to the start of day; bookings and
// blocks may be unfiltered supersets, the calculator narrows them itself.
// A non-positive capacity means no slot can ever be available.
func (c *Calculator) ComputeAvailability(
	date time.Time,
	packageID string,
	yachtID *string,
	bookings []*Booking,
	blocks []*TimeBlock,
	capacity int,
) AvailabilityResult {
	day := NormalizeDate(date)

	if capacity < 0 {
		capacity = 0
	}

	relevantBookings := c.relevantBookings(day, packageID, yachtID, bookings)
	relevantBlocks := c.relevantBlocks(day, packageID, yachtID, blocks)

	slots := make([]AvailableTimeSlot, 0, c.catalog.Len())
	fullyBooked := true

	for _, slot := range c.catalog.slots {
		available := c.computeSlot(day, slot, relevantBookings, relevantBlocks, capacity)
		if available.IsAvailable {
			fullyBooked = false
		}
		slots = append(slots, available)
	}

	return AvailabilityResult{
		Date:          day,
		Slots:         slots,
		IsFullyBooked: fullyBooked,
	}
}

// ComputeAvailabilityRange computes availability for every calendar day from
// startDate to endDate inclusive. Each day is computed independently; an
// inverted range yields an empty result.
func (c *Calculator) ComputeAvailabilityRange(
	startDate, endDate time.Time,
	packageID string,
	yachtID *string,
	bookings []*Booking,
	blocks []*TimeBlock,
	capacity int,
) []AvailabilityResult {
	start := NormalizeDate(startDate)
	end := NormalizeDate(endDate)

	results := make([]AvailabilityResult, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		results = append(results, c.ComputeAvailability(day, packageID, yachtID, bookings, blocks, capacity))
	}

	return results
}

// FindNextAvailable scans lookaheadDays days starting at startDate (day 0)
// and returns the first bookable day/slot combination. When a preferred slot
// type is given, the whole window is scanned for that slot first; only when
// no day offers it does the search fall back to the first available slot in
// catalog order on the earliest day with any availability.
//
// The second return value is false when the window holds no available slot.
// That is an expected outcome, not an error.
func (c *Calculator) FindNextAvailable(
	startDate time.Time,
	lookaheadDays int,
	packageID string,
	yachtID *string,
	bookings []*Booking,
	blocks []*TimeBlock,
	capacity int,
	preferredSlotType string,
) (*NextAvailableSlot, bool) {
	start := NormalizeDate(startDate)

	if preferredSlotType != "" {
		for i := 0; i < lookaheadDays; i++ {
			day := start.AddDate(0, 0, i)
			result := c.ComputeAvailability(day, packageID, yachtID, bookings, blocks, capacity)

			for _, slot := range result.Slots {
				if slot.TimeSlot.Type == preferredSlotType && slot.IsAvailable {
					return &NextAvailableSlot{Date: day, Slot: slot}, true
				}
			}
		}
	}

	for i := 0; i < lookaheadDays; i++ {
		day := start.AddDate(0, 0, i)
		result := c.ComputeAvailability(day, packageID, yachtID, bookings, blocks, capacity)

		for _, slot := range result.Slots {
			if slot.IsAvailable {
				return &NextAvailableSlot{Date: day, Slot: slot}, true
			}
		}
	}

	return nil, false
}

// relevantBookings narrows the candidate set to capacity-occupying bookings
// of the queried resource on the target day.
func (c *Calculator) relevantBookings(day time.Time, packageID string, yachtID *string, bookings []*Booking) []*Booking {
	relevant := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if !b.CountsTowardCapacity() {
			continue
		}
		if !b.OnDate(day) {
			continue
		}
		if !b.matchesResource(packageID, yachtID) {
			continue
		}
		relevant = append(relevant, b)
	}
	return relevant
}

// relevantBlocks narrows the candidate set to blocks whose scope covers the
// queried resource and whose date range touches the target day.
func (c *Calculator) relevantBlocks(day time.Time, packageID string, yachtID *string, blocks []*TimeBlock) []*TimeBlock {
	relevant := make([]*TimeBlock, 0, len(blocks))
	for _, blk := range blocks {
		if !blk.appliesTo(packageID, yachtID) {
			continue
		}
		if !blk.containsDate(day) {
			continue
		}
		relevant = append(relevant, blk)
	}
	return relevant
}

// computeSlot resolves a single slot: a covering block wins outright,
// otherwise remaining capacity is the configured capacity minus overlapping
// bookings, floored at zero.
func (c *Calculator) computeSlot(day time.Time, slot TimeSlot, bookings []*Booking, blocks []*TimeBlock, capacity int) AvailableTimeSlot {
	for _, blk := range blocks {
		if blk.encompassesSlot(day, slot) {
			return AvailableTimeSlot{
				TimeSlot:          slot,
				IsAvailable:       false,
				RemainingCapacity: 0,
			}
		}
	}

	overlapping := 0
	for _, b := range bookings {
		if b.TimeSlot == nil {
			continue
		}
		if b.TimeSlot.Overlaps(slot) {
			overlapping++
		}
	}

	remaining := capacity - overlapping
	if remaining < 0 {
		remaining = 0
	}

	return AvailableTimeSlot{
		TimeSlot:          slot,
		IsAvailable:       remaining > 0,
		RemainingCapacity: remaining,
	}
}
