package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagecrest/charter-booking-service/pkg/ptr"
)

func testCalculator(t *testing.T) *Calculator {
	t.Helper()
	return NewCalculator(DefaultCatalog())
}

func testBooking(t *testing.T, id string, day time.Time, slotType string, status BookingStatus) *Booking {
	t.Helper()

	b := &Booking{
		ID:          id,
		CustomerID:  1,
		PackageID:   "P1",
		BookingDate: day,
		Status:      status,
	}
	if slotType != "" {
		slot, ok := DefaultCatalog().SlotByType(slotType)
		require.True(t, ok, "unknown slot type %q", slotType)
		b.TimeSlot = &slot
	}
	return b
}

func slotByType(t *testing.T, result AvailabilityResult, slotType string) AvailableTimeSlot {
	t.Helper()
	for _, s := range result.Slots {
		if s.TimeSlot.Type == slotType {
			return s
		}
	}
	t.Fatalf("slot %q not in result", slotType)
	return AvailableTimeSlot{}
}

func TestComputeAvailability_EmptyDay(t *testing.T) {
	calc := testCalculator(t)
	day := date(2025, time.April, 1)

	result := calc.ComputeAvailability(day, "P1", nil, nil, nil, 2)

	assert.Equal(t, day, result.Date)
	assert.False(t, result.IsFullyBooked)
	require.Len(t, result.Slots, 4)
	for _, s := range result.Slots {
		assert.True(t, s.IsAvailable)
		assert.Equal(t, 2, s.RemainingCapacity)
	}
}

func TestComputeAvailability_SingleBookingOccupiesMorning(t *testing.T) {
	calc := testCalculator(t)
	day := date(2025, time.April, 1)

	bookings := []*Booking{testBooking(t, "b1", day, "morning", StatusConfirmed)}
	result := calc.ComputeAvailability(day, "P1", nil, bookings, nil, 1)

	morning := slotByType(t, result, "morning")
	assert.False(t, morning.IsAvailable)
	assert.Equal(t, 0, morning.RemainingCapacity)

	afternoon := slotByType(t, result, "afternoon")
	assert.True(t, afternoon.IsAvailable)
	assert.Equal(t, 1, afternoon.RemainingCapacity)

	evening := slotByType(t, result, "evening")
	assert.True(t, evening.IsAvailable)

	// the full-day slot overlaps the morning booking
	fullDay := slotByType(t, result, "full_day")
	assert.False(t, fullDay.IsAvailable)

	assert.False(t, result.IsFullyBooked)
}

func TestComputeAvailability_CancelledAndDraftIgnored(t *testing.T) {
	calc := testCalculator(t)
	day := date(2025, time.April, 1)

	for _, status := range []BookingStatus{StatusCancelled, StatusDraft} {
		bookings := []*Booking{testBooking(t, "b1", day, "morning", status)}
		result := calc.ComputeAvailability(day, "P1", nil, bookings, nil, 1)

		morning := slotByType(t, result, "morning")
		assert.True(t, morning.IsAvailable, "status %s must not occupy capacity", status)
		assert.Equal(t, 1, morning.RemainingCapacity)
	}
}

func TestComputeAvailability_CapacityInvariant(t *testing.T) {
	calc := testCalculator(t)
	day := date(2025, time.April, 1)

	// three overlapping bookings against capacity 2: remaining must floor at 0
	bookings := []*Booking{
		testBooking(t, "b1", day, "morning", StatusConfirmed),
		testBooking(t, "b2", day, "morning", StatusConfirmed),
		testBooking(t, "b3", day, "morning", StatusPending),
	}

	for _, capacity := range []int{0, 1, 2, 5, -3} {
		result := calc.ComputeAvailability(day, "P1", nil, bookings, nil, capacity)
		for _, s := range result.Slots {
			assert.GreaterOrEqual(t, s.RemainingCapacity, 0)
			if capacity > 0 {
				assert.LessOrEqual(t, s.RemainingCapacity, capacity)
			}
			assert.Equal(t, s.RemainingCapacity > 0, s.IsAvailable)
		}
	}
}

func TestComputeAvailability_ZeroCapacityFullyBooked(t *testing.T) {
	calc := testCalculator(t)
	day := date(2025, time.April, 1)

	result := calc.ComputeAvailability(day, "P1", nil, nil, nil, 0)

	assert.True(t, result.IsFullyBooked)
	for _, s := range result.Slots {
		assert.False(t, s.IsAvailable)
		assert.Equal(t, 0, s.RemainingCapacity)
	}
}

func TestComputeAvailability_DateNormalization(t *testing.T) {
	calc := testCalculator(t)

	bookings := []*Booking{
		// booking stored with a noon timestamp, still counts for the day
		testBooking(t, "b1", time.Date(2025, time.April, 1, 12, 30, 0, 0, time.UTC), "morning", StatusConfirmed),
	}

	late := calc.ComputeAvailability(time.Date(2025, time.April, 1, 23, 59, 0, 0, time.UTC), "P1", nil, bookings, nil, 1)
	early := calc.ComputeAvailability(time.Date(2025, time.April, 1, 0, 0, 1, 0, time.UTC), "P1", nil, bookings, nil, 1)

	assert.Equal(t, late, early)
	assert.Equal(t, date(2025, time.April, 1), late.Date)
}

func TestComputeAvailability_ResourceMatching(t *testing.T) {
	calc := testCalculator(t)
	day := date(2025, time.April, 1)

	otherPackage := testBooking(t, "b1", day, "morning", StatusConfirmed)
	otherPackage.PackageID = "P2"
	otherPackage.YachtID = ptr.Ptr("Y1")

	// a booking on another package does not affect P1
	result := calc.ComputeAvailability(day, "P1", nil, []*Booking{otherPackage}, nil, 1)
	assert.True(t, slotByType(t, result, "morning").IsAvailable)

	// but it does when the query targets the same yacht
	result = calc.ComputeAvailability(day, "P1", ptr.Ptr("Y1"), []*Booking{otherPackage}, nil, 1)
	assert.False(t, slotByType(t, result, "morning").IsAvailable)
}

func TestComputeAvailability_BlockDominance(t *testing.T) {
	calc := testCalculator(t)
	day := date(2025, time.April, 1)

	block, err := NewTimeBlock("blk-1", day, day, BlockReasonWeather, "admin-7", nil, nil, nil)
	require.NoError(t, err)

	// no bookings at all, plenty of capacity: the block still wins
	result := calc.ComputeAvailability(day, "P1", nil, nil, []*TimeBlock{block}, 10)

	assert.True(t, result.IsFullyBooked)
	for _, s := range result.Slots {
		assert.False(t, s.IsAvailable)
		assert.Equal(t, 0, s.RemainingCapacity)
	}
}

func TestComputeAvailability_YachtScopedBlockSpansDays(t *testing.T) {
	calc := testCalculator(t)

	block, err := NewTimeBlock("blk-1",
		date(2025, time.April, 1), date(2025, time.April, 3),
		BlockReasonMaintenance, "admin-7", nil, ptr.Ptr("Y1"), nil)
	require.NoError(t, err)
	blocks := []*TimeBlock{block}

	for d := 1; d <= 3; d++ {
		day := date(2025, time.April, d)

		blocked := calc.ComputeAvailability(day, "P1", ptr.Ptr("Y1"), nil, blocks, 2)
		assert.True(t, blocked.IsFullyBooked, "Y1 must be blocked on day %d", d)

		unaffected := calc.ComputeAvailability(day, "P1", ptr.Ptr("Y2"), nil, blocks, 2)
		assert.False(t, unaffected.IsFullyBooked, "Y2 must be unaffected on day %d", d)
	}

	after := calc.ComputeAvailability(date(2025, time.April, 4), "P1", ptr.Ptr("Y1"), nil, blocks, 2)
	assert.False(t, after.IsFullyBooked)
}

func TestComputeAvailability_FullyBookedInvariant(t *testing.T) {
	calc := testCalculator(t)
	day := date(2025, time.April, 1)

	bookings := []*Booking{
		testBooking(t, "b1", day, "morning", StatusConfirmed),
		testBooking(t, "b2", day, "afternoon", StatusConfirmed),
		testBooking(t, "b3", day, "evening", StatusConfirmed),
	}

	result := calc.ComputeAvailability(day, "P1", nil, bookings, nil, 1)

	// every slot (incl. full_day, which overlaps all three) is unavailable
	for _, s := range result.Slots {
		assert.False(t, s.IsAvailable)
	}
	assert.True(t, result.IsFullyBooked)

	// freeing one slot flips the flag
	result = calc.ComputeAvailability(day, "P1", nil, bookings[:2], nil, 1)
	assert.False(t, result.IsFullyBooked)
}

func TestComputeAvailabilityRange(t *testing.T) {
	calc := testCalculator(t)
	start := date(2025, time.April, 1)
	end := date(2025, time.April, 5)

	bookings := []*Booking{testBooking(t, "b1", date(2025, time.April, 3), "morning", StatusConfirmed)}

	results := calc.ComputeAvailabilityRange(start, end, "P1", nil, bookings, nil, 1)

	require.Len(t, results, 5)
	for i, r := range results {
		assert.Equal(t, start.AddDate(0, 0, i), r.Date)
	}

	// the booking affects only its own day
	assert.True(t, slotByType(t, results[1], "morning").IsAvailable)
	assert.False(t, slotByType(t, results[2], "morning").IsAvailable)
	assert.True(t, slotByType(t, results[3], "morning").IsAvailable)
}

func TestComputeAvailabilityRange_SingleDayEqualsSingleCall(t *testing.T) {
	calc := testCalculator(t)
	day := date(2025, time.April, 1)

	bookings := []*Booking{testBooking(t, "b1", day, "evening", StatusConfirmed)}

	ranged := calc.ComputeAvailabilityRange(day, day, "P1", nil, bookings, nil, 2)
	single := calc.ComputeAvailability(day, "P1", nil, bookings, nil, 2)

	require.Len(t, ranged, 1)
	assert.Equal(t, single, ranged[0])
}

func TestComputeAvailabilityRange_InvertedRangeIsEmpty(t *testing.T) {
	calc := testCalculator(t)

	results := calc.ComputeAvailabilityRange(
		date(2025, time.April, 5), date(2025, time.April, 1), "P1", nil, nil, nil, 1)

	assert.Empty(t, results)
}

func fullyBookDays(t *testing.T, start time.Time, days int) []*Booking {
	t.Helper()

	bookings := make([]*Booking, 0)
	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		for _, slotType := range []string{"morning", "afternoon", "evening"} {
			id := fmt.Sprintf("b-%s-%s", day.Format("0102"), slotType)
			bookings = append(bookings, testBooking(t, id, day, slotType, StatusConfirmed))
		}
	}
	return bookings
}

func TestFindNextAvailable_SkipsFullDays(t *testing.T) {
	calc := testCalculator(t)
	start := date(2025, time.April, 1)

	// days 0-3 fully booked, day 4 free
	bookings := fullyBookDays(t, start, 4)

	next, found := calc.FindNextAvailable(start, 5, "P1", nil, bookings, nil, 1, "")
	require.True(t, found)
	assert.Equal(t, start.AddDate(0, 0, 4), next.Date)
	assert.Equal(t, "morning", next.Slot.TimeSlot.Type) // first in catalog order

	// a window that stops short of day 4 finds nothing
	_, found = calc.FindNextAvailable(start, 4, "P1", nil, bookings, nil, 1, "")
	assert.False(t, found)
}

func TestFindNextAvailable_PreferredSlotBeatsCatalogOrder(t *testing.T) {
	calc := testCalculator(t)
	start := date(2025, time.April, 1)

	// evening is free today; morning is taken
	bookings := []*Booking{testBooking(t, "b1", start, "morning", StatusConfirmed)}

	next, found := calc.FindNextAvailable(start, 7, "P1", nil, bookings, nil, 1, "evening")
	require.True(t, found)
	assert.Equal(t, start, next.Date)
	assert.Equal(t, "evening", next.Slot.TimeSlot.Type)
}

func TestFindNextAvailable_PreferredScansWholeWindowFirst(t *testing.T) {
	calc := testCalculator(t)
	start := date(2025, time.April, 1)

	// morning taken on day 0 only; preference for morning lands on day 1
	// even though day 0 has other slots free
	bookings := []*Booking{testBooking(t, "b1", start, "morning", StatusConfirmed)}

	next, found := calc.FindNextAvailable(start, 7, "P1", nil, bookings, nil, 1, "morning")
	require.True(t, found)
	assert.Equal(t, start.AddDate(0, 0, 1), next.Date)
	assert.Equal(t, "morning", next.Slot.TimeSlot.Type)
}

func TestFindNextAvailable_PreferenceFallsBackToCatalogOrder(t *testing.T) {
	calc := testCalculator(t)
	start := date(2025, time.April, 1)

	// an unknown preferred type can never match: fall back to first free slot
	next, found := calc.FindNextAvailable(start, 3, "P1", nil, nil, nil, 1, "midnight")
	require.True(t, found)
	assert.Equal(t, start, next.Date)
	assert.Equal(t, "morning", next.Slot.TimeSlot.Type)
}

func TestFindNextAvailable_SearchBounds(t *testing.T) {
	calc := testCalculator(t)
	start := date(2025, time.April, 1)

	next, found := calc.FindNextAvailable(start, 10, "P1", nil, nil, nil, 1, "")
	require.True(t, found)
	assert.False(t, next.Date.Before(start))
	assert.False(t, next.Date.After(start.AddDate(0, 0, 9)))

	// zero-length window: nothing to find
	_, found = calc.FindNextAvailable(start, 0, "P1", nil, nil, nil, 1, "")
	assert.False(t, found)
}

func TestFindNextAvailable_NotFoundOnZeroCapacity(t *testing.T) {
	calc := testCalculator(t)

	_, found := calc.FindNextAvailable(date(2025, time.April, 1), 30, "P1", nil, nil, nil, 0, "")
	assert.False(t, found)
}
