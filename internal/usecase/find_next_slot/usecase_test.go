package find_next_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	"github.com/voyagecrest/charter-booking-service/internal/integrations/fleetservice"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetForResource(_ context.Context, _ domain.ResourceFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeBlockRepo struct {
	blocks []*domain.TimeBlock
}

func (f *fakeBlockRepo) GetForResource(_ context.Context, _ string, _ *string, _, _ time.Time) ([]*domain.TimeBlock, error) {
	return f.blocks, nil
}

type fakeFleetClient struct {
	pkg *fleetservice.Package
}

func (f *fakeFleetClient) GetPackage(_ context.Context, id string) (*fleetservice.Package, error) {
	if f.pkg == nil || f.pkg.ID != id {
		return nil, fleetservice.ErrPackageNotFound
	}
	return f.pkg, nil
}

func (f *fakeFleetClient) GetYacht(_ context.Context, _ string) (*fleetservice.Yacht, error) {
	return nil, fleetservice.ErrYachtNotFound
}

type fakeTime struct{ now time.Time }

func (f *fakeTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings []*domain.Booking, blocks []*domain.TimeBlock, capacity int, now time.Time) *UseCase {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeBlockRepo{blocks: blocks},
		&fakeFleetClient{pkg: &fleetservice.Package{ID: "P1", Name: "Coastal", Capacity: capacity, IsActive: true}},
		domain.NewCalculator(domain.DefaultCatalog()),
		domain.DefaultMaxLookaheadDays,
		nopLogger{},
	)
	uc.timeProvider = &fakeTime{now: now}
	return uc
}

func bookAllSlots(day time.Time) []*domain.Booking {
	bookings := make([]*domain.Booking, 0)
	for _, slot := range domain.DefaultCatalog().Slots() {
		s := slot
		bookings = append(bookings, &domain.Booking{
			ID:          "b-" + day.Format("0102") + "-" + s.Type,
			CustomerID:  7,
			PackageID:   "P1",
			BookingDate: day,
			TimeSlot:    &s,
			Status:      domain.StatusConfirmed,
		})
	}
	return bookings
}

func TestFindNextSlot_SkipsFullDays(t *testing.T) {
	now := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)

	// today and tomorrow fully booked, day after free
	bookings := append(bookAllSlots(now), bookAllSlots(now.AddDate(0, 0, 1))...)

	uc := newTestUseCase(bookings, nil, 1, now)

	resp, err := uc.Execute(context.Background(), &Request{PackageID: "P1"})

	require.NoError(t, err)
	require.True(t, resp.Found)
	assert.Equal(t, time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC), *resp.Date)
	assert.Equal(t, "morning", resp.Slot.Type)
}

func TestFindNextSlot_PreferredType(t *testing.T) {
	now := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)

	uc := newTestUseCase(nil, nil, 2, now)

	resp, err := uc.Execute(context.Background(), &Request{
		PackageID:         "P1",
		PreferredSlotType: "evening",
	})

	require.NoError(t, err)
	require.True(t, resp.Found)
	assert.Equal(t, "evening", resp.Slot.Type)
	require.NotNil(t, resp.Slot.StartTime)
	assert.Equal(t, "16:00", resp.Slot.StartTime.String())
}

func TestFindNextSlot_NothingAvailable(t *testing.T) {
	now := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)

	block, err := domain.NewTimeBlock("blk-1",
		now, now.AddDate(0, 1, 0), domain.BlockReasonMaintenance, "admin-1", nil, nil, nil)
	require.NoError(t, err)

	uc := newTestUseCase(nil, []*domain.TimeBlock{block}, 2, now)

	resp, err := uc.Execute(context.Background(), &Request{
		PackageID:     "P1",
		LookaheadDays: 10,
	})

	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Nil(t, resp.Date)
	assert.Nil(t, resp.Slot)
}

func TestFindNextSlot_UnknownPreferredType(t *testing.T) {
	now := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)

	uc := newTestUseCase(nil, nil, 2, now)

	_, err := uc.Execute(context.Background(), &Request{
		PackageID:         "P1",
		PreferredSlotType: "midnight",
	})

	assert.ErrorIs(t, err, ErrUnknownSlotType)
}

func TestFindNextSlot_ExplicitStartDate(t *testing.T) {
	now := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(nil, nil, 2, now)

	resp, err := uc.Execute(context.Background(), &Request{
		PackageID: "P1",
		StartDate: start,
	})

	require.NoError(t, err)
	require.True(t, resp.Found)
	assert.Equal(t, start, *resp.Date)
}
