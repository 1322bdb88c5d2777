package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	"github.com/voyagecrest/charter-booking-service/internal/integrations/fleetservice"
	"github.com/voyagecrest/charter-booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.ResourceFilter
}

func (f *fakeBookingRepo) GetForResource(_ context.Context, filter domain.ResourceFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, nil
}

type fakeBlockRepo struct {
	blocks []*domain.TimeBlock
}

func (f *fakeBlockRepo) GetForResource(_ context.Context, _ string, _ *string, _, _ time.Time) ([]*domain.TimeBlock, error) {
	return f.blocks, nil
}

type fakeFleetClient struct {
	pkg   *fleetservice.Package
	yacht *fleetservice.Yacht
}

func (f *fakeFleetClient) GetPackage(_ context.Context, id string) (*fleetservice.Package, error) {
	if f.pkg == nil || f.pkg.ID != id {
		return nil, fleetservice.ErrPackageNotFound
	}
	return f.pkg, nil
}

func (f *fakeFleetClient) GetYacht(_ context.Context, id string) (*fleetservice.Yacht, error) {
	if f.yacht == nil || f.yacht.ID != id {
		return nil, fleetservice.ErrYachtNotFound
	}
	return f.yacht, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPackage() *fleetservice.Package {
	return &fleetservice.Package{
		ID:       "P1",
		Name:     "Coastal Cruise",
		Capacity: 3,
		YachtIDs: []string{"Y1"},
		IsActive: true,
	}
}

func TestGetAvailability_EmptyDay(t *testing.T) {
	day := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeFleetClient{pkg: testPackage()},
		domain.NewCalculator(domain.DefaultCatalog()), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PackageID: "P1", Date: day})

	require.NoError(t, err)
	assert.Equal(t, day, resp.Date)
	assert.False(t, resp.IsFullyBooked)
	require.Len(t, resp.Slots, 4)

	morning := resp.Slots[0]
	assert.Equal(t, "morning", morning.Type)
	assert.True(t, morning.IsAvailable)
	assert.Equal(t, 3, morning.RemainingCapacity)
	require.NotNil(t, morning.StartTime)
	assert.Equal(t, "08:00", morning.StartTime.String())
	assert.Equal(t, "12:00", morning.EndTime.String())
}

func TestGetAvailability_BookingReducesCapacity(t *testing.T) {
	day := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)

	slot, _ := domain.DefaultCatalog().SlotByType("morning")
	repo := &fakeBookingRepo{bookings: []*domain.Booking{{
		ID:          "b1",
		CustomerID:  7,
		PackageID:   "P1",
		BookingDate: day,
		TimeSlot:    &slot,
		Status:      domain.StatusConfirmed,
	}}}

	uc := NewUseCase(
		repo, &fakeBlockRepo{}, &fakeFleetClient{pkg: testPackage()},
		domain.NewCalculator(domain.DefaultCatalog()), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PackageID: "P1", Date: day})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Slots[0].RemainingCapacity) // morning
	assert.Equal(t, 3, resp.Slots[1].RemainingCapacity) // afternoon untouched
	assert.Equal(t, 2, resp.Slots[3].RemainingCapacity) // full_day overlaps morning

	// single-day filter was passed through to the repository
	require.NotNil(t, repo.lastFilter.StartDate)
	assert.Equal(t, day, *repo.lastFilter.StartDate)
}

func TestGetAvailability_YachtScopedUsesSingleCapacity(t *testing.T) {
	day := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)

	fleet := &fakeFleetClient{
		pkg:   testPackage(),
		yacht: &fleetservice.Yacht{ID: "Y1", Name: "Aurora", MaxGuests: 10, IsActive: true},
	}
	uc := NewUseCase(
		&fakeBookingRepo{}, &fakeBlockRepo{}, fleet,
		domain.NewCalculator(domain.DefaultCatalog()), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PackageID: "P1",
		YachtID:   ptr.Ptr("Y1"),
		Date:      day,
	})

	require.NoError(t, err)
	for _, s := range resp.Slots {
		assert.Equal(t, 1, s.RemainingCapacity)
	}
}

func TestGetAvailability_BlockedDay(t *testing.T) {
	day := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)

	block, err := domain.NewTimeBlock("blk-1", day, day, domain.BlockReasonHoliday, "admin-1", nil, nil, nil)
	require.NoError(t, err)

	uc := NewUseCase(
		&fakeBookingRepo{}, &fakeBlockRepo{blocks: []*domain.TimeBlock{block}},
		&fakeFleetClient{pkg: testPackage()},
		domain.NewCalculator(domain.DefaultCatalog()), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PackageID: "P1", Date: day})

	require.NoError(t, err)
	assert.True(t, resp.IsFullyBooked)
	for _, s := range resp.Slots {
		assert.False(t, s.IsAvailable)
		assert.Equal(t, 0, s.RemainingCapacity)
	}
}

func TestGetAvailability_Errors(t *testing.T) {
	day := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)

	fleet := &fakeFleetClient{
		pkg:   testPackage(),
		yacht: &fleetservice.Yacht{ID: "Y9", Name: "Stray", MaxGuests: 4, IsActive: true},
	}
	uc := NewUseCase(
		&fakeBookingRepo{}, &fakeBlockRepo{}, fleet,
		domain.NewCalculator(domain.DefaultCatalog()), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PackageID: "P404", Date: day})
	assert.ErrorIs(t, err, ErrPackageNotFound)

	// Y9 exists in the fleet service but is not part of P1
	_, err = uc.Execute(context.Background(), &Request{PackageID: "P1", YachtID: ptr.Ptr("Y9"), Date: day})
	assert.ErrorIs(t, err, ErrYachtNotInPackage)

	_, err = uc.Execute(context.Background(), &Request{PackageID: "P1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
