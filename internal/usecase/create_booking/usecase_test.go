package create_booking

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
	bookings []*domain.Booking
	created  *domain.Booking
}

func (f *fakeBookingRepo) GetForResource(_ context.Context, _ domain.ResourceFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.created = b
	return b, nil
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

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTime struct{ now time.Time }

func (f *fakeTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPackage() *fleetservice.Package {
	return &fleetservice.Package{
		ID:       "P1",
		Name:     "Sunset Cruise",
		Price:    450,
		Capacity: 2,
		YachtIDs: []string{"Y1", "Y2"},
		IsActive: true,
	}
}

func newTestUseCase(bookingRepo *fakeBookingRepo, blockRepo *fakeBlockRepo, fleet *fakeFleetClient, now time.Time) *UseCase {
	uc := NewUseCase(
		bookingRepo,
		blockRepo,
		fleet,
		domain.NewCalculator(domain.DefaultCatalog()),
		&fakeTxManager{},
		domain.DefaultMaxLookaheadDays,
		nopLogger{},
	)
	uc.timeProvider = &fakeTime{now: now}
	return uc
}

func confirmedBooking(id, slotType string, day time.Time) *domain.Booking {
	slot, _ := domain.DefaultCatalog().SlotByType(slotType)
	return &domain.Booking{
		ID:          id,
		CustomerID:  7,
		PackageID:   "P1",
		BookingDate: day,
		TimeSlot:    &slot,
		Status:      domain.StatusConfirmed,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	now := time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)
	day := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, &fakeFleetClient{pkg: testPackage()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		PackageID:  "P1",
		Date:       day,
		SlotType:   "morning",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "Sunset Cruise", resp.PackageName)
	assert.Equal(t, 450.0, resp.PackagePrice)
	assert.Equal(t, domain.DefaultGuestCount, resp.GuestCount)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, "08:00", resp.StartTime.String())

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
	assert.Equal(t, day, repo.created.BookingDate)
}

func TestCreateBooking_SlotFull(t *testing.T) {
	now := time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)
	day := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	// capacity is 2, two active morning bookings already exist
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking("b1", "morning", day),
		confirmedBooking("b2", "morning", day),
	}}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, &fakeFleetClient{pkg: testPackage()}, now)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		PackageID:  "P1",
		Date:       day,
		SlotType:   "morning",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestCreateBooking_FullDayCountsAgainstMorning(t *testing.T) {
	now := time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)
	day := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking("b1", "full_day", day),
		confirmedBooking("b2", "full_day", day),
	}}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, &fakeFleetClient{pkg: testPackage()}, now)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		PackageID:  "P1",
		Date:       day,
		SlotType:   "morning",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateBooking_DateBlocked(t *testing.T) {
	now := time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)
	day := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	block, err := domain.NewTimeBlock("blk-1", day, day, domain.BlockReasonWeather, "admin-1", nil, nil, nil)
	require.NoError(t, err)

	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeBlockRepo{blocks: []*domain.TimeBlock{block}}, &fakeFleetClient{pkg: testPackage()}, now)

	_, err = uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		PackageID:  "P1",
		Date:       day,
		SlotType:   "morning",
	})

	assert.ErrorIs(t, err, ErrDateBlocked)
	assert.Nil(t, repo.created)
}

func TestCreateBooking_YachtExclusive(t *testing.T) {
	now := time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)
	day := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	// another package's booking holds the yacht in the same slot
	other := confirmedBooking("b1", "morning", day)
	other.PackageID = "P9"
	other.YachtID = ptr.Ptr("Y1")

	repo := &fakeBookingRepo{bookings: []*domain.Booking{other}}
	fleet := &fakeFleetClient{
		pkg:   testPackage(),
		yacht: &fleetservice.Yacht{ID: "Y1", Name: "Aurora", MaxGuests: 8, IsActive: true},
	}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, fleet, now)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		PackageID:  "P1",
		YachtID:    ptr.Ptr("Y1"),
		Date:       day,
		SlotType:   "morning",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateBooking_TooManyGuests(t *testing.T) {
	now := time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)
	day := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	fleet := &fakeFleetClient{
		pkg:   testPackage(),
		yacht: &fleetservice.Yacht{ID: "Y1", Name: "Aurora", MaxGuests: 8, IsActive: true},
	}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, fleet, now)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		PackageID:  "P1",
		YachtID:    ptr.Ptr("Y1"),
		Date:       day,
		SlotType:   "morning",
		GuestCount: 12,
	})

	assert.ErrorIs(t, err, ErrTooManyGuests)
}

func TestCreateBooking_Validation(t *testing.T) {
	now := time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)
	day := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeFleetClient{pkg: testPackage()}, now)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "missing customer",
			req:     &Request{PackageID: "P1", Date: day, SlotType: "morning"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown slot type",
			req:     &Request{CustomerID: 1, PackageID: "P1", Date: day, SlotType: "midnight"},
			wantErr: ErrUnknownSlotType,
		},
		{
			name:    "date in the past",
			req:     &Request{CustomerID: 1, PackageID: "P1", Date: now.AddDate(0, 0, -1), SlotType: "morning"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "date beyond horizon",
			req:     &Request{CustomerID: 1, PackageID: "P1", Date: now.AddDate(0, 0, 90), SlotType: "morning"},
			wantErr: ErrDateTooFarInFuture,
		},
		{
			name:    "unknown package",
			req:     &Request{CustomerID: 1, PackageID: "P404", Date: day, SlotType: "morning"},
			wantErr: ErrPackageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateBooking_InactivePackage(t *testing.T) {
	now := time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)
	day := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	pkg := testPackage()
	pkg.IsActive = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeFleetClient{pkg: pkg}, now)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		PackageID:  "P1",
		Date:       day,
		SlotType:   "morning",
	})

	assert.ErrorIs(t, err, ErrPackageInactive)
}

func TestCreateBooking_CancelledBookingsFreeCapacity(t *testing.T) {
	now := time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)
	day := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	cancelled := confirmedBooking("b1", "morning", day)
	cancelled.Status = domain.StatusCancelled

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		cancelled,
		confirmedBooking("b2", "morning", day),
	}}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, &fakeFleetClient{pkg: testPackage()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		PackageID:  "P1",
		Date:       day,
		SlotType:   "morning",
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}
