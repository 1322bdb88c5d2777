package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	bookingRepo "github.com/voyagecrest/charter-booking-service/internal/infra/storage/booking"
	"github.com/voyagecrest/charter-booking-service/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking

	cancelledID     string
	cancelledReason string
	updatedID       string
	updatedStatus   domain.BookingStatus
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByCustomer(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetForResource(_ context.Context, filter domain.ResourceFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.PackageID == filter.PackageID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id string, reason string) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelledID = id
	f.cancelledReason = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id string, customerID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		CustomerID:  customerID,
		PackageID:   "P1",
		BookingDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		GuestCount:  2,
		Status:      status,
		PackageName: "Sunset Cruise",
	}
}

func cancelReq(customerID int64, reason string) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{CustomerID: customerID, CancellationReason: reason}
}

func getCustomerReq(customerID int64, status *string) *models.GetCustomerBookingsRequest {
	return &models.GetCustomerBookingsRequest{CustomerID: customerID, Status: status}
}

func updateStatusReq(status string) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{Status: status}
}

func TestCancel_Success(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("B1", 42, domain.StatusConfirmed))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "B1", cancelReq(42, "change of plans"))
	require.NoError(t, err)
	assert.Equal(t, "B1", repo.cancelledID)
	assert.Equal(t, "change of plans", repo.cancelledReason)
}

func TestCancel_WrongCustomer(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("B1", 42, domain.StatusConfirmed))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "B1", cancelReq(7, ""))
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelledID)
}

func TestCancel_CompletedBooking(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("B1", 42, domain.StatusCompleted))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "B1", cancelReq(42, ""))
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), nopLogger{})

	err := svc.Cancel(context.Background(), "missing", cancelReq(42, ""))
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("B1", 42, domain.StatusConfirmed))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "B1")
	require.NoError(t, err)
	assert.Equal(t, "B1", resp.ID)
	assert.Equal(t, "2025-10-15", resp.BookingDate)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetCustomerBookings_StatusFilter(t *testing.T) {
	repo := newFakeBookingRepo(
		testBooking("B1", 42, domain.StatusConfirmed),
		testBooking("B2", 42, domain.StatusCancelled),
		testBooking("B3", 9, domain.StatusConfirmed),
	)
	svc := NewService(repo, nopLogger{})

	status := "confirmed"
	resp, err := svc.GetCustomerBookings(context.Background(), getCustomerReq(42, &status))
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "B1", resp.Bookings[0].ID)
}

func TestGetCustomerBookings_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), nopLogger{})

	status := "lost_at_sea"
	_, err := svc.GetCustomerBookings(context.Background(), getCustomerReq(42, &status))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("B1", 42, domain.StatusConfirmed))
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), "B1", updateStatusReq("in_progress"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, repo.updatedStatus)

	err = svc.UpdateStatus(context.Background(), "B1", updateStatusReq("sailing"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
