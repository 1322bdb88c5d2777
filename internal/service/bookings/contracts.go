package bookings

import (
	"context"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
)

// BookingRepository is the booking repository interface
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByCustomer(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetForResource(ctx context.Context, filter domain.ResourceFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Cancel(ctx context.Context, id string, reason string) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
