package get_package_bookings

import (
	"context"

	"github.com/voyagecrest/charter-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetPackageBookings(ctx context.Context, req *models.GetPackageBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
