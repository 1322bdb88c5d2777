package create_booking

import (
	"context"
	"time"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	"github.com/voyagecrest/charter-booking-service/internal/integrations/fleetservice"
)

// BookingRepository is the booking repository interface
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetForResource(ctx context.Context, filter domain.ResourceFilter) ([]*domain.Booking, error)
}

// TimeBlockRepository is the time block repository interface
type TimeBlockRepository interface {
	GetForResource(ctx context.Context, packageID string, yachtID *string, startDate, endDate time.Time) ([]*domain.TimeBlock, error)
}

// FleetServiceClient is the fleet service client interface
type FleetServiceClient interface {
	GetPackage(ctx context.Context, packageID string) (*fleetservice.Package, error)
	GetYacht(ctx context.Context, yachtID string) (*fleetservice.Yacht, error)
}

// TransactionManager runs functions inside database transactions
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time, injectable for tests
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
