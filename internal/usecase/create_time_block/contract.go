package create_time_block

import (
	"context"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	"github.com/voyagecrest/charter-booking-service/internal/integrations/fleetservice"
)

// TimeBlockRepository is the time block repository interface
type TimeBlockRepository interface {
	Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
}

// FleetServiceClient is the fleet service client interface
type FleetServiceClient interface {
	GetPackage(ctx context.Context, packageID string) (*fleetservice.Package, error)
	GetYacht(ctx context.Context, yachtID string) (*fleetservice.Yacht, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
