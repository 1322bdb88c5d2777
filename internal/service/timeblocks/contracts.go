package timeblocks

import (
	"context"
	"time"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
)

// TimeBlockRepository is the time block repository interface
type TimeBlockRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TimeBlock, error)
	List(ctx context.Context, startDate, endDate time.Time) ([]*domain.TimeBlock, error)
	Delete(ctx context.Context, id string) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
