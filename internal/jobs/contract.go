package jobs

import (
	"context"
	"time"
)

// BookingRepository is the storage surface of the completion job.
type BookingRepository interface {
	CompleteFinished(ctx context.Context, cutoff time.Time) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
