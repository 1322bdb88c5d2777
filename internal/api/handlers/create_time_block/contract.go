package create_time_block

import (
	"context"

	createTimeBlock "github.com/voyagecrest/charter-booking-service/internal/usecase/create_time_block"
)

type CreateTimeBlockUseCase interface {
	Execute(ctx context.Context, req *createTimeBlock.Request) (*createTimeBlock.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
