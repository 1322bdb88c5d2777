package list_time_blocks

import (
	"context"

	"github.com/voyagecrest/charter-booking-service/internal/service/timeblocks/models"
)

type TimeBlockService interface {
	List(ctx context.Context, req *models.ListTimeBlocksRequest) (*models.TimeBlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
