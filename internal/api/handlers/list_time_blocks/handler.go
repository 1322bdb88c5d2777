package list_time_blocks

import (
	"errors"
	"net/http"
	"time"

	"github.com/voyagecrest/charter-booking-service/internal/api/handlers"
	"github.com/voyagecrest/charter-booking-service/internal/domain"
	"github.com/voyagecrest/charter-booking-service/internal/service/timeblocks"
	"github.com/voyagecrest/charter-booking-service/internal/service/timeblocks/models"
)

const (
	msgInvalidDate  = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInput = "invalid input data"
)

type Handler struct {
	service TimeBlockService
	logger  Logger
}

func NewHandler(service TimeBlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/time-blocks
// Query params: startDate, endDate (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListTimeBlocksRequest{}

	if v := r.URL.Query().Get("startDate"); v != "" {
		startDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /time-blocks - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = startDate
	}

	if v := r.URL.Query().Get("endDate"); v != "" {
		endDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /time-blocks - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = endDate
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrInvalidInput):
			h.logger.Warn("GET /time-blocks - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /time-blocks - Failed to list time blocks: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /time-blocks - Time blocks retrieved: count=%d", len(result.TimeBlocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
