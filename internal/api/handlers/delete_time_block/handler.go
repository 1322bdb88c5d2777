package delete_time_block

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/voyagecrest/charter-booking-service/internal/api/handlers"
	"github.com/voyagecrest/charter-booking-service/internal/service/timeblocks"
)

const (
	msgMissingBlockID = "time block id is required"
	msgNotFound       = "time block not found"
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

// Handle DELETE /api/v1/time-blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockID := vars["blockId"]
	if blockID == "" {
		h.logger.Warn("DELETE /time-blocks/{id} - Missing block ID")
		handlers.RespondBadRequest(w, msgMissingBlockID)
		return
	}

	if err := h.service.Delete(r.Context(), blockID); err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrBlockNotFound):
			h.logger.Warn("DELETE /time-blocks/{id} - Time block not found: block_id=%s", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /time-blocks/{id} - Failed to delete time block: block_id=%s, error=%v",
				blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /time-blocks/{id} - Time block deleted: block_id=%s", blockID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
