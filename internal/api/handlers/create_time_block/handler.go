package create_time_block

import (
	"errors"
	"net/http"

	"github.com/voyagecrest/charter-booking-service/internal/api/handlers"
	createTimeBlock "github.com/voyagecrest/charter-booking-service/internal/usecase/create_time_block"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange       = "startDate must not be after endDate"
	msgInvalidReason      = "unknown block reason"
	msgPackageNotFound    = "charter package not found"
	msgYachtNotFound      = "yacht not found"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	useCase CreateTimeBlockUseCase
	logger  Logger
}

func NewHandler(useCase CreateTimeBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/time-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTimeBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /time-blocks - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createTimeBlock.ErrPackageNotFound):
			h.logger.Warn("POST /time-blocks - Package not found: package_id=%v", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createTimeBlock.ErrYachtNotFound):
			h.logger.Warn("POST /time-blocks - Yacht not found: yacht_id=%v", req.YachtID)
			handlers.RespondNotFound(w, msgYachtNotFound)

		case errors.Is(err, createTimeBlock.ErrInvalidRange):
			h.logger.Warn("POST /time-blocks - Invalid range: %s..%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createTimeBlock.ErrInvalidReason):
			h.logger.Warn("POST /time-blocks - Invalid reason: reason=%s", req.Reason)
			handlers.RespondBadRequest(w, msgInvalidReason)

		case errors.Is(err, createTimeBlock.ErrInvalidInput):
			h.logger.Warn("POST /time-blocks - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /time-blocks - Failed to create time block: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /time-blocks - Time block created: block_id=%s, %s..%s, reason=%s",
		result.ID, req.StartDate, req.EndDate, req.Reason)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
