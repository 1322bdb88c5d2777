package find_next_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/voyagecrest/charter-booking-service/internal/api/handlers"
	findNextSlot "github.com/voyagecrest/charter-booking-service/internal/usecase/find_next_slot"
)

const (
	msgMissingPackageID  = "package id is required"
	msgInvalidParams     = "invalid query parameters"
	msgUnknownSlotType   = "unknown preferred slot type"
	msgPackageNotFound   = "charter package not found"
	msgYachtNotFound     = "yacht not found"
	msgYachtNotInPackage = "yacht does not belong to the package"
	msgInvalidInput      = "invalid input data"
)

type Handler struct {
	useCase FindNextSlotUseCase
	logger  Logger
}

func NewHandler(useCase FindNextSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages/{packageId}/next-available
// Query params: from (optional, YYYY-MM-DD), lookaheadDays (optional),
// preferredSlot (optional), yachtId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	packageID := vars["packageId"]
	if packageID == "" {
		h.logger.Warn("GET /packages/{id}/next-available - Missing package ID")
		handlers.RespondBadRequest(w, msgMissingPackageID)
		return
	}

	query := r.URL.Query()

	var yachtID *string
	if v := query.Get("yachtId"); v != "" {
		yachtID = &v
	}

	useCaseReq, err := ToUseCaseRequest(packageID, query.Get("from"), query.Get("lookaheadDays"),
		query.Get("preferredSlot"), yachtID)
	if err != nil {
		h.logger.Warn("GET /packages/{id}/next-available - Invalid query parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findNextSlot.ErrPackageNotFound):
			h.logger.Warn("GET /packages/{id}/next-available - Package not found: package_id=%s", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, findNextSlot.ErrYachtNotFound):
			h.logger.Warn("GET /packages/{id}/next-available - Yacht not found: package_id=%s", packageID)
			handlers.RespondNotFound(w, msgYachtNotFound)

		case errors.Is(err, findNextSlot.ErrYachtNotInPackage):
			h.logger.Warn("GET /packages/{id}/next-available - Yacht not in package: package_id=%s", packageID)
			handlers.RespondBadRequest(w, msgYachtNotInPackage)

		case errors.Is(err, findNextSlot.ErrUnknownSlotType):
			h.logger.Warn("GET /packages/{id}/next-available - Unknown slot type: package_id=%s, slot=%s",
				packageID, query.Get("preferredSlot"))
			handlers.RespondBadRequest(w, msgUnknownSlotType)

		case errors.Is(err, findNextSlot.ErrInvalidInput):
			h.logger.Warn("GET /packages/{id}/next-available - Invalid input: package_id=%s, error=%v", packageID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /packages/{id}/next-available - Failed to find slot: package_id=%s, error=%v",
				packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /packages/{id}/next-available - Search finished: package_id=%s, found=%t",
		packageID, result.Found)
	handlers.RespondJSON(w, http.StatusOK, response)
}
