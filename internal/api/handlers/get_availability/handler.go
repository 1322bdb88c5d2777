package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/voyagecrest/charter-booking-service/internal/api/handlers"
	getAvailability "github.com/voyagecrest/charter-booking-service/internal/usecase/get_availability"
)

const (
	msgMissingPackageID  = "package id is required"
	msgMissingDate       = "date is required"
	msgInvalidDate       = "invalid date format, expected YYYY-MM-DD"
	msgPackageNotFound   = "charter package not found"
	msgYachtNotFound     = "yacht not found"
	msgYachtNotInPackage = "yacht does not belong to the package"
	msgInvalidInput      = "invalid input data"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages/{packageId}/availability
// Query params: date (required, YYYY-MM-DD), yachtId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	packageID := vars["packageId"]
	if packageID == "" {
		h.logger.Warn("GET /packages/{id}/availability - Missing package ID")
		handlers.RespondBadRequest(w, msgMissingPackageID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /packages/{id}/availability - Missing date: package_id=%s", packageID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	var yachtID *string
	if v := r.URL.Query().Get("yachtId"); v != "" {
		yachtID = &v
	}

	useCaseReq, err := ToUseCaseRequest(packageID, dateStr, yachtID)
	if err != nil {
		h.logger.Warn("GET /packages/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrPackageNotFound):
			h.logger.Warn("GET /packages/{id}/availability - Package not found: package_id=%s", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, getAvailability.ErrYachtNotFound):
			h.logger.Warn("GET /packages/{id}/availability - Yacht not found: package_id=%s", packageID)
			handlers.RespondNotFound(w, msgYachtNotFound)

		case errors.Is(err, getAvailability.ErrYachtNotInPackage):
			h.logger.Warn("GET /packages/{id}/availability - Yacht not in package: package_id=%s", packageID)
			handlers.RespondBadRequest(w, msgYachtNotInPackage)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /packages/{id}/availability - Invalid input: package_id=%s, error=%v", packageID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /packages/{id}/availability - Failed to get availability: package_id=%s, error=%v",
				packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /packages/{id}/availability - Availability retrieved: package_id=%s, date=%s, slots_count=%d",
		packageID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
