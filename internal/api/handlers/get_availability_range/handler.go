package get_availability_range

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/voyagecrest/charter-booking-service/internal/api/handlers"
	getAvailabilityRange "github.com/voyagecrest/charter-booking-service/internal/usecase/get_availability_range"
)

const (
	msgMissingPackageID  = "package id is required"
	msgMissingDates      = "startDate and endDate are required"
	msgInvalidDate       = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange      = "startDate must not be after endDate"
	msgRangeTooLarge     = "requested range exceeds the booking horizon"
	msgPackageNotFound   = "charter package not found"
	msgYachtNotFound     = "yacht not found"
	msgYachtNotInPackage = "yacht does not belong to the package"
	msgInvalidInput      = "invalid input data"
)

type Handler struct {
	useCase GetAvailabilityRangeUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages/{packageId}/availability/range
// Query params: startDate, endDate (required, YYYY-MM-DD), yachtId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	packageID := vars["packageId"]
	if packageID == "" {
		h.logger.Warn("GET /packages/{id}/availability/range - Missing package ID")
		handlers.RespondBadRequest(w, msgMissingPackageID)
		return
	}

	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /packages/{id}/availability/range - Missing dates: package_id=%s", packageID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	var yachtID *string
	if v := r.URL.Query().Get("yachtId"); v != "" {
		yachtID = &v
	}

	useCaseReq, err := ToUseCaseRequest(packageID, startStr, endStr, yachtID)
	if err != nil {
		h.logger.Warn("GET /packages/{id}/availability/range - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailabilityRange.ErrPackageNotFound):
			h.logger.Warn("GET /packages/{id}/availability/range - Package not found: package_id=%s", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, getAvailabilityRange.ErrYachtNotFound):
			h.logger.Warn("GET /packages/{id}/availability/range - Yacht not found: package_id=%s", packageID)
			handlers.RespondNotFound(w, msgYachtNotFound)

		case errors.Is(err, getAvailabilityRange.ErrYachtNotInPackage):
			h.logger.Warn("GET /packages/{id}/availability/range - Yacht not in package: package_id=%s", packageID)
			handlers.RespondBadRequest(w, msgYachtNotInPackage)

		case errors.Is(err, getAvailabilityRange.ErrRangeTooLarge):
			h.logger.Warn("GET /packages/{id}/availability/range - Range too large: package_id=%s, %s..%s",
				packageID, startStr, endStr)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getAvailabilityRange.ErrInvalidRange):
			h.logger.Warn("GET /packages/{id}/availability/range - Invalid range: package_id=%s, %s..%s",
				packageID, startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailabilityRange.ErrInvalidInput):
			h.logger.Warn("GET /packages/{id}/availability/range - Invalid input: package_id=%s, error=%v", packageID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /packages/{id}/availability/range - Failed to get availability: package_id=%s, error=%v",
				packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /packages/{id}/availability/range - Availability retrieved: package_id=%s, %s..%s, days_count=%d",
		packageID, startStr, endStr, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
