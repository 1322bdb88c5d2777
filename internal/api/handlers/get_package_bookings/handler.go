package get_package_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/voyagecrest/charter-booking-service/internal/api/handlers"
	"github.com/voyagecrest/charter-booking-service/internal/service/bookings"
)

const (
	msgMissingPackageID = "package id is required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInput     = "invalid input data"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages/{packageId}/bookings
// Query params: yachtId, startDate, endDate, status, includeInactive (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	packageID := vars["packageId"]
	if packageID == "" {
		h.logger.Warn("GET /packages/{id}/bookings - Missing package ID")
		handlers.RespondBadRequest(w, msgMissingPackageID)
		return
	}

	req, err := ToServiceRequest(packageID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /packages/{id}/bookings - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetPackageBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /packages/{id}/bookings - Invalid input: package_id=%s, error=%v", packageID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /packages/{id}/bookings - Failed to get bookings: package_id=%s, error=%v",
				packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /packages/{id}/bookings - Bookings retrieved: package_id=%s, count=%d",
		packageID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
