package create_booking

import (
	"errors"
	"net/http"

	"github.com/voyagecrest/charter-booking-service/internal/api/handlers"
	createBooking "github.com/voyagecrest/charter-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgPackageNotFound    = "charter package not found"
	msgPackageInactive    = "charter package is not accepting bookings"
	msgYachtNotFound      = "yacht not found"
	msgYachtNotInPackage  = "yacht does not belong to the package"
	msgUnknownSlotType    = "unknown slot type"
	msgDateInPast         = "booking date cannot be in the past"
	msgDateTooFar         = "booking date is beyond the booking horizon"
	msgDateBlocked        = "date is blocked for bookings"
	msgSlotNotAvailable   = "slot is fully booked"
	msgTooManyGuests      = "guest count exceeds yacht capacity"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package_id=%s", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrPackageInactive):
			h.logger.Warn("POST /bookings - Package inactive: package_id=%s", req.PackageID)
			handlers.RespondBadRequest(w, msgPackageInactive)

		case errors.Is(err, createBooking.ErrYachtNotFound):
			h.logger.Warn("POST /bookings - Yacht not found: package_id=%s", req.PackageID)
			handlers.RespondNotFound(w, msgYachtNotFound)

		case errors.Is(err, createBooking.ErrYachtNotInPackage):
			h.logger.Warn("POST /bookings - Yacht not in package: package_id=%s", req.PackageID)
			handlers.RespondBadRequest(w, msgYachtNotInPackage)

		case errors.Is(err, createBooking.ErrUnknownSlotType):
			h.logger.Warn("POST /bookings - Unknown slot type: package_id=%s, slot=%s", req.PackageID, req.SlotType)
			handlers.RespondBadRequest(w, msgUnknownSlotType)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: package_id=%s, date=%s", req.PackageID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date beyond horizon: package_id=%s, date=%s", req.PackageID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: package_id=%s, date=%s", req.PackageID, req.Date)
			handlers.RespondConflict(w, msgDateBlocked)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: package_id=%s, date=%s, slot=%s",
				req.PackageID, req.Date, req.SlotType)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrTooManyGuests):
			h.logger.Warn("POST /bookings - Too many guests: package_id=%s, guests=%d", req.PackageID, req.GuestCount)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, package_id=%s, error=%v",
				req.CustomerID, req.PackageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, customer_id=%d, package_id=%s, date=%s, slot=%s",
		result.ID, req.CustomerID, req.PackageID, req.Date, req.SlotType)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
