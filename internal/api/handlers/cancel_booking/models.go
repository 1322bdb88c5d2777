package cancel_booking

import (
	"github.com/voyagecrest/charter-booking-service/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CustomerID         int64  `json:"customerId"`
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		CustomerID:         r.CustomerID,
		CancellationReason: r.CancellationReason,
	}
}
