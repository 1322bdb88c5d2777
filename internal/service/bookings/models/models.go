// Package models holds the DTOs of the bookings service.
package models

import (
	"errors"
	"time"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status string
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// CancelBookingRequest is a booking cancellation
type CancelBookingRequest struct {
	CustomerID         int64  `json:"customerId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest is a status transition request
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetCustomerBookingsRequest lists a customer's bookings
type GetCustomerBookingsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// GetPackageBookingsRequest lists bookings of a package with filters
type GetPackageBookingsRequest struct {
	PackageID       string     `json:"packageId"`
	YachtID         *string    `json:"yachtId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into a repository filter
func (r *GetPackageBookingsRequest) ToDomainFilter() (domain.ResourceFilter, error) {
	filter := domain.ResourceFilter{
		PackageID:       r.PackageID,
		YachtID:         r.YachtID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse is the booking DTO
type BookingResponse struct {
	ID          string  `json:"id"`
	CustomerID  int64   `json:"customerId"`
	PackageID   string  `json:"packageId"`
	YachtID     *string `json:"yachtId,omitempty"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	SlotType    *string `json:"slotType,omitempty"`
	SlotName    *string `json:"slotName,omitempty"`
	StartTime   *string `json:"startTime,omitempty"` // "08:00"
	EndTime     *string `json:"endTime,omitempty"`
	GuestCount  int     `json:"guestCount"`
	Status      string  `json:"status"`

	PackageName  string  `json:"packageName"`
	PackagePrice float64 `json:"packagePrice"`
	YachtName    *string `json:"yachtName,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse is a list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking converts a domain booking into a DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		PackageID:    b.PackageID,
		YachtID:      b.YachtID,
		BookingDate:  b.BookingDate.Format(domain.DateFormat),
		GuestCount:   b.GuestCount,
		Status:       string(b.Status),
		PackageName:  b.PackageName,
		PackagePrice: b.PackagePrice,
		YachtName:    b.YachtName,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}

	if b.TimeSlot != nil {
		resp.SlotType = &b.TimeSlot.Type
		resp.SlotName = &b.TimeSlot.Name
		if b.TimeSlot.HasTime() {
			start := formatClock(*b.TimeSlot.StartHour, *b.TimeSlot.StartMinute)
			end := formatClock(*b.TimeSlot.EndHour, *b.TimeSlot.EndMinute)
			resp.StartTime = &start
			resp.EndTime = &end
		}
	}

	resp.CancellationReason = b.CancellationReason
	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList converts a slice of domain bookings
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	list := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		list = append(list, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: list}
}

// ToDomainBookingStatus validates and converts a status string
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	switch status {
	case domain.StatusDraft, domain.StatusPending, domain.StatusConfirmed,
		domain.StatusInProgress, domain.StatusCompleted, domain.StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

func formatClock(hour, minute int) string {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC).Format(domain.TimeFormat)
}
