package fleetservice

// Package is a charter package as served by the fleet service.
// Capacity is the number of concurrent bookings the package can hold per
// time slot.
type Package struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Capacity int      `json:"capacity"`
	YachtIDs []string `json:"yacht_ids"`
	IsActive bool     `json:"is_active"`
}

// Yacht is a vessel from the fleet service.
type Yacht struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MaxGuests int    `json:"max_guests"`
	IsActive  bool   `json:"is_active"`
}

// ErrorResponse is the error payload of the fleet service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
