// Package models holds the DTOs of the timeblocks service.
package models

import (
	"time"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
)

// ListTimeBlocksRequest lists blocks overlapping a window. Zero dates
// default to a window around today.
type ListTimeBlocksRequest struct {
	StartDate time.Time `json:"startDate,omitempty"`
	EndDate   time.Time `json:"endDate,omitempty"`
}

// TimeBlockResponse is the time block DTO
type TimeBlockResponse struct {
	ID        string  `json:"id"`
	StartDate string  `json:"startDate"` // "2025-10-15"
	EndDate   string  `json:"endDate"`
	Reason    string  `json:"reason"`
	PackageID *string `json:"packageId,omitempty"`
	YachtID   *string `json:"yachtId,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CreatedBy string  `json:"createdBy"`
	IsGlobal  bool    `json:"isGlobal"`

	CreatedAt time.Time `json:"createdAt"`
}

// TimeBlockListResponse is a list of blocks
type TimeBlockListResponse struct {
	TimeBlocks []TimeBlockResponse `json:"timeBlocks"`
}

// FromDomainTimeBlock converts a domain block into a DTO
func FromDomainTimeBlock(b *domain.TimeBlock) *TimeBlockResponse {
	if b == nil {
		return nil
	}

	return &TimeBlockResponse{
		ID:        b.ID,
		StartDate: b.StartDate.Format(domain.DateFormat),
		EndDate:   b.EndDate.Format(domain.DateFormat),
		Reason:    string(b.Reason),
		PackageID: b.PackageID,
		YachtID:   b.YachtID,
		Notes:     b.Notes,
		CreatedBy: b.CreatedBy,
		IsGlobal:  b.IsGlobal(),
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainTimeBlockList converts a slice of domain blocks
func FromDomainTimeBlockList(blocks []*domain.TimeBlock) *TimeBlockListResponse {
	list := make([]TimeBlockResponse, 0, len(blocks))
	for _, b := range blocks {
		list = append(list, *FromDomainTimeBlock(b))
	}
	return &TimeBlockListResponse{TimeBlocks: list}
}
