package domain

import (
	"errors"
	"fmt"
	"time"
)

// BlockReason classifies an administrative exclusion.
type BlockReason string

const (
	BlockReasonMaintenance BlockReason = "maintenance"
	BlockReasonWeather     BlockReason = "weather"
	BlockReasonHoliday     BlockReason = "holiday"
	BlockReasonReserved    BlockReason = "reserved"
	BlockReasonOther       BlockReason = "other"
)

var (
	// ErrInvalidBlockRange is returned when a block's start date is after
	// its end date.
	ErrInvalidBlockRange = errors.New("time block start date must not be after end date")

	// ErrInvalidBlockReason is returned for an unknown block reason.
	ErrInvalidBlockReason = errors.New("invalid time block reason")
)

// validBlockReasons enumerates the accepted reasons.
var validBlockReasons = map[BlockReason]struct{}{
	BlockReasonMaintenance: {},
	BlockReasonWeather:     {},
	BlockReasonHoliday:     {},
	BlockReasonReserved:    {},
	BlockReasonOther:       {},
}

// ParseBlockReason validates a reason string.
func ParseBlockReason(s string) (BlockReason, error) {
	reason := BlockReason(s)
	if _, ok := validBlockReasons[reason]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidBlockReason, s)
	}
	return reason, nil
}

// TimeBlock is an administrator-created exclusion window overriding normal
// availability. A block with neither a yacht nor a package scope applies to
// every resource.
type TimeBlock struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time // inclusive; extended to end of day when matched
	Reason    BlockReason

	YachtID   *string
	PackageID *string

	Notes     *string
	CreatedBy string
	CreatedAt time.Time
}

// NewTimeBlock constructs a validated time block. CreatedAt is stamped here
// and never caller-supplied, so blocks cannot be backdated.
func NewTimeBlock(id string, startDate, endDate time.Time, reason BlockReason, createdBy string, packageID, yachtID, notes *string) (*TimeBlock, error) {
	if _, ok := validBlockReasons[reason]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBlockReason, reason)
	}

	if NormalizeDate(startDate).After(NormalizeDate(endDate)) {
		return nil, fmt.Errorf("%w: %s > %s",
			ErrInvalidBlockRange, startDate.Format(DateFormat), endDate.Format(DateFormat))
	}

	return &TimeBlock{
		ID:        id,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
		YachtID:   yachtID,
		PackageID: packageID,
		Notes:     notes,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// IsGlobal reports whether the block applies to every resource.
func (b *TimeBlock) IsGlobal() bool {
	return b.YachtID == nil && b.PackageID == nil
}

// appliesTo reports whether the block's scope covers the given resource.
func (b *TimeBlock) appliesTo(packageID string, yachtID *string) bool {
	if b.IsGlobal() {
		return true
	}
	if b.PackageID != nil && *b.PackageID == packageID {
		return true
	}
	if yachtID != nil && b.YachtID != nil && *b.YachtID == *yachtID {
		return true
	}
	return false
}

// containsDate reports whether the block's inclusive date range covers the
// given calendar day. The block end is extended to end of day.
func (b *TimeBlock) containsDate(date time.Time) bool {
	day := NormalizeDate(date)
	return !day.Before(NormalizeDate(b.StartDate)) && !day.After(EndOfDay(b.EndDate))
}

// encompassesSlot reports whether the block covers the slot's whole window
// on the given day. Block boundaries are widened to the start and end of
// their respective days before the comparison; an untimed slot is covered
// by any block that touches the day at all.
func (b *TimeBlock) encompassesSlot(date time.Time, slot TimeSlot) bool {
	if !b.containsDate(date) {
		return false
	}

	if !slot.HasTime() {
		return true
	}

	day := NormalizeDate(date)
	slotStart := day.Add(time.Duration(slot.startMinutes()) * time.Minute)
	slotEnd := day.Add(time.Duration(slot.endMinutes()) * time.Minute)

	blockStart := NormalizeDate(b.StartDate)
	blockEnd := EndOfDay(b.EndDate)

	return !slotStart.Before(blockStart) && !slotEnd.After(blockEnd)
}
