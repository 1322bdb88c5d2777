package find_next_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	fleetClient "github.com/voyagecrest/charter-booking-service/internal/integrations/fleetservice"
	"github.com/voyagecrest/charter-booking-service/pkg/types"
)

// UseCase finds the earliest bookable day and slot within a lookahead window.
type UseCase struct {
	bookingRepo      BookingRepository
	blockRepo        TimeBlockRepository
	fleetClient      FleetServiceClient
	calculator       *domain.Calculator
	maxLookaheadDays int
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the find next slot use case. maxLookaheadDays is the
// default and upper bound for the search window.
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo TimeBlockRepository,
	fleetClient FleetServiceClient,
	calculator *domain.Calculator,
	maxLookaheadDays int,
	logger Logger,
) *UseCase {
	if maxLookaheadDays < domain.MinLookaheadDays {
		maxLookaheadDays = domain.DefaultMaxLookaheadDays
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		blockRepo:        blockRepo,
		fleetClient:      fleetClient,
		calculator:       calculator,
		maxLookaheadDays: maxLookaheadDays,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute runs the search.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindNextSlot: package=%s, yacht=%v, preferred=%q, lookahead=%d",
		req.PackageID, req.YachtID, req.PreferredSlotType, req.LookaheadDays)

	// 1. Validate input against the deployed catalog
	if err := validateRequest(req, uc.calculator.Catalog()); err != nil {
		uc.logger.Warn("FindNextSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve search window
	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = uc.timeProvider.Now()
	}
	startDate = domain.NormalizeDate(startDate)

	lookahead := req.LookaheadDays
	if lookahead == 0 || lookahead > uc.maxLookaheadDays {
		lookahead = uc.maxLookaheadDays
	}

	// 3. Resolve the package and its capacity
	pkg, err := uc.fleetClient.GetPackage(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, fleetClient.ErrPackageNotFound) {
			uc.logger.Warn("FindNextSlot: package id=%s not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("FindNextSlot: failed to get package id=%s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	capacity := pkg.Capacity

	if req.YachtID != nil {
		if _, err := uc.fleetClient.GetYacht(ctx, *req.YachtID); err != nil {
			if errors.Is(err, fleetClient.ErrYachtNotFound) {
				uc.logger.Warn("FindNextSlot: yacht id=%s not found", *req.YachtID)
				return nil, ErrYachtNotFound
			}
			uc.logger.Error("FindNextSlot: failed to get yacht id=%s: %v", *req.YachtID, err)
			return nil, fmt.Errorf("%w: failed to get yacht: %v", ErrInternal, err)
		}

		if err := validateYachtInPackage(pkg, *req.YachtID); err != nil {
			uc.logger.Warn("FindNextSlot: yacht id=%s not in package id=%s", *req.YachtID, req.PackageID)
			return nil, err
		}

		capacity = 1
	}

	// 4. Load bookings and blocks covering the whole window
	endDate := startDate.AddDate(0, 0, lookahead-1)

	filter := domain.ResourceFilter{
		PackageID: req.PackageID,
		YachtID:   req.YachtID,
		StartDate: &startDate,
		EndDate:   &endDate,
	}

	bookings, err := uc.bookingRepo.GetForResource(ctx, filter)
	if err != nil {
		uc.logger.Error("FindNextSlot: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetForResource(ctx, req.PackageID, req.YachtID, startDate, endDate)
	if err != nil {
		uc.logger.Error("FindNextSlot: failed to get time blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get time blocks: %v", ErrInternal, err)
	}

	// 5. Search
	found, ok := uc.calculator.FindNextAvailable(
		startDate, lookahead, req.PackageID, req.YachtID, bookings, blocks, capacity, req.PreferredSlotType)

	if !ok {
		uc.logger.Info("FindNextSlot: no availability for package=%s within %d days", req.PackageID, lookahead)
		return &Response{
			Found:     false,
			PackageID: req.PackageID,
			YachtID:   req.YachtID,
		}, nil
	}

	uc.logger.Info("FindNextSlot: package=%s next slot %s on %s",
		req.PackageID, found.Slot.TimeSlot.Type, found.Date.Format(domain.DateFormat))

	slot := Slot{
		Type:              found.Slot.TimeSlot.Type,
		Name:              found.Slot.TimeSlot.Name,
		RemainingCapacity: found.Slot.RemainingCapacity,
	}
	if found.Slot.TimeSlot.HasTime() {
		start, _ := types.NewTimeStringFromParts(*found.Slot.TimeSlot.StartHour, *found.Slot.TimeSlot.StartMinute)
		end, _ := types.NewTimeStringFromParts(*found.Slot.TimeSlot.EndHour, *found.Slot.TimeSlot.EndMinute)
		slot.StartTime = &start
		slot.EndTime = &end
	}

	date := found.Date
	return &Response{
		Found:     true,
		PackageID: req.PackageID,
		YachtID:   req.YachtID,
		Date:      &date,
		Slot:      &slot,
	}, nil
}
