package get_availability_range

import (
	"context"
	"errors"
	"fmt"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	fleetClient "github.com/voyagecrest/charter-booking-service/internal/integrations/fleetservice"
	"github.com/voyagecrest/charter-booking-service/pkg/types"
)

// UseCase computes availability for every day of a date window.
type UseCase struct {
	bookingRepo BookingRepository
	blockRepo   TimeBlockRepository
	fleetClient FleetServiceClient
	calculator  *domain.Calculator
	logger      Logger
}

// NewUseCase creates the availability range use case.
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo TimeBlockRepository,
	fleetClient FleetServiceClient,
	calculator *domain.Calculator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		fleetClient: fleetClient,
		calculator:  calculator,
		logger:      logger,
	}
}

// Execute runs the range query. Bookings and blocks are loaded once for the
// whole window; the calculator narrows them per day.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailabilityRange: package=%s, yacht=%v, range=%s..%s",
		req.PackageID, req.YachtID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailabilityRange: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the package and its capacity
	pkg, err := uc.fleetClient.GetPackage(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, fleetClient.ErrPackageNotFound) {
			uc.logger.Warn("GetAvailabilityRange: package id=%s not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("GetAvailabilityRange: failed to get package id=%s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	capacity := pkg.Capacity

	// 3. Yacht-scoped queries run against a single vessel
	if req.YachtID != nil {
		if _, err := uc.fleetClient.GetYacht(ctx, *req.YachtID); err != nil {
			if errors.Is(err, fleetClient.ErrYachtNotFound) {
				uc.logger.Warn("GetAvailabilityRange: yacht id=%s not found", *req.YachtID)
				return nil, ErrYachtNotFound
			}
			uc.logger.Error("GetAvailabilityRange: failed to get yacht id=%s: %v", *req.YachtID, err)
			return nil, fmt.Errorf("%w: failed to get yacht: %v", ErrInternal, err)
		}

		if err := validateYachtInPackage(pkg, *req.YachtID); err != nil {
			uc.logger.Warn("GetAvailabilityRange: yacht id=%s not in package id=%s", *req.YachtID, req.PackageID)
			return nil, err
		}

		capacity = 1
	}

	// 4. Load all bookings for the window in one query
	filter := domain.ResourceFilter{
		PackageID: req.PackageID,
		YachtID:   req.YachtID,
		StartDate: &req.StartDate,
		EndDate:   &req.EndDate,
	}

	bookings, err := uc.bookingRepo.GetForResource(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailabilityRange: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Load all blocks overlapping the window
	blocks, err := uc.blockRepo.GetForResource(ctx, req.PackageID, req.YachtID, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("GetAvailabilityRange: failed to get time blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get time blocks: %v", ErrInternal, err)
	}

	// 6. Compute per-day availability
	results := uc.calculator.ComputeAvailabilityRange(
		req.StartDate, req.EndDate, req.PackageID, req.YachtID, bookings, blocks, capacity)

	days := make([]Day, len(results))
	for i, r := range results {
		days[i] = Day{
			Date:          r.Date,
			Slots:         fromDomainSlots(r.Slots),
			IsFullyBooked: r.IsFullyBooked,
		}
	}

	uc.logger.Info("GetAvailabilityRange: computed %d days for package=%s", len(days), req.PackageID)

	return &Response{
		PackageID: req.PackageID,
		YachtID:   req.YachtID,
		StartDate: domain.NormalizeDate(req.StartDate),
		EndDate:   domain.NormalizeDate(req.EndDate),
		Days:      days,
	}, nil
}

// fromDomainSlots converts computed slots to the response model
func fromDomainSlots(slots []domain.AvailableTimeSlot) []Slot {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = Slot{
			Type:              s.TimeSlot.Type,
			Name:              s.TimeSlot.Name,
			IsAvailable:       s.IsAvailable,
			RemainingCapacity: s.RemainingCapacity,
		}
		if s.TimeSlot.HasTime() {
			start, _ := types.NewTimeStringFromParts(*s.TimeSlot.StartHour, *s.TimeSlot.StartMinute)
			end, _ := types.NewTimeStringFromParts(*s.TimeSlot.EndHour, *s.TimeSlot.EndMinute)
			out[i].StartTime = &start
			out[i].EndTime = &end
		}
	}
	return out
}
