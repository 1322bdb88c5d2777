package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	fleetClient "github.com/voyagecrest/charter-booking-service/internal/integrations/fleetservice"
	"github.com/voyagecrest/charter-booking-service/pkg/types"
)

// UseCase computes per-slot availability for one resource on one day.
type UseCase struct {
	bookingRepo BookingRepository
	blockRepo   TimeBlockRepository
	fleetClient FleetServiceClient
	calculator  *domain.Calculator
	logger      Logger
}

// NewUseCase creates the get availability use case.
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

// Execute runs the availability query.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: package=%s, yacht=%v, date=%s",
		req.PackageID, req.YachtID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the package and its capacity
	pkg, err := uc.fleetClient.GetPackage(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, fleetClient.ErrPackageNotFound) {
			uc.logger.Warn("GetAvailability: package id=%s not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("GetAvailability: failed to get package id=%s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	capacity := pkg.Capacity

	// 3. When a yacht is queried, verify it and narrow capacity to a single
	// vessel. One yacht can hold at most one charter per slot.
	if req.YachtID != nil {
		if _, err := uc.fleetClient.GetYacht(ctx, *req.YachtID); err != nil {
			if errors.Is(err, fleetClient.ErrYachtNotFound) {
				uc.logger.Warn("GetAvailability: yacht id=%s not found", *req.YachtID)
				return nil, ErrYachtNotFound
			}
			uc.logger.Error("GetAvailability: failed to get yacht id=%s: %v", *req.YachtID, err)
			return nil, fmt.Errorf("%w: failed to get yacht: %v", ErrInternal, err)
		}

		if err := validateYachtInPackage(pkg, *req.YachtID); err != nil {
			uc.logger.Warn("GetAvailability: yacht id=%s not in package id=%s", *req.YachtID, req.PackageID)
			return nil, err
		}

		capacity = 1
	}

	// 4. Load the day's bookings for the resource
	filter := domain.ResourceFilter{
		PackageID: req.PackageID,
		YachtID:   req.YachtID,
		StartDate: &req.Date,
		EndDate:   &req.Date,
	}

	bookings, err := uc.bookingRepo.GetForResource(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Load blocks touching the day
	blocks, err := uc.blockRepo.GetForResource(ctx, req.PackageID, req.YachtID, req.Date, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get time blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get time blocks: %v", ErrInternal, err)
	}

	// 6. Compute availability
	result := uc.calculator.ComputeAvailability(req.Date, req.PackageID, req.YachtID, bookings, blocks, capacity)

	uc.logger.Info("GetAvailability: package=%s date=%s fullyBooked=%v",
		req.PackageID, result.Date.Format(domain.DateFormat), result.IsFullyBooked)

	return &Response{
		Date:          result.Date,
		PackageID:     req.PackageID,
		YachtID:       req.YachtID,
		Slots:         fromDomainSlots(result.Slots),
		IsFullyBooked: result.IsFullyBooked,
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
			// slot hours were validated at catalog construction
			start, _ := types.NewTimeStringFromParts(*s.TimeSlot.StartHour, *s.TimeSlot.StartMinute)
			end, _ := types.NewTimeStringFromParts(*s.TimeSlot.EndHour, *s.TimeSlot.EndMinute)
			out[i].StartTime = &start
			out[i].EndTime = &end
		}
	}
	return out
}
