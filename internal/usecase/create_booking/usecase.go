package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	fleetClient "github.com/voyagecrest/charter-booking-service/internal/integrations/fleetservice"
	"github.com/voyagecrest/charter-booking-service/pkg/types"
)

// UseCase creates a booking. The availability decision and the insert run in
// one serializable transaction with row locks on the day's bookings, so two
// concurrent requests for the last spot cannot both succeed.
type UseCase struct {
	bookingRepo      BookingRepository
	blockRepo        TimeBlockRepository
	fleetClient      FleetServiceClient
	calculator       *domain.Calculator
	txManager        TransactionManager
	maxLookaheadDays int
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the create booking use case.
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo TimeBlockRepository,
	fleetClient FleetServiceClient,
	calculator *domain.Calculator,
	txManager TransactionManager,
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
		txManager:        txManager,
		maxLookaheadDays: maxLookaheadDays,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute runs the use case.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, package=%s, yacht=%v, date=%s, slot=%s",
		req.CustomerID, req.PackageID, req.YachtID, req.Date.Format(domain.DateFormat), req.SlotType)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Resolve the requested slot against the deployed catalog
	slot, ok := uc.calculator.Catalog().SlotByType(req.SlotType)
	if !ok {
		uc.logger.Warn("CreateBooking: unknown slot type %q", req.SlotType)
		return nil, fmt.Errorf("%w: %q", ErrUnknownSlotType, req.SlotType)
	}

	// 3. Validate the date against the booking horizon
	if err := validateDate(req.Date, now, uc.maxLookaheadDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Resolve the package
	pkg, err := uc.fleetClient.GetPackage(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, fleetClient.ErrPackageNotFound) {
			uc.logger.Warn("CreateBooking: package id=%s not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("CreateBooking: failed to get package id=%s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	if !pkg.IsActive {
		uc.logger.Warn("CreateBooking: package id=%s is inactive", req.PackageID)
		return nil, ErrPackageInactive
	}

	capacity := pkg.Capacity

	// 5. Resolve the yacht when the booking is pinned to one vessel
	var yachtName *string
	if req.YachtID != nil {
		yacht, err := uc.fleetClient.GetYacht(ctx, *req.YachtID)
		if err != nil {
			if errors.Is(err, fleetClient.ErrYachtNotFound) {
				uc.logger.Warn("CreateBooking: yacht id=%s not found", *req.YachtID)
				return nil, ErrYachtNotFound
			}
			uc.logger.Error("CreateBooking: failed to get yacht id=%s: %v", *req.YachtID, err)
			return nil, fmt.Errorf("%w: failed to get yacht: %v", ErrInternal, err)
		}

		if err := validateYachtInPackage(pkg, *req.YachtID); err != nil {
			uc.logger.Warn("CreateBooking: yacht id=%s not in package id=%s", *req.YachtID, req.PackageID)
			return nil, err
		}

		if req.GuestCount > yacht.MaxGuests {
			uc.logger.Warn("CreateBooking: %d guests exceed yacht id=%s limit of %d",
				req.GuestCount, *req.YachtID, yacht.MaxGuests)
			return nil, fmt.Errorf("%w: %d > %d", ErrTooManyGuests, req.GuestCount, yacht.MaxGuests)
		}

		yachtName = &yacht.Name
		// a single vessel holds one charter per slot
		capacity = 1
	}

	guestCount := req.GuestCount
	if guestCount == 0 {
		guestCount = domain.DefaultGuestCount
	}

	var result *domain.Booking

	// 6. Availability decision and insert in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Lock and load the day's bookings (FOR UPDATE)
		filter := domain.ResourceFilter{
			PackageID: req.PackageID,
			YachtID:   req.YachtID,
			StartDate: &req.Date,
			EndDate:   &req.Date,
		}

		bookings, err := uc.bookingRepo.GetForResource(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Load blocks touching the day
		blocks, err := uc.blockRepo.GetForResource(txCtx, req.PackageID, req.YachtID, req.Date, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get time blocks: %v", err)
			return fmt.Errorf("%w: failed to get time blocks: %v", ErrInternal, err)
		}

		// 6.3. A block on the slot rejects regardless of capacity
		blockedOnly := uc.calculator.ComputeAvailability(req.Date, req.PackageID, req.YachtID, nil, blocks, capacity)
		if !slotAvailable(blockedOnly, req.SlotType) {
			uc.logger.Warn("CreateBooking: date %s is blocked for package=%s",
				req.Date.Format(domain.DateFormat), req.PackageID)
			return ErrDateBlocked
		}

		// 6.4. Capacity check with the real bookings
		availability := uc.calculator.ComputeAvailability(req.Date, req.PackageID, req.YachtID, bookings, blocks, capacity)
		if !slotAvailable(availability, req.SlotType) {
			uc.logger.Warn("CreateBooking: slot %s on %s is full for package=%s",
				req.SlotType, req.Date.Format(domain.DateFormat), req.PackageID)
			return ErrSlotNotAvailable
		}

		// 6.5. Build the booking with denormalized fleet data
		booking := &domain.Booking{
			ID:          uuid.NewString(),
			CustomerID:  req.CustomerID,
			PackageID:   req.PackageID,
			YachtID:     req.YachtID,
			BookingDate: domain.NormalizeDate(req.Date),
			TimeSlot:    &slot,
			GuestCount:  guestCount,
			Status:      domain.StatusConfirmed,

			PackageName:  pkg.Name,
			PackagePrice: pkg.Price,
			YachtName:    yachtName,
			Notes:        req.Notes,
		}

		// 6.6. Cross-check against the conflict detector. With correct
		// capacity accounting this only fires for yacht-pinned bookings,
		// but the ids are worth logging either way.
		conflicts := domain.CheckConflicts(booking, bookings)
		if conflicts.HasConflict && len(conflicts.ConflictingIDs) >= capacity {
			uc.logger.Warn("CreateBooking: conflict with existing bookings %v", conflicts.ConflictingIDs)
			return ErrSlotNotAvailable
		}

		// 6.7. Insert
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	resp := &Response{
		ID:           result.ID,
		CustomerID:   result.CustomerID,
		PackageID:    result.PackageID,
		YachtID:      result.YachtID,
		Date:         result.BookingDate,
		SlotType:     result.TimeSlot.Type,
		SlotName:     result.TimeSlot.Name,
		GuestCount:   result.GuestCount,
		Status:       string(result.Status),
		PackageName:  result.PackageName,
		PackagePrice: result.PackagePrice,
		YachtName:    result.YachtName,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}
	if result.TimeSlot.HasTime() {
		start, _ := types.NewTimeStringFromParts(*result.TimeSlot.StartHour, *result.TimeSlot.StartMinute)
		end, _ := types.NewTimeStringFromParts(*result.TimeSlot.EndHour, *result.TimeSlot.EndMinute)
		resp.StartTime = &start
		resp.EndTime = &end
	}

	return resp, nil
}

// slotAvailable finds the requested slot in a computed day result
func slotAvailable(result domain.AvailabilityResult, slotType string) bool {
	for _, s := range result.Slots {
		if s.TimeSlot.Type == slotType {
			return s.IsAvailable
		}
	}
	return false
}
