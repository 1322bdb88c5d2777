package create_time_block

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	fleetClient "github.com/voyagecrest/charter-booking-service/internal/integrations/fleetservice"
)

// UseCase creates an administrative time block.
type UseCase struct {
	blockRepo   TimeBlockRepository
	fleetClient FleetServiceClient
	logger      Logger
}

// NewUseCase creates the create time block use case.
func NewUseCase(
	blockRepo TimeBlockRepository,
	fleetClient FleetServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockRepo:   blockRepo,
		fleetClient: fleetClient,
		logger:      logger,
	}
}

// Execute runs the use case. Existing bookings inside the blocked window are
// left untouched; the block only stops new ones.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTimeBlock: range=%s..%s, reason=%s, package=%v, yacht=%v, by=%s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.Reason, req.PackageID, req.YachtID, req.CreatedBy)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTimeBlock: validation failed: %v", err)
		return nil, err
	}

	// 2. Validate the reason
	reason, err := domain.ParseBlockReason(req.Reason)
	if err != nil {
		uc.logger.Warn("CreateTimeBlock: invalid reason %q", req.Reason)
		return nil, fmt.Errorf("%w: %q", ErrInvalidReason, req.Reason)
	}

	// 3. Verify scoped resources against the fleet service
	if req.PackageID != nil {
		if _, err := uc.fleetClient.GetPackage(ctx, *req.PackageID); err != nil {
			if errors.Is(err, fleetClient.ErrPackageNotFound) {
				uc.logger.Warn("CreateTimeBlock: package id=%s not found", *req.PackageID)
				return nil, ErrPackageNotFound
			}
			uc.logger.Error("CreateTimeBlock: failed to get package id=%s: %v", *req.PackageID, err)
			return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
		}
	}

	if req.YachtID != nil {
		if _, err := uc.fleetClient.GetYacht(ctx, *req.YachtID); err != nil {
			if errors.Is(err, fleetClient.ErrYachtNotFound) {
				uc.logger.Warn("CreateTimeBlock: yacht id=%s not found", *req.YachtID)
				return nil, ErrYachtNotFound
			}
			uc.logger.Error("CreateTimeBlock: failed to get yacht id=%s: %v", *req.YachtID, err)
			return nil, fmt.Errorf("%w: failed to get yacht: %v", ErrInternal, err)
		}
	}

	// 4. Construct the block through the domain factory
	block, err := domain.NewTimeBlock(
		uuid.NewString(),
		req.StartDate,
		req.EndDate,
		reason,
		req.CreatedBy,
		req.PackageID,
		req.YachtID,
		req.Notes,
	)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBlockRange) {
			uc.logger.Warn("CreateTimeBlock: invalid range: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		uc.logger.Warn("CreateTimeBlock: domain validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Persist
	created, err := uc.blockRepo.Create(ctx, block)
	if err != nil {
		uc.logger.Error("CreateTimeBlock: failed to create block: %v", err)
		return nil, fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateTimeBlock: successfully created block id=%s", created.ID)

	return &Response{
		ID:        created.ID,
		StartDate: created.StartDate,
		EndDate:   created.EndDate,
		Reason:    string(created.Reason),
		PackageID: created.PackageID,
		YachtID:   created.YachtID,
		Notes:     created.Notes,
		CreatedBy: created.CreatedBy,
		CreatedAt: created.CreatedAt,
	}, nil
}
