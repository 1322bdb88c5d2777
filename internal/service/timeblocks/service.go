package timeblocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	blockRepo "github.com/voyagecrest/charter-booking-service/internal/infra/storage/timeblock"
	"github.com/voyagecrest/charter-booking-service/internal/service/timeblocks/models"
)

// timeNow is swapped out in tests
var timeNow = time.Now

// Service handles time block reads and removal.
type Service struct {
	blockRepo TimeBlockRepository
	logger    Logger
}

// NewService creates the timeblocks service.
func NewService(blockRepo TimeBlockRepository, logger Logger) *Service {
	return &Service{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

// GetByID fetches a time block by id.
func (s *Service) GetByID(ctx context.Context, id string) (*models.TimeBlockResponse, error) {
	s.logger.Info("GetByID: fetching time block id=%s", id)

	block, err := s.blockRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("GetByID: time block id=%s not found", id)
			return nil, ErrBlockNotFound
		}
		s.logger.Error("GetByID: repository error for block id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimeBlock(block), nil
}

// List returns blocks overlapping the requested window.
func (s *Service) List(ctx context.Context, req *models.ListTimeBlocksRequest) (*models.TimeBlockListResponse, error) {
	start := req.StartDate
	end := req.EndDate

	// default window: today through the standard booking horizon
	if start.IsZero() {
		start = domain.NormalizeDate(timeNow())
	}
	if end.IsZero() {
		end = start.AddDate(0, 0, domain.DefaultMaxLookaheadDays)
	}

	if domain.NormalizeDate(start).After(domain.NormalizeDate(end)) {
		return nil, fmt.Errorf("%w: startDate is after endDate", ErrInvalidInput)
	}

	s.logger.Info("List: fetching time blocks for %s..%s",
		start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	blocks, err := s.blockRepo.List(ctx, start, end)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d time blocks", len(blocks))
	return models.FromDomainTimeBlockList(blocks), nil
}

// Delete removes a time block, re-opening the dates it covered.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting time block id=%s", id)

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: time block id=%s not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted time block id=%s", id)
	return nil
}
