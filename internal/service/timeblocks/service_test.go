package timeblocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	blockRepo "github.com/voyagecrest/charter-booking-service/internal/infra/storage/timeblock"
	"github.com/voyagecrest/charter-booking-service/internal/service/timeblocks/models"
)

type fakeBlockRepo struct {
	blocks map[string]*domain.TimeBlock

	listStart time.Time
	listEnd   time.Time
	deletedID string
}

func newFakeBlockRepo(blocks ...*domain.TimeBlock) *fakeBlockRepo {
	repo := &fakeBlockRepo{blocks: make(map[string]*domain.TimeBlock)}
	for _, b := range blocks {
		repo.blocks[b.ID] = b
	}
	return repo
}

func (f *fakeBlockRepo) GetByID(_ context.Context, id string) (*domain.TimeBlock, error) {
	b, ok := f.blocks[id]
	if !ok {
		return nil, blockRepo.ErrBlockNotFound
	}
	return b, nil
}

func (f *fakeBlockRepo) List(_ context.Context, startDate, endDate time.Time) ([]*domain.TimeBlock, error) {
	f.listStart = startDate
	f.listEnd = endDate

	var out []*domain.TimeBlock
	for _, b := range f.blocks {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBlockRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.blocks[id]; !ok {
		return blockRepo.ErrBlockNotFound
	}
	f.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBlock(t *testing.T, id string) *domain.TimeBlock {
	t.Helper()
	block, err := domain.NewTimeBlock(id,
		time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC),
		domain.BlockReasonMaintenance, "admin", nil, nil, nil)
	require.NoError(t, err)
	return block
}

func TestList_DefaultWindow(t *testing.T) {
	origNow := timeNow
	timeNow = func() time.Time { return time.Date(2025, 10, 1, 14, 30, 0, 0, time.UTC) }
	defer func() { timeNow = origNow }()

	repo := newFakeBlockRepo(testBlock(t, "TB1"))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListTimeBlocksRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.TimeBlocks, 1)

	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), repo.listStart)
	assert.Equal(t, repo.listStart.AddDate(0, 0, domain.DefaultMaxLookaheadDays), repo.listEnd)
}

func TestList_InvertedRange(t *testing.T) {
	svc := NewService(newFakeBlockRepo(), nopLogger{})

	_, err := svc.List(context.Background(), &models.ListTimeBlocksRequest{
		StartDate: time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	repo := newFakeBlockRepo(testBlock(t, "TB1"))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "TB1")
	require.NoError(t, err)
	assert.Equal(t, "TB1", resp.ID)
	assert.True(t, resp.IsGlobal)
	assert.Equal(t, "2025-10-10", resp.StartDate)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeBlockRepo(testBlock(t, "TB1"))
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), "TB1"))
	assert.Equal(t, "TB1", repo.deletedID)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBlockNotFound)
}
