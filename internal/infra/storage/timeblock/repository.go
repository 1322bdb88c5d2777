package timeblock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	"github.com/voyagecrest/charter-booking-service/pkg/dbmetrics"
	"github.com/voyagecrest/charter-booking-service/pkg/psqlbuilder"
)

// Repository persists administrative time blocks.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a time block repository on top of the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var blockColumns = []string{
	"id",
	"start_date",
	"end_date",
	"reason",
	"yacht_id",
	"package_id",
	"notes",
	"created_by",
	"created_at",
}

// Create inserts a new time block.
func (r *Repository) Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_blocks").
		Columns(
			"id",
			"start_date",
			"end_date",
			"reason",
			"yacht_id",
			"package_id",
			"notes",
			"created_by",
		).
		Values(
			block.ID,
			block.StartDate,
			block.EndDate,
			block.Reason,
			block.YachtID,
			block.PackageID,
			block.Notes,
			block.CreatedBy,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return block, nil
}

// GetByID fetches a single time block by id.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("time_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	block, err := scanBlock(row)
	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %v", ErrScanRow, err)
	}

	return block, nil
}

// GetForResource lists blocks that can affect the given package or yacht
// within the date window: global blocks, blocks on the package and blocks on
// the yacht. The window check is done on overlap, so multi-day blocks that
// only partially cover the window are included.
func (r *Repository) GetForResource(ctx context.Context, packageID string, yachtID *string, startDate, endDate time.Time) ([]*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	scopeCond := squirrel.Or{
		squirrel.And{squirrel.Eq{"yacht_id": nil}, squirrel.Eq{"package_id": nil}},
		squirrel.Eq{"package_id": packageID},
	}
	if yachtID != nil {
		scopeCond = append(scopeCond, squirrel.Eq{"yacht_id": *yachtID})
	}

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("time_blocks").
		Where(scopeCond).
		Where(squirrel.LtOrEq{"start_date": domain.EndOfDay(endDate)}).
		Where(squirrel.GtOrEq{"end_date": domain.NormalizeDate(startDate)}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForResource - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForResource - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// List returns all blocks overlapping the date window, newest first.
func (r *Repository) List(ctx context.Context, startDate, endDate time.Time) ([]*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("time_blocks").
		Where(squirrel.LtOrEq{"start_date": domain.EndOfDay(endDate)}).
		Where(squirrel.GtOrEq{"end_date": domain.NormalizeDate(startDate)}).
		OrderBy("start_date DESC, created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// Delete removes a time block.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlock(row rowScanner) (*domain.TimeBlock, error) {
	var block domain.TimeBlock
	var createdAt sql.NullTime

	err := row.Scan(
		&block.ID,
		&block.StartDate,
		&block.EndDate,
		&block.Reason,
		&block.YachtID,
		&block.PackageID,
		&block.Notes,
		&block.CreatedBy,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	block.CreatedAt = createdAt.Time

	return &block, nil
}

func scanBlocks(rows *sql.Rows) ([]*domain.TimeBlock, error) {
	blocks := make([]*domain.TimeBlock, 0)

	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
