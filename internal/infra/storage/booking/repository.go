package booking

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

// Repository persists charter bookings.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository on top of the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"customer_id",
	"package_id",
	"yacht_id",
	"booking_date",
	"time_slot_type",
	"time_slot_name",
	"slot_start_hour",
	"slot_start_minute",
	"slot_end_hour",
	"slot_end_minute",
	"guest_count",
	"status",
	"package_name",
	"package_price",
	"yacht_name",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create inserts a new booking.
// When the context carries an active transaction the insert runs inside it,
// which is how the create-booking usecase keeps the availability check and
// the insert atomic.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var slotType, slotName *string
	var startHour, startMinute, endHour, endMinute *int
	if b.TimeSlot != nil {
		slotType = &b.TimeSlot.Type
		slotName = &b.TimeSlot.Name
		startHour = b.TimeSlot.StartHour
		startMinute = b.TimeSlot.StartMinute
		endHour = b.TimeSlot.EndHour
		endMinute = b.TimeSlot.EndMinute
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"customer_id",
			"package_id",
			"yacht_id",
			"booking_date",
			"time_slot_type",
			"time_slot_name",
			"slot_start_hour",
			"slot_start_minute",
			"slot_end_hour",
			"slot_end_minute",
			"guest_count",
			"status",
			"package_name",
			"package_price",
			"yacht_name",
			"notes",
		).
		Values(
			b.ID,
			b.CustomerID,
			b.PackageID,
			b.YachtID,
			b.BookingDate,
			slotType,
			slotName,
			startHour,
			startMinute,
			endHour,
			endMinute,
			b.GuestCount,
			b.Status,
			b.PackageName,
			b.PackagePrice,
			b.YachtName,
			b.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID fetches a single booking by id.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByCustomer lists a customer's bookings, newest first.
// Optionally filters by status.
func (r *Repository) GetByCustomer(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("booking_date DESC, slot_start_hour DESC NULLS LAST, slot_start_minute DESC NULLS LAST")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetForResource lists bookings for a package, or for a specific yacht of
// the fleet, within an optional date window.
//
// The filter supports:
// - a date window (StartDate, EndDate)
// - a specific status, or all non-inactive statuses by default
// - IncludeInactive to also return cancelled and draft bookings
//
// Inside a transaction with a single-day window the query takes FOR UPDATE
// row locks, so two concurrent create-booking flows on the same day
// serialize on the existing rows.
func (r *Repository) GetForResource(ctx context.Context, filter domain.ResourceFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	resourceCond := squirrel.Or{squirrel.Eq{"package_id": filter.PackageID}}
	if filter.YachtID != nil {
		resourceCond = append(resourceCond, squirrel.Eq{"yacht_id": *filter.YachtID})
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(resourceCond)

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": domain.NormalizeDate(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": domain.EndOfDay(*filter.EndDate)})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	singleDay := filter.StartDate != nil && filter.EndDate != nil &&
		domain.NormalizeDate(*filter.StartDate).Equal(domain.NormalizeDate(*filter.EndDate))

	if singleDay {
		selectBuilder = selectBuilder.OrderBy("slot_start_hour ASC NULLS FIRST, slot_start_minute ASC NULLS FIRST")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date ASC, slot_start_hour ASC NULLS FIRST")
	}

	// Row locks only make sense for the single-day check inside the
	// create-booking transaction.
	if dbmetrics.IsInTransaction(ctx) && singleDay {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForResource - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForResource - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus sets the booking status.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CompleteFinished moves confirmed bookings whose date is before the cutoff
// to completed. Used by the nightly completion job. Returns the number of
// bookings updated.
func (r *Repository) CompleteFinished(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Lt{"booking_date": domain.NormalizeDate(cutoff)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CompleteFinished - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CompleteFinished - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CompleteFinished - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// Cancel cancels a booking with a reason.
func (r *Repository) Cancel(ctx context.Context, id string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking reads one booking row, reassembling the time slot from its
// denormalized columns.
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var slotType, slotName sql.NullString
	var startHour, startMinute, endHour, endMinute sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.CustomerID,
		&b.PackageID,
		&b.YachtID,
		&b.BookingDate,
		&slotType,
		&slotName,
		&startHour,
		&startMinute,
		&endHour,
		&endMinute,
		&b.GuestCount,
		&b.Status,
		&b.PackageName,
		&b.PackagePrice,
		&b.YachtName,
		&b.Notes,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	if slotType.Valid {
		slot, err := domain.NewTimeSlot(
			slotType.String,
			slotName.String,
			nullableInt(startHour),
			nullableInt(startMinute),
			nullableInt(endHour),
			nullableInt(endMinute),
		)
		if err != nil {
			return nil, err
		}
		b.TimeSlot = &slot
	}

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
