package repository

import (
	"context"
	"fmt"
	"time"

	"wonder-rides/internal/data/entity"
	"wonder-rides/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Transactional operations for conflict-checked creation.
	HasConflictTx(ctx context.Context, tx pgx.Tx, start, end time.Time) (bool, error)
	CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error

	Cancel(ctx context.Context, id uuid.UUID) error
	FindInRange(ctx context.Context, start, end time.Time) ([]*entity.Booking, error)
	FindLatestByPhone(ctx context.Context, phone string) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, start_time, end_time, customer_name, customer_phone,
		child_name, child_age, package_type, deposit_amount, notes, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.ChildName,
		&booking.ChildAge,
		&booking.PackageType,
		&booking.DepositAmount,
		&booking.Notes,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// HasConflictTx locks every non-cancelled booking intersecting
// [start, end) so a concurrent create cannot slip in between the check
// and the insert. Touching boundaries are not a conflict.
func (r *bookingRepository) HasConflictTx(ctx context.Context, tx pgx.Tx, start, end time.Time) (bool, error) {
	query := `
		SELECT id FROM bookings
		WHERE status != 'cancelled'
		  AND start_time < $2 AND end_time > $1
		LIMIT 1
		FOR UPDATE
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, start, end).Scan(&id)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		r.log.Error("Failed to check booking conflicts",
			zap.Error(err),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return false, fmt.Errorf("check booking conflicts: %w", err)
	}

	return true, nil
}

func (r *bookingRepository) CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (
			id, start_time, end_time, customer_name, customer_phone,
			child_name, child_age, package_type, deposit_amount, notes, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := tx.Exec(ctx, query,
		booking.ID,
		booking.StartTime,
		booking.EndTime,
		booking.CustomerName,
		booking.CustomerPhone,
		booking.ChildName,
		booking.ChildAge,
		booking.PackageType,
		booking.DepositAmount,
		booking.Notes,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer", booking.CustomerName),
			zap.Time("start", booking.StartTime),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

// Cancel flips status to cancelled. The row is kept for history.
func (r *bookingRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE bookings SET status = 'cancelled', updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("cancel booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Booking cancelled", zap.String("booking_id", id.String()))
	return nil
}

// FindInRange returns non-cancelled bookings inside the window,
// ascending by start time.
func (r *bookingRepository) FindInRange(ctx context.Context, start, end time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE start_time >= $1 AND end_time <= $2
		  AND status != 'cancelled'
		ORDER BY start_time ASC
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) FindLatestByPhone(ctx context.Context, phone string) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE customer_phone = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, phone))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by phone", zap.Error(err))
		return nil, fmt.Errorf("find booking by phone: %w", err)
	}

	return booking, nil
}
