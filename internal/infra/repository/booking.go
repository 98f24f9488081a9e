package repository

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingRepository is the write-side store for bookings
// (commands.BookingRepository).
type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bookings (id, item_id, booker_id, start_at, end_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID(), b.ItemID(), b.BookerID(), b.Period().Start(), b.Period().End(), b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, item_id, booker_id, start_at, end_at, status
		FROM bookings WHERE id = $1`, id)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return b, nil
}

// Approve is a compare-and-swap on status: the WHERE clause refuses to touch
// a booking that is already APPROVED, so concurrent approvals resolve to one
// winner and one KindConflict.
func (r *BookingRepository) Approve(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings SET status = $1
		WHERE id = $2 AND status <> $1`,
		booking.StatusApproved.String(), id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to approve booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking already approved", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) Reject(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings SET status = $1 WHERE id = $2`,
		booking.StatusRejected.String(), id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to reject booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) ListByBookerAndItem(ctx context.Context, bookerID, itemID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, item_id, booker_id, start_at, end_at, status
		FROM bookings WHERE booker_id = $1 AND item_id = $2`,
		bookerID, itemID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by booker and item", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, itemID, bookerID uuid.UUID
		start, end           time.Time
		status               string
	)
	if err := row.Scan(&id, &itemID, &bookerID, &start, &end, &status); err != nil {
		return nil, err
	}
	period := booking.ReconstructPeriod(start, end)
	return booking.Reconstruct(id, itemID, bookerID, period, booking.Status(status)), nil
}
