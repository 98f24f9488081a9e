package readstore

import (
	"context"
	"errors"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingReadStore serves joined booking views (queries.BookingViewRepo).
// Rows come back ordered by start descending; the query engine relies on it.
type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingViewSelect = `
	SELECT b.id, b.start_at, b.end_at, b.status,
	       i.id, i.owner_id, i.name,
	       u.id, u.name
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.pool.QueryRow(ctx, bookingViewSelect+` WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view by id", err)
	}
	return view, nil
}

func (r *BookingReadStore) ListByBookerID(ctx context.Context, bookerID uuid.UUID) ([]queries.BookingView, error) {
	return r.list(ctx, bookingViewSelect+` WHERE b.booker_id = $1 ORDER BY b.start_at DESC`, bookerID)
}

func (r *BookingReadStore) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]queries.BookingView, error) {
	return r.list(ctx, bookingViewSelect+` WHERE i.owner_id = $1 ORDER BY b.start_at DESC`, ownerID)
}

func (r *BookingReadStore) ListByItemID(ctx context.Context, itemID uuid.UUID) ([]queries.BookingView, error) {
	return r.list(ctx, bookingViewSelect+` WHERE b.item_id = $1 ORDER BY b.start_at DESC`, itemID)
}

func (r *BookingReadStore) list(ctx context.Context, sql string, args ...any) ([]queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking views", err)
	}
	defer rows.Close()

	result := make([]queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		result = append(result, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking views", err)
	}
	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	var status string
	err := row.Scan(
		&v.ID, &v.Start, &v.End, &status,
		&v.Item.ID, &v.Item.OwnerID, &v.Item.Name,
		&v.Booker.ID, &v.Booker.Name,
	)
	if err != nil {
		return nil, err
	}
	v.Status = booking.Status(status)
	return &v, nil
}
