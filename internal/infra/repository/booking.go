package repository

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (id, facility_id, sport_id, court_number, user_id, start_time, end_time, status, amount_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

// Create inserts the booking row. The bookings_no_double_booking exclusion
// constraint rejects the insert with 23P01 when a competing transaction
// already claimed the same court for an overlapping window; that surfaces
// here as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.FacilityID(),
		b.SportID(),
		b.CourtNumber(),
		b.UserID(),
		b.Slot().Start(),
		b.Slot().End(),
		b.Status().String(),
		b.Amount().Cents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

const occupiedCourtsSQL = `
SELECT DISTINCT court_number
FROM bookings
WHERE facility_id = $1
  AND sport_id = $2
  AND status = ANY($3)
  AND start_time < $5
  AND end_time > $4
ORDER BY court_number`

func (r *BookingRepository) OccupiedCourts(
	ctx context.Context,
	tx db.DBTX,
	facilityID, sportID uuid.UUID,
	slot booking.TimeSlot,
	statuses []booking.Status,
) ([]int, error) {
	states := make([]string, len(statuses))
	for i, s := range statuses {
		states[i] = s.String()
	}

	rows, err := tx.Query(ctx, occupiedCourtsSQL, facilityID, sportID, states, slot.Start(), slot.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupied courts", err)
	}
	defer rows.Close()

	var occupied []int
	for rows.Next() {
		var court int
		if err := rows.Scan(&court); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied court", err)
		}
		occupied = append(occupied, court)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupied courts", err)
	}

	return occupied, nil
}

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $2, updated_at = now()
WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx, updateBookingStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

const cancelExpiredPendingSQL = `
UPDATE bookings
SET status = 'cancelled', updated_at = now()
WHERE status = 'pending'
  AND created_at < $1`

func (r *BookingRepository) CancelExpiredPending(ctx context.Context, tx db.DBTX, cutoff time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, cancelExpiredPendingSQL, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel expired pending bookings", err)
	}

	return tag.RowsAffected(), nil
}
