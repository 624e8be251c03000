package readstore

import (
	"context"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const findBookingByIDSQL = `
SELECT b.id, b.facility_id, f.name AS facility_name,
       b.sport_id, s.name AS sport_name,
       b.court_number, b.user_id, u.email AS user_email,
       b.start_time, b.end_time, b.status, b.amount_cents,
       b.created_at, b.updated_at
FROM bookings b
JOIN facilities f ON f.id = b.facility_id
JOIN sports s ON s.id = b.sport_id
JOIN users u ON u.id = b.user_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var view queries.BookingView
	err := r.db.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&view.ID, &view.FacilityID, &view.FacilityName,
		&view.SportID, &view.SportName,
		&view.CourtNumber, &view.UserID, &view.UserEmail,
		&view.StartTime, &view.EndTime, &view.Status, &view.AmountCents,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &view, nil
}

const findBookingsByUserSQL = `
SELECT b.id, b.facility_id, f.name AS facility_name,
       s.name AS sport_name, b.court_number,
       b.start_time, b.end_time, b.status, b.amount_cents, b.created_at
FROM bookings b
JOIN facilities f ON f.id = b.facility_id
JOIN sports s ON s.id = b.sport_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2`

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, findBookingsByUserSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		var createdAt time.Time
		if err := rows.Scan(
			&item.ID, &item.FacilityID, &item.FacilityName,
			&item.SportName, &item.CourtNumber,
			&item.StartTime, &item.EndTime, &item.Status, &item.AmountCents,
			&createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		item.CreatedAt = createdAt
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking list", err)
	}
	return items, nil
}
