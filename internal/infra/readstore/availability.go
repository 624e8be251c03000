package readstore

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(db db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

const courtConfigForSQL = `
SELECT id, facility_id, sport_id, court_count, price_per_hour_cents, created_at, updated_at
FROM court_configs
WHERE facility_id = $1 AND sport_id = $2`

// CourtConfigFor returns nil (not an error) when the sport has no courts at
// the facility; callers translate that into the not-offered condition.
func (r *AvailabilityReadStore) CourtConfigFor(ctx context.Context, facilityID, sportID uuid.UUID) (*queries.CourtConfigView, error) {
	var view queries.CourtConfigView
	var createdAt, updatedAt time.Time
	err := r.db.QueryRow(ctx, courtConfigForSQL, facilityID, sportID).Scan(
		&view.ID, &view.FacilityID, &view.SportID,
		&view.CourtCount, &view.PricePerHourCents,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find court config", err)
	}
	view.CreatedAt = createdAt
	view.UpdatedAt = updatedAt
	return &view, nil
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

func (r *AvailabilityReadStore) OccupiedCourts(ctx context.Context, facilityID, sportID uuid.UUID, start, end time.Time, statuses []booking.Status) ([]int, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	rows, err := r.db.Query(ctx, occupiedCourtsSQL, facilityID, sportID, names, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupied courts", err)
	}
	defer rows.Close()

	var occupied []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied court", err)
		}
		occupied = append(occupied, n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupied courts", err)
	}
	return occupied, nil
}
