package repository

import (
	"context"

	"courtbook/internal/domain/facility"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type CourtConfigRepository struct{}

func NewCourtConfigRepository() *CourtConfigRepository {
	return &CourtConfigRepository{}
}

const upsertCourtConfigSQL = `
INSERT INTO court_configs (id, facility_id, sport_id, court_count, price_per_hour_cents)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (facility_id, sport_id)
DO UPDATE SET court_count = EXCLUDED.court_count,
              price_per_hour_cents = EXCLUDED.price_per_hour_cents,
              updated_at = now()
RETURNING id`

// Upsert keeps the one-config-per-(facility, sport) invariant via the unique
// constraint instead of a read-modify-write.
func (r *CourtConfigRepository) Upsert(ctx context.Context, tx db.DBTX, cfg *facility.CourtConfig) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, upsertCourtConfigSQL,
		cfg.ID(),
		cfg.FacilityID(),
		cfg.SportID(),
		cfg.CourtCount(),
		cfg.PricePerHourCents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert court config", err)
	}

	return id, nil
}
