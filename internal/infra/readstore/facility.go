package readstore

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type FacilityReadStore struct {
	db db.DBTX
}

func NewFacilityReadStore(db db.DBTX) *FacilityReadStore {
	return &FacilityReadStore{db: db}
}

const findFacilityByIDSQL = `
SELECT id, owner_id, name, opens_at_min, closes_at_min
FROM facilities
WHERE id = $1`

func (r *FacilityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.FacilitySnapshot, error) {
	var snap shared.FacilitySnapshot
	err := r.db.QueryRow(ctx, findFacilityByIDSQL, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Name, &snap.OpensAtMin, &snap.ClosesAtMin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("facility not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find facility by ID", err)
	}
	return &snap, nil
}
