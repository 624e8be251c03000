package readstore

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyReadStore struct{}

func NewIdempotencyReadStore() *IdempotencyReadStore {
	return &IdempotencyReadStore{}
}

const getIdempotencyKeySQL = `
SELECT key, user_id, status, request_hash, result_booking_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2`

func (r *IdempotencyReadStore) Get(ctx context.Context, db db.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	var record shared.IdempotencyRecord
	var resultID pgtype.UUID
	err := db.QueryRow(ctx, getIdempotencyKeySQL, key, userID).Scan(
		&record.Key, &record.UserID, &record.Status, &record.RequestHash,
		&resultID, &record.ExpiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	record.ResultBookingID = pgconv.UUIDPtrFromPgtype(resultID)
	return &record, nil
}
