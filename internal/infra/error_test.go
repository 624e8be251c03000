//go:build unit

package infra_test

import (
	"testing"

	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErrClassification(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantKind infra.RepositoryErrorKind
	}{
		// 23P01: 排他制約違反。同時リクエストが同一コート・重複枠を取った
		{name: "排他制約違反はCONFLICT", code: "23P01", wantKind: infra.KindConflict},
		{name: "一意制約違反はDUPLICATE_KEY", code: "23505", wantKind: infra.KindDuplicateKey},
		{name: "外部キー違反はFOREIGN_KEY_VIOLATED", code: "23503", wantKind: infra.KindForeignKeyViolated},
		{name: "その他のPGエラーはDB_FAILURE", code: "42P01", wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tt.code, Message: "test"}
			err := infra.WrapRepoErr("insert booking", pgErr)

			assert.True(t, infra.IsKind(err, tt.wantKind))
		})
	}
}

func TestWrapRepoErrExplicitKind(t *testing.T) {
	err := infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestWrapRepoErrNonPgError(t *testing.T) {
	err := infra.WrapRepoErr("query failed", errs.New("connection reset"))

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	// 元のエラーは辿れること
	require.Contains(t, err.Error(), "connection reset")
}

func TestIsKindNonRepositoryError(t *testing.T) {
	assert.False(t, infra.IsKind(errs.New("plain error"), infra.KindConflict))
	assert.False(t, infra.IsKind(nil, infra.KindConflict))
}
