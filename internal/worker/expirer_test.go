//go:build unit

package worker

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingCommands struct {
	gotTTL  time.Duration
	expired int64
	err     error
	calls   int
}

func (s *stubBookingCommands) CreateBooking(ctx context.Context, req commands.CreateBookingRequest, userID, idempotencyKey uuid.UUID) (*commands.CreateBookingResult, error) {
	return nil, nil
}

func (s *stubBookingCommands) ConfirmBooking(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return nil
}

func (s *stubBookingCommands) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole string) error {
	return nil
}

func (s *stubBookingCommands) ExpirePending(ctx context.Context, ttl time.Duration) (int64, error) {
	s.calls++
	s.gotTTL = ttl
	return s.expired, s.err
}

func testBookingConfig() config.BookingConfig {
	return config.BookingConfig{
		PendingTTL:     15 * time.Minute,
		ExpiryInterval: time.Minute,
	}
}

func TestPendingExpirerRunOnce(t *testing.T) {
	t.Run("設定のTTLで期限切れ処理を呼ぶ", func(t *testing.T) {
		stub := &stubBookingCommands{expired: 2}
		expirer, err := NewPendingExpirer(stub, testBookingConfig())
		require.NoError(t, err)

		expirer.runOnce()

		assert.Equal(t, 1, stub.calls)
		assert.Equal(t, 15*time.Minute, stub.gotTTL)
	})

	t.Run("エラーでもpanicしない", func(t *testing.T) {
		stub := &stubBookingCommands{err: errs.New("db down")}
		expirer, err := NewPendingExpirer(stub, testBookingConfig())
		require.NoError(t, err)

		assert.NotPanics(t, func() { expirer.runOnce() })
		assert.Equal(t, 1, stub.calls)
	})
}

func TestPendingExpirerStartStop(t *testing.T) {
	stub := &stubBookingCommands{}
	expirer, err := NewPendingExpirer(stub, testBookingConfig())
	require.NoError(t, err)

	require.NoError(t, expirer.Start())
	require.NoError(t, expirer.Stop())
}
