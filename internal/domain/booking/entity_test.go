//go:build unit

package booking_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T, courtNumber, courtCount int) *booking.Booking {
	t.Helper()
	slot := mustSlot(t, "2026-03-01T10:00:00Z", "2026-03-01T11:00:00Z")
	b, err := booking.NewBooking(uuid.New(), uuid.New(), uuid.New(), courtNumber, courtCount, slot, booking.NewMoney(3000))
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := newTestBooking(t, 2, 4)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, 2, b.CourtNumber())
		assert.Equal(t, int64(3000), b.Amount().Cents())
		assert.True(t, b.IsActive())
	})

	t.Run("コート番号検証", func(t *testing.T) {
		slot := mustSlot(t, "2026-03-01T10:00:00Z", "2026-03-01T11:00:00Z")

		cases := []struct {
			name        string
			courtNumber int
			courtCount  int
			errIs       error
		}{
			{name: "下限OK (1)", courtNumber: 1, courtCount: 3},
			{name: "上限OK (count)", courtNumber: 3, courtCount: 3},
			{name: "0はNG", courtNumber: 0, courtCount: 3, errIs: booking.ErrInvalidCourtNumber},
			{name: "上限超えはNG", courtNumber: 4, courtCount: 3, errIs: booking.ErrInvalidCourtNumber},
			{name: "負数はNG", courtNumber: -1, courtCount: 3, errIs: booking.ErrInvalidCourtNumber},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b, err := booking.NewBooking(uuid.New(), uuid.New(), uuid.New(), c.courtNumber, c.courtCount, slot, booking.NewMoney(0))
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, b)
				} else {
					require.Nil(t, b)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("負の金額はNG", func(t *testing.T) {
		slot := mustSlot(t, "2026-03-01T10:00:00Z", "2026-03-01T11:00:00Z")
		_, err := booking.NewBooking(uuid.New(), uuid.New(), uuid.New(), 1, 1, slot, booking.NewMoney(-1))
		require.ErrorIs(t, err, booking.ErrNegativeAmount)
	})
}

func TestBookingConfirm(t *testing.T) {
	t.Run("pendingからconfirmedへ", func(t *testing.T) {
		b := newTestBooking(t, 1, 2)

		require.NoError(t, b.Confirm())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.True(t, b.IsActive())
	})

	t.Run("confirmed済みの再確定はNG", func(t *testing.T) {
		b := newTestBooking(t, 1, 2)
		require.NoError(t, b.Confirm())

		require.ErrorIs(t, b.Confirm(), booking.ErrNotPending)
	})

	t.Run("cancelled済みの確定はNG", func(t *testing.T) {
		b := newTestBooking(t, 1, 2)
		require.NoError(t, b.Cancel())

		require.ErrorIs(t, b.Confirm(), booking.ErrNotPending)
	})
}

func TestBookingCancel(t *testing.T) {
	t.Run("pendingの取消でコートが解放される", func(t *testing.T) {
		b := newTestBooking(t, 1, 2)

		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.IsActive())
	})

	t.Run("confirmedも取消可能", func(t *testing.T) {
		b := newTestBooking(t, 1, 2)
		require.NoError(t, b.Confirm())

		require.NoError(t, b.Cancel())
		assert.False(t, b.IsActive())
	})

	t.Run("二重取消はNG", func(t *testing.T) {
		b := newTestBooking(t, 1, 2)
		require.NoError(t, b.Cancel())

		require.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
	})
}

func TestReconstructBooking(t *testing.T) {
	id := uuid.New()
	slot := mustSlot(t, "2026-03-01T10:00:00Z", "2026-03-01T11:00:00Z")
	createdAt := time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)

	b := booking.ReconstructBooking(id, uuid.New(), uuid.New(), uuid.New(), 2, slot, booking.StatusConfirmed, booking.NewMoney(4500), createdAt, createdAt)

	assert.Equal(t, id, b.ID())
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, createdAt, b.CreatedAt())
}
