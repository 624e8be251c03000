//go:build unit

package booking_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start, end string) booking.TimeSlot {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)
	slot, err := booking.NewTimeSlot(s, e)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("開始が終了より前ならOK", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, slot.Duration())
	})

	t.Run("開始と終了が同時刻はNG", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base, base)
		require.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})

	t.Run("開始が終了より後はNG", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base.Add(time.Hour), base)
		require.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})
}

// 半開区間 [start, end) の重なり判定
func TestTimeSlotOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{
			name: "完全一致は重なる",
			a:    [2]string{"2026-03-01T10:00:00Z", "2026-03-01T11:00:00Z"},
			b:    [2]string{"2026-03-01T10:00:00Z", "2026-03-01T11:00:00Z"},
			want: true,
		},
		{
			name: "部分的な重なり",
			a:    [2]string{"2026-03-01T10:00:00Z", "2026-03-01T11:00:00Z"},
			b:    [2]string{"2026-03-01T10:30:00Z", "2026-03-01T11:30:00Z"},
			want: true,
		},
		{
			name: "内包も重なる",
			a:    [2]string{"2026-03-01T10:00:00Z", "2026-03-01T12:00:00Z"},
			b:    [2]string{"2026-03-01T10:30:00Z", "2026-03-01T11:00:00Z"},
			want: true,
		},
		{
			name: "背中合わせ(終了=開始)は重ならない",
			a:    [2]string{"2026-03-01T10:00:00Z", "2026-03-01T11:00:00Z"},
			b:    [2]string{"2026-03-01T11:00:00Z", "2026-03-01T12:00:00Z"},
			want: false,
		},
		{
			name: "完全に離れている",
			a:    [2]string{"2026-03-01T10:00:00Z", "2026-03-01T11:00:00Z"},
			b:    [2]string{"2026-03-01T13:00:00Z", "2026-03-01T14:00:00Z"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustSlot(t, tt.a[0], tt.a[1])
			b := mustSlot(t, tt.b[0], tt.b[1])

			assert.Equal(t, tt.want, a.Overlaps(b))
			// 対称性
			assert.Equal(t, tt.want, b.Overlaps(a))
		})
	}
}

func TestTimeSlotToTstzrange(t *testing.T) {
	slot := mustSlot(t, "2026-03-01T10:00:00Z", "2026-03-01T11:00:00Z")
	assert.Equal(t, "[2026-03-01T10:00:00Z,2026-03-01T11:00:00Z)", slot.ToTstzrange())
}
