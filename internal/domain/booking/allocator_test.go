//go:build unit

package booking_test

import (
	"testing"

	"courtbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowestFreeCourt(t *testing.T) {
	tests := []struct {
		name       string
		courtCount int
		occupied   []int
		wantCourt  int
		wantOK     bool
	}{
		{
			name:       "全コート空きで1番を返す",
			courtCount: 3,
			occupied:   nil,
			wantCourt:  1,
			wantOK:     true,
		},
		{
			name:       "1番が埋まっていれば2番",
			courtCount: 3,
			occupied:   []int{1},
			wantCourt:  2,
			wantOK:     true,
		},
		{
			name:       "歯抜けの最小番号を選ぶ",
			courtCount: 5,
			occupied:   []int{1, 2, 4},
			wantCourt:  3,
			wantOK:     true,
		},
		{
			name:       "満杯ならfalse",
			courtCount: 2,
			occupied:   []int{1, 2},
			wantCourt:  0,
			wantOK:     false,
		},
		{
			name:       "コート1面のみで空き",
			courtCount: 1,
			occupied:   nil,
			wantCourt:  1,
			wantOK:     true,
		},
		{
			name:       "コート1面のみで埋まり",
			courtCount: 1,
			occupied:   []int{1},
			wantCourt:  0,
			wantOK:     false,
		},
		{
			name:       "範囲外のコート番号は無視される",
			courtCount: 2,
			occupied:   []int{1, 99},
			wantCourt:  2,
			wantOK:     true,
		},
		{
			name:       "重複した占有番号があっても壊れない",
			courtCount: 2,
			occupied:   []int{1, 1},
			wantCourt:  2,
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			court, ok := booking.LowestFreeCourt(tt.courtCount, tt.occupied)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCourt, court)
		})
	}
}

func TestAvailableCount(t *testing.T) {
	tests := []struct {
		name        string
		courtCount  int
		overlapping int
		want        int
	}{
		{name: "空きあり", courtCount: 3, overlapping: 1, want: 2},
		{name: "満杯でゼロ", courtCount: 2, overlapping: 2, want: 0},
		{name: "占有過多でも負にならない", courtCount: 2, overlapping: 5, want: 0},
		{name: "占有なし", courtCount: 4, overlapping: 0, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.AvailableCount(tt.courtCount, tt.overlapping))
		})
	}
}

// 割当の決定性: 同じ入力からは常に同じコートが返る
func TestLowestFreeCourtDeterministic(t *testing.T) {
	occupied := []int{2, 5, 3}

	first, ok := booking.LowestFreeCourt(6, occupied)
	require.True(t, ok)

	for i := 0; i < 10; i++ {
		court, ok := booking.LowestFreeCourt(6, occupied)
		require.True(t, ok)
		assert.Equal(t, first, court)
	}
	assert.Equal(t, 1, first)
}
