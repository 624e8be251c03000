//go:build unit

package facility_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/facility"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFacility(t *testing.T, opensAtMin, closesAtMin int) *facility.Facility {
	t.Helper()
	f, err := facility.NewFacility(uuid.New(), uuid.New(), "テスト体育館", opensAtMin, closesAtMin)
	require.NoError(t, err)
	return f
}

func TestNewFacility(t *testing.T) {
	cases := []struct {
		name    string
		fname   string
		opens   int
		closes  int
		wantErr error
	}{
		{name: "基本成功ケース", fname: "コートA", opens: 540, closes: 1320},
		{name: "終日営業OK", fname: "24h施設", opens: 0, closes: 1440},
		{name: "空の名前はNG", fname: "", opens: 0, closes: 1440, wantErr: facility.ErrEmptyFacilityName},
		{name: "開店>=閉店はNG", fname: "x", opens: 600, closes: 600, wantErr: facility.ErrInvalidHours},
		{name: "閉店が1440超はNG", fname: "x", opens: 0, closes: 1441, wantErr: facility.ErrInvalidHours},
		{name: "負の開店時刻はNG", fname: "x", opens: -1, closes: 1440, wantErr: facility.ErrInvalidHours},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := facility.NewFacility(uuid.New(), uuid.New(), c.fname, c.opens, c.closes)
			if c.wantErr == nil {
				require.NoError(t, err)
				require.NotNil(t, f)
			} else {
				require.Nil(t, f)
				require.ErrorIs(t, err, c.wantErr)
			}
		})
	}
}

func TestIsOpenDuring(t *testing.T) {
	// 9:00-22:00 営業
	f := newFacility(t, 9*60, 22*60)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "営業時間内", start: at(10, 0), end: at(11, 0), want: true},
		{name: "開店ちょうどから", start: at(9, 0), end: at(10, 0), want: true},
		{name: "閉店ちょうどまで", start: at(21, 0), end: at(22, 0), want: true},
		{name: "開店前はNG", start: at(8, 30), end: at(9, 30), want: false},
		{name: "閉店をまたぐのはNG", start: at(21, 30), end: at(22, 30), want: false},
		{name: "日をまたぐのはNG", start: at(23, 0), end: at(25, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.IsOpenDuring(tt.start, tt.end))
		})
	}

	t.Run("深夜0時閉店の施設は翌0時終了を許容", func(t *testing.T) {
		allDay := newFacility(t, 0, 1440)
		assert.True(t, allDay.IsOpenDuring(at(23, 0), day.AddDate(0, 0, 1)))
	})

	t.Run("UTC以外のタイムゾーンでも施設ローカルの0時で判定する", func(t *testing.T) {
		allDay := newFacility(t, 0, 1440)
		ist := time.FixedZone("IST", 5*3600+30*60)
		start := time.Date(2026, 3, 1, 22, 0, 0, 0, ist)
		end := time.Date(2026, 3, 2, 0, 0, 0, 0, ist)

		assert.True(t, allDay.IsOpenDuring(start, end))
		// ローカル0時以外で日をまたぐのは引き続きNG
		assert.False(t, allDay.IsOpenDuring(start, end.Add(time.Minute)))
	})
}
