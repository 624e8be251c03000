//go:build e2e

package booking_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"courtbook/internal/domain/user"
	"courtbook/internal/handler/dto/request"
	"courtbook/internal/handler/dto/response"
	"courtbook/tests/common/authtest"
	"courtbook/tests/common/dbtest"
	"courtbook/tests/common/httptest"
	"courtbook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	availabilityURL = "/api/availability"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(BookingSuite))
}

type fixture struct {
	facilityID uuid.UUID
	sportID    uuid.UUID
	start      time.Time
	end        time.Time
}

// 2面のバドミントンコートを持つ施設を用意する
func (s *BookingSuite) setupFacility(t *testing.T, courtCount int) fixture {
	ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleOwner))
	facilityID := dbtest.CreateTestFacility(t, s.DB, ownerID, "Test Gym", 0, 1440)
	sportID := dbtest.GetSportID(t, s.DB, "badminton")
	dbtest.CreateTestCourtConfig(t, s.DB, facilityID, sportID, courtCount, 300000)

	start := time.Date(2027, 4, 1, 10, 0, 0, 0, time.UTC)
	return fixture{
		facilityID: facilityID,
		sportID:    sportID,
		start:      start,
		end:        start.Add(time.Hour),
	}
}

func (s *BookingSuite) createRequest(f fixture) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		FacilityID: f.facilityID,
		SportID:    f.sportID,
		StartTime:  f.start,
		EndTime:    f.end,
	}
}

func withIdempotencyKey(key uuid.UUID) map[string]string {
	return map[string]string{"Idempotency-Key": key.String()}
}

func availabilityQuery(f fixture) string {
	q := url.Values{}
	q.Set("facility_id", f.facilityID.String())
	q.Set("sport_id", f.sportID.String())
	q.Set("start_time", f.start.Format(time.RFC3339))
	q.Set("end_time", f.end.Format(time.RFC3339))
	return availabilityURL + "?" + q.Encode()
}

// =============================================================================
// TestCreateBooking - 予約作成APIのE2E
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("正常系: 最小番号のコートが割り当てられる", func() {
		t := s.T()

		f := s.setupFacility(t, 2)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		expected := &response.BookingResponse{
			FacilityID:   f.facilityID,
			FacilityName: "Test Gym",
			SportID:      f.sportID,
			SportName:    "badminton",
			CourtNumber:  1,
			UserEmail:    "player1@example.com",
			StartTime:    f.start,
			EndTime:      f.end,
			Status:       "pending",
			AmountCents:  300000, // 1時間 × 300000セント
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "UserID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("正常系: 同一枠の2件目はコート2", func() {
		t := s.T()

		f := s.setupFacility(t, 2)
		token1 := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))
		token2 := authtest.CreateAndLogin(t, s.DB, s.Router, "player2@example.com", string(user.RolePlayer))

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token1, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w1.Code)

		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token2, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w2.Code)

		var second response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &second))
		require.Equal(t, 2, second.CourtNumber)
	})

	s.Run("異常系: 満杯なら409", func() {
		t := s.T()

		f := s.setupFacility(t, 1)
		token1 := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))
		token2 := authtest.CreateAndLogin(t, s.DB, s.Router, "player2@example.com", string(user.RolePlayer))

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token1, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w1.Code)

		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token2, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())
	})

	s.Run("異常系: 隣接枠(終了=開始)は重複しない", func() {
		t := s.T()

		f := s.setupFacility(t, 1)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w1.Code)

		next := f
		next.start = f.end
		next.end = f.end.Add(time.Hour)
		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(next), token, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())

		var second response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &second))
		require.Equal(t, 1, second.CourtNumber)
	})

	s.Run("異常系: 未提供スポーツは404", func() {
		t := s.T()

		f := s.setupFacility(t, 2)
		f.sportID = dbtest.GetSportID(t, s.DB, "tennis") // court_configなし
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("異常系: Idempotency-Keyなしは400", func() {
		t := s.T()

		f := s.setupFacility(t, 2)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.createRequest(f), token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestIdempotency - 冪等キーのリプレイ挙動
// =============================================================================

func (s *BookingSuite) TestIdempotency() {
	s.Run("同一キー同一ボディは同じ予約を返す(200)", func() {
		t := s.T()

		f := s.setupFacility(t, 2)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))
		key := uuid.New()

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token, withIdempotencyKey(key))
		require.Equal(t, http.StatusCreated, w1.Code)

		var first response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &first))

		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token, withIdempotencyKey(key))
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())

		var replayed response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &replayed))
		require.Equal(t, first.ID, replayed.ID)

		// 2件目のコートは消費されていない
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityQuery(f), nil, "")
		require.Equal(t, http.StatusOK, aw.Code)
		var avail response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &avail))
		require.Equal(t, 1, avail.AvailableCourts)
	})

	s.Run("同一キー別ボディは409", func() {
		t := s.T()

		f := s.setupFacility(t, 2)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))
		key := uuid.New()

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token, withIdempotencyKey(key))
		require.Equal(t, http.StatusCreated, w1.Code)

		altered := f
		altered.start = f.start.Add(2 * time.Hour)
		altered.end = f.end.Add(2 * time.Hour)
		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(altered), token, withIdempotencyKey(key))
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())
	})
}

// =============================================================================
// TestConcurrentBooking - 排他制約による二重予約防止
// =============================================================================

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("同時リクエストでもコート数を超えて予約されない", func() {
		t := s.T()

		const attempts = 8
		const courtCount = 2

		f := s.setupFacility(t, courtCount)

		tokens := make([]string, attempts)
		for i := range attempts {
			email := fmt.Sprintf("racer%d@example.com", i)
			tokens[i] = authtest.CreateAndLogin(t, s.DB, s.Router, email, string(user.RolePlayer))
		}

		body, err := json.Marshal(s.createRequest(f))
		require.NoError(t, err)

		type result struct {
			code  int
			court int
		}
		results := make(chan result, attempts)

		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()

				req := nethttptest.NewRequest(http.MethodPost, bookingsURL, bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+token)
				req.Header.Set("Idempotency-Key", uuid.New().String())

				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)

				r := result{code: w.Code}
				if w.Code == http.StatusCreated {
					var resp response.BookingResponse
					if decodeErr := json.NewDecoder(w.Body).Decode(&resp); decodeErr == nil {
						r.court = resp.CourtNumber
					}
				}
				results <- r
			}(tokens[i])
		}
		wg.Wait()
		close(results)

		var created, conflicted int
		courts := map[int]int{}
		for r := range results {
			switch r.code {
			case http.StatusCreated:
				created++
				courts[r.court]++
			case http.StatusConflict:
				conflicted++
			default:
				t.Errorf("unexpected status code %d", r.code)
			}
		}

		// コート数ちょうどだけ成功し、同じコートは二重に割り当てられない
		require.Equal(t, courtCount, created, "exactly one booking per court should succeed")
		require.Equal(t, attempts-courtCount, conflicted)
		for court, n := range courts {
			require.Equal(t, 1, n, "court %d was double-booked", court)
		}

		// 枠は満杯になっている
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityQuery(f), nil, "")
		require.Equal(t, http.StatusOK, aw.Code)
		var avail response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &avail))
		require.False(t, avail.Available)
	})
}

// =============================================================================
// TestBookingLifecycle - 確定・取消とコート解放
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("確定後にステータスがconfirmedになる", func() {
		t := s.T()

		f := s.setupFacility(t, 1)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/confirm", nil, token)
		require.Equal(t, http.StatusNoContent, cw.Code, cw.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, gw.Code)

		var fetched response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &fetched))
		require.Equal(t, "confirmed", fetched.Status)
	})

	s.Run("取消でコートが解放され再予約できる", func() {
		t := s.T()

		f := s.setupFacility(t, 1)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		// 同じ枠がもう一度取れる
		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())
	})

	s.Run("他人の予約は取得も取消もできない", func() {
		t := s.T()

		f := s.setupFacility(t, 2)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "player2@example.com", string(user.RolePlayer))

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), ownerToken, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		// 所有者以外には存在自体を隠す
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+created.ID.String(), nil, otherToken)
		require.Equal(t, http.StatusNotFound, gw.Code)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			bookingsURL+"/"+created.ID.String(), nil, otherToken)
		require.Equal(t, http.StatusForbidden, dw.Code)
	})

	s.Run("一覧は自分の予約のみ返す", func() {
		t := s.T()

		f := s.setupFacility(t, 2)
		token1 := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))
		token2 := authtest.CreateAndLogin(t, s.DB, s.Router, "player2@example.com", string(user.RolePlayer))

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token1, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w1.Code)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token2)
		require.Equal(t, http.StatusOK, lw.Code)

		var list []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &list))
		require.Empty(t, list)
	})
}

// =============================================================================
// TestAvailability - 空き照会の公開エンドポイント
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("予約が増えると空き面数が減る", func() {
		t := s.T()

		f := s.setupFacility(t, 2)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityQuery(f), nil, "")
		require.Equal(t, http.StatusOK, aw.Code)
		var avail response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &avail))
		require.Equal(t, 2, avail.AvailableCourts)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code)

		aw2 := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityQuery(f), nil, "")
		require.Equal(t, http.StatusOK, aw2.Code)
		var after response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw2.Body, &after))
		require.Equal(t, 1, after.AvailableCourts)
	})

	s.Run("同一コートの連続予約は1面としてしか数えない", func() {
		t := s.T()

		f := s.setupFacility(t, 2)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "player1@example.com", string(user.RolePlayer))

		// 10:00-11:00 と 11:00-12:00 はどちらもコート1に割り当てられる
		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(f), token, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w1.Code)

		next := f
		next.start = f.end
		next.end = f.end.Add(time.Hour)
		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.createRequest(next), token, withIdempotencyKey(uuid.New()))
		require.Equal(t, http.StatusCreated, w2.Code)

		var second response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &second))
		require.Equal(t, 1, second.CourtNumber)

		// 両予約を覆う2時間枠でもコート2は空いている
		wide := f
		wide.end = f.end.Add(time.Hour)
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityQuery(wide), nil, "")
		require.Equal(t, http.StatusOK, aw.Code)
		var avail response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &avail))
		require.Equal(t, 1, avail.AvailableCourts)
	})
}
