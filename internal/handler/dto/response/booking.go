package response

import (
	"log/slog"
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	FacilityID   uuid.UUID `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	SportID      uuid.UUID `json:"sport_id"`
	SportName    string    `json:"sport_name"`
	CourtNumber  int       `json:"court_number"`
	UserID       uuid.UUID `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	AmountCents  int64     `json:"amount_cents"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	ID           uuid.UUID `json:"id"`
	FacilityID   uuid.UUID `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	SportName    string    `json:"sport_name"`
	CourtNumber  int       `json:"court_number"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	AmountCents  int64     `json:"amount_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to convert booking view", "error", err.Error())
	}
	return &resp
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	if err := copier.Copy(&resp, item); err != nil {
		slog.Error("failed to convert booking list item", "error", err.Error())
	}
	return &resp
}
