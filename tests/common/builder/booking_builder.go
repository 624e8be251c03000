//go:build unit || e2e

package builder

import (
	"time"

	dombooking "courtbook/internal/domain/booking"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	FacilityID   uuid.UUID
	FacilityName string
	SportID      uuid.UUID
	SportName    string
	CourtNumber  int
	CourtCount   int
	UserID       uuid.UUID
	UserEmail    string
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	AmountCents  int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:           uuid.New(),
		FacilityID:   uuid.New(),
		FacilityName: "Test Gym",
		SportID:      uuid.New(),
		SportName:    "badminton",
		CourtNumber:  1,
		CourtCount:   2,
		UserID:       uuid.New(),
		UserEmail:    "player@example.com",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Status:       "pending",
		AmountCents:  300000,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	slot, err := dombooking.NewTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.FacilityID, b.SportID, b.UserID, b.CourtNumber, b.CourtCount, slot, dombooking.NewMoney(b.AmountCents))
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		FacilityID: b.FacilityID,
		SportID:    b.SportID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           b.ID,
		FacilityID:   b.FacilityID,
		FacilityName: b.FacilityName,
		SportID:      b.SportID,
		SportName:    b.SportName,
		CourtNumber:  b.CourtNumber,
		UserID:       b.UserID,
		UserEmail:    b.UserEmail,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       b.Status,
		AmountCents:  b.AmountCents,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:           b.ID,
		FacilityID:   b.FacilityID,
		FacilityName: b.FacilityName,
		SportName:    b.SportName,
		CourtNumber:  b.CourtNumber,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       b.Status,
		AmountCents:  b.AmountCents,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		FacilityID:  b.FacilityID,
		SportID:     b.SportID,
		CourtNumber: b.CourtNumber,
		UserID:      b.UserID,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      b.Status,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithFacilityID(facilityID uuid.UUID) *BookingBuilder {
	b.FacilityID = facilityID
	return b
}

func (b *BookingBuilder) WithSportID(sportID uuid.UUID) *BookingBuilder {
	b.SportID = sportID
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithCourtNumber(n int) *BookingBuilder {
	b.CourtNumber = n
	return b
}

func (b *BookingBuilder) WithWindow(start, end time.Time) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithAmountCents(cents int64) *BookingBuilder {
	b.AmountCents = cents
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	b.Status = "confirmed"
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = "cancelled"
	return b
}
