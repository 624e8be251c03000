package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type FacilitySnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	OpensAtMin  int
	ClosesAtMin int
}

type CourtConfigSnapshot struct {
	ID                uuid.UUID
	FacilityID        uuid.UUID
	SportID           uuid.UUID
	CourtCount        int
	PricePerHourCents int64
}

type BookingSnapshot struct {
	ID          uuid.UUID
	FacilityID  uuid.UUID
	SportID     uuid.UUID
	CourtNumber int
	UserID      uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	Status      string
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}
