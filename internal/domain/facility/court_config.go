package facility

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCourtCount = errors.New("court count must be positive")
	ErrNegativePrice     = errors.New("price per hour cannot be negative")
)

// CourtConfig declares how many physical courts a facility dedicates to a
// sport and the hourly price. At most one config exists per (facility, sport);
// the database enforces the uniqueness.
type CourtConfig struct {
	id                uuid.UUID
	facilityID        uuid.UUID
	sportID           uuid.UUID
	courtCount        int
	pricePerHourCents int64
	createdAt         time.Time
	updatedAt         time.Time
}

func NewCourtConfig(facilityID, sportID uuid.UUID, courtCount int, pricePerHourCents int64) (*CourtConfig, error) {
	if courtCount < 1 {
		return nil, ErrInvalidCourtCount
	}
	if pricePerHourCents < 0 {
		return nil, ErrNegativePrice
	}

	return &CourtConfig{
		id:                uuid.New(),
		facilityID:        facilityID,
		sportID:           sportID,
		courtCount:        courtCount,
		pricePerHourCents: pricePerHourCents,
	}, nil
}

func ReconstructCourtConfig(
	id, facilityID, sportID uuid.UUID,
	courtCount int,
	pricePerHourCents int64,
	createdAt, updatedAt time.Time,
) *CourtConfig {
	return &CourtConfig{
		id:                id,
		facilityID:        facilityID,
		sportID:           sportID,
		courtCount:        courtCount,
		pricePerHourCents: pricePerHourCents,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// AmountCentsFor prices a window with integer-cent arithmetic, pro-rated by
// the minute so half-hour slots don't round through floats.
func (c *CourtConfig) AmountCentsFor(d time.Duration) int64 {
	minutes := int64(d / time.Minute)
	return c.pricePerHourCents * minutes / 60
}

func (c *CourtConfig) ID() uuid.UUID            { return c.id }
func (c *CourtConfig) FacilityID() uuid.UUID    { return c.facilityID }
func (c *CourtConfig) SportID() uuid.UUID       { return c.sportID }
func (c *CourtConfig) CourtCount() int          { return c.courtCount }
func (c *CourtConfig) PricePerHourCents() int64 { return c.pricePerHourCents }
func (c *CourtConfig) CreatedAt() time.Time     { return c.createdAt }
func (c *CourtConfig) UpdatedAt() time.Time     { return c.updatedAt }
