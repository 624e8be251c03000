package facility

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyFacilityName   = errors.New("facility name cannot be empty")
	ErrFacilityNameTooLong = errors.New("facility name is too long (max 255 characters)")
	ErrInvalidHours        = errors.New("invalid operating hours")
)

const (
	MaxFacilityNameLength = 255
	minutesPerDay         = 24 * 60
)

// Facility operating hours are wall-clock minutes from midnight,
// closesAtMin exclusive. A facility closing at midnight uses 1440.
type Facility struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	opensAtMin  int
	closesAtMin int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewFacility(id, ownerID uuid.UUID, name string, opensAtMin, closesAtMin int) (*Facility, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyFacilityName
	}
	if len(name) > MaxFacilityNameLength {
		return nil, ErrFacilityNameTooLong
	}
	if opensAtMin < 0 || closesAtMin > minutesPerDay || opensAtMin >= closesAtMin {
		return nil, ErrInvalidHours
	}

	return &Facility{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		opensAtMin:  opensAtMin,
		closesAtMin: closesAtMin,
	}, nil
}

// IsOpenDuring reports whether [start, end) falls inside the facility's
// operating hours on a single day. Windows crossing midnight are never open.
func (f *Facility) IsOpenDuring(start, end time.Time) bool {
	sameDay := start.Year() == end.Year() && start.YearDay() == end.YearDay()
	endMin := end.Hour()*60 + end.Minute()
	if !sameDay {
		// Allow a window ending exactly at the following local midnight.
		y, m, d := start.Date()
		midnight := time.Date(y, m, d+1, 0, 0, 0, 0, start.Location())
		if !end.Equal(midnight) {
			return false
		}
		endMin = minutesPerDay
	}
	startMin := start.Hour()*60 + start.Minute()

	return startMin >= f.opensAtMin && endMin <= f.closesAtMin
}

func (f *Facility) ID() uuid.UUID        { return f.id }
func (f *Facility) OwnerID() uuid.UUID   { return f.ownerID }
func (f *Facility) Name() string         { return f.name }
func (f *Facility) OpensAtMin() int      { return f.opensAtMin }
func (f *Facility) ClosesAtMin() int     { return f.closesAtMin }
func (f *Facility) CreatedAt() time.Time { return f.createdAt }
func (f *Facility) UpdatedAt() time.Time { return f.updatedAt }
