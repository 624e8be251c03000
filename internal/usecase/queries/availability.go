package queries

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// AvailabilityReadStore supplies the two ledger facts the allocator needs:
// the court configuration and the occupied courts for a window.
type AvailabilityReadStore interface {
	CourtConfigFor(ctx context.Context, facilityID, sportID uuid.UUID) (*CourtConfigView, error)
	OccupiedCourts(ctx context.Context, facilityID, sportID uuid.UUID, start, end time.Time, statuses []booking.Status) ([]int, error)
}

type AvailabilityQueries interface {
	// CheckAvailability returns how many courts are free for the window.
	// ErrSportNotOffered when no court configuration exists,
	// ErrNoCourtsAvailable when every court is taken.
	CheckAvailability(ctx context.Context, facilityID, sportID uuid.UUID, start, end time.Time) (int, error)
	// FindAvailableCourt returns the lowest-numbered free court for the
	// window. Same error taxonomy as CheckAvailability. The returned number
	// is advisory on the read side: only createBooking claims a court.
	FindAvailableCourt(ctx context.Context, facilityID, sportID uuid.UUID, start, end time.Time) (int, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, facilityID, sportID uuid.UUID, start, end time.Time) (int, error) {
	slot, cfg, err := q.lookup(ctx, facilityID, sportID, start, end)
	if err != nil {
		return 0, err
	}

	occupied, err := q.store.OccupiedCourts(ctx, facilityID, sportID, slot.Start(), slot.End(), booking.ActiveStatuses())
	if err != nil {
		return 0, err
	}

	free := booking.AvailableCount(cfg.CourtCount, len(occupied))
	if free == 0 {
		return 0, errs.ErrNoCourtsAvailable
	}
	return free, nil
}

func (q *availabilityQueriesImpl) FindAvailableCourt(ctx context.Context, facilityID, sportID uuid.UUID, start, end time.Time) (int, error) {
	slot, cfg, err := q.lookup(ctx, facilityID, sportID, start, end)
	if err != nil {
		return 0, err
	}

	occupied, err := q.store.OccupiedCourts(ctx, facilityID, sportID, slot.Start(), slot.End(), booking.ActiveStatuses())
	if err != nil {
		return 0, err
	}

	court, ok := booking.LowestFreeCourt(cfg.CourtCount, occupied)
	if !ok {
		return 0, errs.ErrNoCourtsAvailable
	}
	return court, nil
}

func (q *availabilityQueriesImpl) lookup(ctx context.Context, facilityID, sportID uuid.UUID, start, end time.Time) (booking.TimeSlot, *CourtConfigView, error) {
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return booking.TimeSlot{}, nil, errs.ErrInvalidTimeSlot
	}

	cfg, err := q.store.CourtConfigFor(ctx, facilityID, sportID)
	if err != nil {
		return booking.TimeSlot{}, nil, err
	}
	if cfg == nil {
		// Business condition, not a fault: the sport is simply not
		// bookable at this facility.
		return booking.TimeSlot{}, nil, errs.ErrSportNotOffered
	}

	return slot, cfg, nil
}
