package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/facility"
	"courtbook/internal/domain/user"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

const idempotencyKeyTTL = 24 * time.Hour

type CreateBookingRequest struct {
	FacilityID uuid.UUID `json:"facility_id"`
	SportID    uuid.UUID `json:"sport_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	// CreateBooking allocates the lowest-numbered free court and writes the
	// booking in one transaction. When the allocation loses a concurrent race
	// it re-allocates once against the fresh ledger before giving up.
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	ConfirmBooking(ctx context.Context, bookingID, actorID uuid.UUID) error
	CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole string) error
	// ExpirePending cancels pending bookings older than ttl, releasing their
	// courts. Returns the number of bookings cancelled.
	ExpirePending(ctx context.Context, ttl time.Duration) (int64, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	req CreateBookingRequest,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	if idempotencyKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}

	slot, err := booking.NewTimeSlot(req.StartTime, req.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}

	requestHash := calculateRequestHash(req)
	claimed, err := uc.claimIdempotencyKey(ctx, idempotencyKey, userID, requestHash)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return uc.replayExisting(ctx, idempotencyKey, userID, requestHash)
	}

	view, err := uc.allocateAndCreate(ctx, req, userID, idempotencyKey, slot)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

// claimIdempotencyKey runs in its own short transaction so a replayed request
// never contends with the allocation transaction.
func (uc *bookingUseCaseImpl) claimIdempotencyKey(ctx context.Context, key, userID uuid.UUID, requestHash string) (bool, error) {
	expiresAt := uc.clock.Now().Add(idempotencyKeyTTL)

	var claimed bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, "POST /bookings", requestHash, expiresAt)
		if err != nil {
			return err
		}
		claimed = inserted
		return nil
	})
	if err != nil {
		return false, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	return claimed, nil
}

func (uc *bookingUseCaseImpl) replayExisting(ctx context.Context, key, userID uuid.UUID, requestHash string) (*CreateBookingResult, error) {
	record, err := uc.uow.CommandReads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	switch record.Status {
	case "completed":
		if record.ResultBookingID == nil {
			return nil, errs.New("completed request missing result booking ID")
		}
		// Use system-level access for idempotency replay
		view, err := uc.bookingQueries.GetByIDSystem(ctx, *record.ResultBookingID)
		if err != nil {
			return nil, err
		}
		return &CreateBookingResult{Booking: view, IsReplayed: true}, nil

	case "processing":
		if record.RequestHash != requestHash {
			return nil, errs.ErrDuplicateBooking
		}
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

// allocateAndCreate runs allocation and insert in one transaction. The
// bookings exclusion constraint rejects a court claimed by a concurrent
// transaction after our overlap read; that surfaces as KindConflict, and we
// re-run the whole allocation once against the committed state.
func (uc *bookingUseCaseImpl) allocateAndCreate(
	ctx context.Context,
	req CreateBookingRequest,
	userID, idempotencyKey uuid.UUID,
	slot booking.TimeSlot,
) (*queries.BookingView, error) {
	const allocationAttempts = 2

	var lastErr error
	for attempt := 0; attempt < allocationAttempts; attempt++ {
		bookingID, err := uc.tryAllocateOnce(ctx, req, userID, idempotencyKey, slot)
		if err == nil {
			// Read-after-write: full joined view from the read store
			view, err := uc.bookingQueries.GetByIDSystem(ctx, bookingID)
			if err != nil {
				return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			return view, nil
		}
		if !errors.Is(err, errs.ErrBookingConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (uc *bookingUseCaseImpl) tryAllocateOnce(
	ctx context.Context,
	req CreateBookingRequest,
	userID, idempotencyKey uuid.UUID,
	slot booking.TimeSlot,
) (uuid.UUID, error) {
	var bookingID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		facSnap, err := tx.Reads().FacilityByID(ctx, req.FacilityID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrFacilityNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		fac, err := facility.NewFacility(facSnap.ID, facSnap.OwnerID, facSnap.Name, facSnap.OpensAtMin, facSnap.ClosesAtMin)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if !fac.IsOpenDuring(slot.Start(), slot.End()) {
			return errs.ErrOutsideOperatingHours
		}

		cfgSnap, err := tx.Reads().CourtConfigFor(ctx, req.FacilityID, req.SportID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if cfgSnap == nil {
			return errs.ErrSportNotOffered
		}

		occupied, err := tx.Bookings().OccupiedCourts(ctx, tx.DB(), req.FacilityID, req.SportID, slot, booking.ActiveStatuses())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		courtNumber, ok := booking.LowestFreeCourt(cfgSnap.CourtCount, occupied)
		if !ok {
			return errs.ErrNoCourtsAvailable
		}

		cfg := facility.ReconstructCourtConfig(
			cfgSnap.ID, cfgSnap.FacilityID, cfgSnap.SportID,
			cfgSnap.CourtCount, cfgSnap.PricePerHourCents,
			time.Time{}, time.Time{},
		)
		amount := booking.NewMoney(cfg.AmountCentsFor(slot.Duration()))

		entity, err := booking.NewBooking(req.FacilityID, req.SportID, userID, courtNumber, cfgSnap.CourtCount, slot, amount)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// Lost the allocation race: another transaction claimed the
				// court for an overlapping window after our read.
				return errs.ErrBookingConflict
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := uc.enqueueBookingNotification(ctx, tx, id, "booking_created"); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		responseHash := calculateIDHash(id)
		if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, responseHash, id); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		bookingID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookingID, nil
}

func (uc *bookingUseCaseImpl) ConfirmBooking(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := uc.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if entity.UserID() != actorID {
			return errs.ErrNotBookingOwner
		}
		if err := entity.Confirm(); err != nil {
			return errs.Mark(err, errs.ErrInvalidStatusChange)
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return uc.enqueueBookingNotification(ctx, tx, bookingID, "booking_confirmed")
	})
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := uc.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if actorRole != string(user.RoleAdmin) && entity.UserID() != actorID {
			return errs.ErrNotBookingOwner
		}
		if err := entity.Cancel(); err != nil {
			return errs.Mark(err, errs.ErrInvalidStatusChange)
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return uc.enqueueBookingNotification(ctx, tx, bookingID, "booking_cancelled")
	})
}

func (uc *bookingUseCaseImpl) ExpirePending(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := uc.clock.Now().Add(-ttl)

	var expired int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Bookings().CancelExpiredPending(ctx, tx.DB(), cutoff)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		expired = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}

func (uc *bookingUseCaseImpl) loadBooking(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	snap, err := tx.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slot, err := booking.NewTimeSlot(snap.StartTime, snap.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return booking.ReconstructBooking(
		snap.ID, snap.FacilityID, snap.SportID, snap.UserID,
		snap.CourtNumber, slot, booking.Status(snap.Status),
		booking.NewMoney(0), time.Time{}, time.Time{},
	), nil
}

func (uc *bookingUseCaseImpl) enqueueBookingNotification(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, topic string) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       topic,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, payload, uc.clock.Now())
}

func calculateRequestHash(req CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
