package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCourtNumber = errors.New("court number out of range")
	ErrNotPending         = errors.New("only pending bookings can be confirmed")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
)

// Booking is one reserved court-hour-range. A persisted row with an active
// status is the only thing that claims a court; a request that never commits
// leaves nothing reserved.
type Booking struct {
	id          uuid.UUID
	facilityID  uuid.UUID
	sportID     uuid.UUID
	courtNumber int
	userID      uuid.UUID
	slot        TimeSlot
	status      Status
	amount      Money
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking creates a pending booking on an allocator-assigned court.
// courtCount is the configured number of courts for the sport; the court
// number must fall in 1..courtCount.
func NewBooking(
	facilityID, sportID, userID uuid.UUID,
	courtNumber, courtCount int,
	slot TimeSlot,
	amount Money,
) (*Booking, error) {
	if courtNumber < 1 || courtNumber > courtCount {
		return nil, ErrInvalidCourtNumber
	}
	if amount.Cents() < 0 {
		return nil, ErrNegativeAmount
	}

	return &Booking{
		id:          uuid.New(),
		facilityID:  facilityID,
		sportID:     sportID,
		courtNumber: courtNumber,
		userID:      userID,
		slot:        slot,
		status:      StatusPending,
		amount:      amount,
	}, nil
}

func ReconstructBooking(
	id, facilityID, sportID, userID uuid.UUID,
	courtNumber int,
	slot TimeSlot,
	status Status,
	amount Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		facilityID:  facilityID,
		sportID:     sportID,
		courtNumber: courtNumber,
		userID:      userID,
		slot:        slot,
		status:      status,
		amount:      amount,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Confirm transitions pending -> confirmed on payment success.
func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	return nil
}

// Cancel soft-cancels the booking, releasing the court. The row is kept
// for history.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) FacilityID() uuid.UUID { return b.facilityID }
func (b *Booking) SportID() uuid.UUID    { return b.sportID }
func (b *Booking) CourtNumber() int      { return b.courtNumber }
func (b *Booking) UserID() uuid.UUID     { return b.userID }
func (b *Booking) Slot() TimeSlot        { return b.slot }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Amount() Money         { return b.amount }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
