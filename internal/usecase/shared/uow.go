package shared

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/facility"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	CourtConfigs() CourtConfigRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	FacilityByID(ctx context.Context, id uuid.UUID) (*FacilitySnapshot, error)
	CourtConfigFor(ctx context.Context, facilityID, sportID uuid.UUID) (*CourtConfigSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// OccupiedCourts returns the court numbers held by bookings in the given
	// statuses whose windows overlap slot, for one (facility, sport).
	OccupiedCourts(ctx context.Context, tx db.DBTX, facilityID, sportID uuid.UUID, slot booking.TimeSlot, statuses []booking.Status) ([]int, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
	// CancelExpiredPending releases courts held by pending bookings created
	// before the cutoff. Returns the number of bookings cancelled.
	CancelExpiredPending(ctx context.Context, tx db.DBTX, cutoff time.Time) (int64, error)
}

type CourtConfigRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, cfg *facility.CourtConfig) (uuid.UUID, error)
}

type IdempotencyRepository interface {
	// TryInsert claims the key; false means another request holds it already.
	TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, responseBodyHash string, resultBookingID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
