package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Facility / court configuration errors
	ErrFacilityNotFound = errors.New("facility not found")
	ErrSportNotOffered  = errors.New("sport not offered at this facility")

	// Booking errors
	ErrBookingNotFound       = errors.New("booking not found")
	ErrNoCourtsAvailable     = errors.New("no courts available for the requested window")
	ErrBookingConflict       = errors.New("booking conflict")
	ErrInvalidTimeSlot       = errors.New("invalid time slot")
	ErrOutsideOperatingHours = errors.New("window outside facility operating hours")
	ErrNotBookingOwner       = errors.New("booking belongs to another user")
	ErrInvalidStatusChange   = errors.New("invalid booking status transition")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")
	ErrDuplicateBooking       = errors.New("duplicate booking request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
