package request

import (
	"time"

	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	FacilityID uuid.UUID `json:"facility_id" binding:"required"`
	SportID    uuid.UUID `json:"sport_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		FacilityID: r.FacilityID,
		SportID:    r.SportID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}

// AvailabilityQuery binds the availability window from query parameters.
// Times are RFC3339.
type AvailabilityQuery struct {
	FacilityID uuid.UUID `form:"facility_id" binding:"required"`
	SportID    uuid.UUID `form:"sport_id" binding:"required"`
	StartTime  time.Time `form:"start_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime    time.Time `form:"end_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}
