package request

import (
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type UpsertCourtConfigRequest struct {
	SportID           uuid.UUID `json:"sport_id" binding:"required"`
	CourtCount        int       `json:"court_count" binding:"required,min=1"`
	PricePerHourCents int64     `json:"price_per_hour_cents" binding:"min=0"`
}

func (r UpsertCourtConfigRequest) ToCommand(facilityID uuid.UUID) commands.UpsertCourtConfigRequest {
	return commands.UpsertCourtConfigRequest{
		FacilityID:        facilityID,
		SportID:           r.SportID,
		CourtCount:        r.CourtCount,
		PricePerHourCents: r.PricePerHourCents,
	}
}
