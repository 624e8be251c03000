package response

import (
	"github.com/google/uuid"
)

type CourtConfigResponse struct {
	CourtConfigID uuid.UUID `json:"court_config_id"`
}
