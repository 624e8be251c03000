package api

import (
	"errors"
	"net/http"

	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourtConfigHandler struct {
	courtConfigCommands commands.CourtConfigCommands
}

func NewCourtConfigHandler(courtConfigCommands commands.CourtConfigCommands) *CourtConfigHandler {
	return &CourtConfigHandler{
		courtConfigCommands: courtConfigCommands,
	}
}

// @Summary Upsert court configuration
// @Description Set the court count and hourly price for a sport at a facility
// @Tags facilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Facility ID"
// @Param request body reqdto.UpsertCourtConfigRequest true "Court configuration"
// @Success 200 {object} resdto.CourtConfigResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /facilities/{id}/court-configs [put]
func (h *CourtConfigHandler) UpsertCourtConfig(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	facilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid facility ID format",
		})
		return
	}

	var req reqdto.UpsertCourtConfigRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.courtConfigCommands.UpsertCourtConfig(c.Request.Context(), req.ToCommand(facilityID), userID, string(role))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrFacilityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Facility not found",
			})
		case errors.Is(err, commands.ErrNotFacilityOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Facility belongs to another owner",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CourtConfigResponse{CourtConfigID: result.CourtConfigID})
}
