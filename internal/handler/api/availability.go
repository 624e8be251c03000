package api

import (
	"errors"
	"net/http"

	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Check availability
// @Description Count free courts for a facility, sport and time window
// @Tags availability
// @Produce json
// @Param facility_id query string true "Facility ID"
// @Param sport_id query string true "Sport ID"
// @Param start_time query string true "Window start (RFC3339)"
// @Param end_time query string true "Window end (RFC3339)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	free, err := h.availabilityQueries.CheckAvailability(c.Request.Context(), q.FacilityID, q.SportID, q.StartTime, q.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoCourtsAvailable):
			// Fully booked is an answer, not a failure
			c.JSON(http.StatusOK, resdto.AvailabilityResponse{
				AvailableCourts: 0,
				Available:       false,
			})
		case errors.Is(err, errs.ErrSportNotOffered):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Sport not offered at this facility",
			})
		case errors.Is(err, errs.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		AvailableCourts: free,
		Available:       true,
	})
}

// @Summary Find available court
// @Description Return the lowest-numbered free court for the window
// @Tags availability
// @Produce json
// @Param facility_id query string true "Facility ID"
// @Param sport_id query string true "Sport ID"
// @Param start_time query string true "Window start (RFC3339)"
// @Param end_time query string true "Window end (RFC3339)"
// @Success 200 {object} resdto.CourtAllocationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /availability/court [get]
func (h *AvailabilityHandler) FindAvailableCourt(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	court, err := h.availabilityQueries.FindAvailableCourt(c.Request.Context(), q.FacilityID, q.SportID, q.StartTime, q.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoCourtsAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "All courts are booked for the requested window",
			})
		case errors.Is(err, errs.ErrSportNotOffered):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Sport not offered at this facility",
			})
		case errors.Is(err, errs.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CourtAllocationResponse{CourtNumber: court})
}
