package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusspots/services/checkin"
	"campusspots/utils"
)

// CheckInHandler serves crowd-sourced check-ins and the occupancy view.
type CheckInHandler struct {
	Service checkin.Service
}

func NewCheckInHandler(service checkin.Service) *CheckInHandler {
	return &CheckInHandler{Service: service}
}

// SubmitCheckInHandler records a check-in. The occupancy recompute happens in
// the background; the response only confirms the stored record.
func (h *CheckInHandler) SubmitCheckInHandler(c *gin.Context) {
	var input checkin.CheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONInvalidInput(c, err)
		return
	}

	record, err := h.Service.Submit(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to record check-in", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"checkIn": record})
}

// SpotOccupancyHandler returns the aggregated occupancy snapshot for a spot.
func (h *CheckInHandler) SpotOccupancyHandler(c *gin.Context) {
	spotID := c.Param("id")
	if spotID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing spot id", "")
		return
	}

	snapshot, err := h.Service.Occupancy(c.Request.Context(), spotID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load occupancy", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"occupancy": snapshot})
}
