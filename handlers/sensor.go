package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusspots/models"
	"campusspots/services/sensor"
	"campusspots/utils"
)

// SensorHandler ingests readings from campus sensor units and serves the
// live view.
type SensorHandler struct {
	Service sensor.Service
}

func NewSensorHandler(service sensor.Service) *SensorHandler {
	return &SensorHandler{Service: service}
}

// IngestReadingHandler records a reading pushed by a unit. The unit ID comes
// from the path so a misconfigured payload cannot report for another unit.
func (h *SensorHandler) IngestReadingHandler(c *gin.Context) {
	var reading models.SensorReading
	if err := c.ShouldBindJSON(&reading); err != nil {
		utils.JSONInvalidInput(c, err)
		return
	}
	reading.UnitID = c.Param("unitId")

	if err := h.Service.Record(c.Request.Context(), reading); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to record sensor reading", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "recorded"})
}

// LiveReadingsHandler returns every reading that has not aged out.
func (h *SensorHandler) LiveReadingsHandler(c *gin.Context) {
	readings, err := h.Service.LiveReadings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load sensor readings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"readings": readings})
}
