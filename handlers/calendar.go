package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusspots/services/calendar"
	"campusspots/utils"
)

// CalendarHandler serves upcoming campus events.
type CalendarHandler struct {
	Service calendar.Service
}

func NewCalendarHandler(service calendar.Service) *CalendarHandler {
	return &CalendarHandler{Service: service}
}

func (h *CalendarHandler) UpcomingEventsHandler(c *gin.Context) {
	events, err := h.Service.UpcomingEvents(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load campus events", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}
