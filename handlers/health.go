package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusspots/utils"
)

// HealthHandler reports the latest dependency health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()

	// No sample yet means the monitor just started, not that Mongo is down;
	// failing liveness probes during boot would restart healthy deployments.
	if status.CheckedAt.IsZero() {
		c.JSON(http.StatusOK, gin.H{
			"status": "starting",
			"health": status,
		})
		return
	}

	httpStatus := http.StatusOK
	if !status.Mongo {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, gin.H{
		"status": "up",
		"health": status,
	})
}
