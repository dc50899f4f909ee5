package checkinRepo

import (
	"time"

	"campusspots/models"
)

// CheckInRepository defines methods for check-in data access.
type CheckInRepository interface {
	// Create stores a new check-in record.
	Create(checkIn *models.CheckIn) error
	// RecentBySpot retrieves check-ins for a spot created at or after the
	// given time, newest first.
	RecentBySpot(spotID string, since time.Time) ([]models.CheckIn, error)
}
