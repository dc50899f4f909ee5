package weather

import (
	"strings"

	"campusspots/models"
)

// Humidity above this makes sitting outside unpleasant even in clear weather.
const comfortableHumidity = 70

// Recommend biases the spot list by current conditions: rain pushes users
// indoors, clear dry weather pushes them outdoors, anything else recommends
// everything. This is deliberately a binary filter, separate from the
// ranking search.
func Recommend(spots []models.StudySpot, obs models.WeatherObservation) []models.StudySpot {
	condition := strings.ToLower(obs.Condition)

	switch {
	case strings.Contains(condition, "rain"):
		return filterIndoor(spots, true)
	case strings.Contains(condition, "clear") && obs.Humidity < comfortableHumidity:
		return filterIndoor(spots, false)
	default:
		return spots
	}
}

func filterIndoor(spots []models.StudySpot, indoor bool) []models.StudySpot {
	recs := make([]models.StudySpot, 0, len(spots))
	for _, spot := range spots {
		if spot.Indoor == indoor {
			recs = append(recs, spot)
		}
	}
	return recs
}
