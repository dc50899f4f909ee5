package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusspots/models"
)

func testSpots() []models.StudySpot {
	return []models.StudySpot{
		{ID: "library", Indoor: true},
		{ID: "quad", Indoor: false},
		{ID: "cafe", Indoor: true},
	}
}

func TestRecommendRainPrefersIndoor(t *testing.T) {
	recs := Recommend(testSpots(), models.WeatherObservation{Condition: "Rain", Humidity: 80})
	assert.Len(t, recs, 2)
	for _, spot := range recs {
		assert.True(t, spot.Indoor)
	}
}

func TestRecommendClearDryPrefersOutdoor(t *testing.T) {
	recs := Recommend(testSpots(), models.WeatherObservation{Condition: "Clear", Humidity: 50})
	assert.Len(t, recs, 1)
	assert.Equal(t, "quad", recs[0].ID)
}

func TestRecommendClearHumidKeepsEverything(t *testing.T) {
	recs := Recommend(testSpots(), models.WeatherObservation{Condition: "Clear", Humidity: 85})
	assert.Len(t, recs, 3)
}

func TestRecommendCloudsKeepsEverything(t *testing.T) {
	recs := Recommend(testSpots(), models.WeatherObservation{Condition: "Clouds", Humidity: 40})
	assert.Len(t, recs, 3)
}
