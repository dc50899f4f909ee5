package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusspots/config"
	studyspotRepo "campusspots/database/repository/studyspot"
	"campusspots/models"
	"campusspots/services/weather"
	"campusspots/utils"
)

// WeatherHandler serves weather-aware study spot recommendations.
type WeatherHandler struct {
	Provider weather.Provider
	Spots    studyspotRepo.StudySpotRepository
}

func NewWeatherHandler(provider weather.Provider, spots studyspotRepo.StudySpotRepository) *WeatherHandler {
	return &WeatherHandler{Provider: provider, Spots: spots}
}

// RecommendationsHandler reads the campus conditions and biases the spot
// list accordingly: rain keeps everyone indoors, clear dry weather suggests
// the outdoor spots.
func (h *WeatherHandler) RecommendationsHandler(c *gin.Context) {
	obs, err := h.Provider.CurrentConditions(c.Request.Context(), config.AppConfig.CampusLat, config.AppConfig.CampusLon)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "weather lookup failed", err.Error())
		return
	}

	spots, err := h.Spots.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch study spots", err.Error())
		return
	}

	recs := weather.Recommend(spots, obs)
	if recs == nil {
		recs = []models.StudySpot{}
	}
	c.JSON(http.StatusOK, gin.H{
		"weather":         obs,
		"recommendations": recs,
	})
}
