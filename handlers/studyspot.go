package handlers

import (
	"errors"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	studyspotRepo "campusspots/database/repository/studyspot"
	"campusspots/models"
	"campusspots/services/search"
	"campusspots/utils"
)

// StudySpotHandler serves the study-spot browse, search, and surprise-me
// endpoints.
type StudySpotHandler struct {
	Repo   studyspotRepo.StudySpotRepository
	Filter search.Service
	Cache  ResultCache
	Rand   *rand.Rand
}

func NewStudySpotHandler(repo studyspotRepo.StudySpotRepository, filter search.Service, cache ResultCache, rng *rand.Rand) *StudySpotHandler {
	return &StudySpotHandler{Repo: repo, Filter: filter, Cache: cache, Rand: rng}
}

// ListStudySpotsHandler returns every study spot for the browse page.
func (h *StudySpotHandler) ListStudySpotsHandler(c *gin.Context) {
	spots, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch study spots", err.Error())
		return
	}
	if spots == nil {
		spots = []models.StudySpot{}
	}
	c.JSON(http.StatusOK, gin.H{"studySpots": spots})
}

// RandomStudySpotHandler picks one spot at random for the "surprise me" card.
func (h *StudySpotHandler) RandomStudySpotHandler(c *gin.Context) {
	spots, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch study spots", err.Error())
		return
	}
	if len(spots) == 0 {
		utils.JSONError(c, http.StatusNotFound, "no study spots available", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"studySpot": spots[h.intn(len(spots))]})
}

// SearchStudySpotsHandler runs the ranking filter and caches the result
// bundle for the results page.
func (h *StudySpotHandler) SearchStudySpotsHandler(c *gin.Context) {
	var criteria models.StudySpotCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		utils.JSONInvalidInput(c, err)
		return
	}

	spots, err := h.Repo.SearchByBuilding(criteria.Building)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch study spots", err.Error())
		return
	}

	result, err := h.Filter.FilterStudySpots(spots, criteria)
	if err != nil {
		if errors.Is(err, search.ErrInvalidTimeFormat) {
			utils.JSONInvalidInput(c, err)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "study spot search failed", err.Error())
		return
	}

	resultID := uuid.New().String()
	payload := gin.H{
		"resultId":     resultID,
		"topPick":      result.TopPick,
		"otherOptions": result.OtherOptions,
		"warning":      result.Warning,
	}
	if err := h.Cache.SaveResult(c.Request.Context(), resultID, payload); err != nil {
		utils.GetLogger().Warn("failed to cache study spot search result", zap.Error(err))
	}
	c.JSON(http.StatusOK, payload)
}

func (h *StudySpotHandler) intn(n int) int {
	if h.Rand != nil {
		return h.Rand.Intn(n)
	}
	return rand.Intn(n)
}
