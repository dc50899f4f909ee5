package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	classroomRepo "campusspots/database/repository/classroom"
	"campusspots/models"
	"campusspots/services/search"
	"campusspots/utils"
)

// ClassroomHandler serves the classroom browse and search endpoints.
type ClassroomHandler struct {
	Repo   classroomRepo.ClassroomRepository
	Filter search.Service
	Cache  ResultCache
}

func NewClassroomHandler(repo classroomRepo.ClassroomRepository, filter search.Service, cache ResultCache) *ClassroomHandler {
	return &ClassroomHandler{Repo: repo, Filter: filter, Cache: cache}
}

// ListClassroomsHandler returns every classroom for the browse page.
func (h *ClassroomHandler) ListClassroomsHandler(c *gin.Context) {
	rooms, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch classrooms", err.Error())
		return
	}
	if rooms == nil {
		rooms = []models.Classroom{}
	}
	c.JSON(http.StatusOK, gin.H{"classrooms": rooms})
}

// SearchClassroomsHandler runs the availability filter over a coarse
// database fetch and caches the result bundle for the results page.
func (h *ClassroomHandler) SearchClassroomsHandler(c *gin.Context) {
	var criteria models.ClassroomCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		utils.JSONInvalidInput(c, err)
		return
	}

	rooms, err := h.Repo.Search(classroomRepo.ClassroomSearchFilter{
		Building:    criteria.Building,
		MinCapacity: criteria.MinCapacity,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch classrooms", err.Error())
		return
	}

	result, err := h.Filter.FilterClassrooms(rooms, criteria)
	if err != nil {
		if errors.Is(err, search.ErrInvalidTimeFormat) {
			utils.JSONInvalidInput(c, err)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "classroom search failed", err.Error())
		return
	}

	resultID := uuid.New().String()
	payload := gin.H{
		"resultId":  resultID,
		"survivors": result.Survivors,
		"topPick":   result.TopPick,
		"warning":   result.Warning,
	}
	if err := h.Cache.SaveResult(c.Request.Context(), resultID, payload); err != nil {
		// The search itself succeeded; losing the hand-off cache is not fatal.
		utils.GetLogger().Warn("failed to cache classroom search result", zap.Error(err))
	}
	c.JSON(http.StatusOK, payload)
}
