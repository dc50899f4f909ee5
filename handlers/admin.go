package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	classroomRepo "campusspots/database/repository/classroom"
	studyspotRepo "campusspots/database/repository/studyspot"
	"campusspots/models"
	"campusspots/utils"
)

// AdminHandler serves the bulk-import endpoints used to seed and refresh the
// campus dataset. Routes are gated by the admin-key middleware.
type AdminHandler struct {
	Classrooms classroomRepo.ClassroomRepository
	StudySpots studyspotRepo.StudySpotRepository
}

func NewAdminHandler(classrooms classroomRepo.ClassroomRepository, spots studyspotRepo.StudySpotRepository) *AdminHandler {
	return &AdminHandler{Classrooms: classrooms, StudySpots: spots}
}

func (h *AdminHandler) ImportClassroomsHandler(c *gin.Context) {
	var rooms []models.Classroom
	if err := c.ShouldBindJSON(&rooms); err != nil {
		utils.JSONInvalidInput(c, err)
		return
	}
	if len(rooms) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "empty import payload", "")
		return
	}
	for i := range rooms {
		if rooms[i].ID == "" {
			rooms[i].ID = uuid.New().String()
		}
	}

	if err := h.Classrooms.InsertMany(rooms); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "classroom import failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"imported": len(rooms)})
}

func (h *AdminHandler) ImportStudySpotsHandler(c *gin.Context) {
	var spots []models.StudySpot
	if err := c.ShouldBindJSON(&spots); err != nil {
		utils.JSONInvalidInput(c, err)
		return
	}
	if len(spots) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "empty import payload", "")
		return
	}
	for i := range spots {
		if spots[i].ID == "" {
			spots[i].ID = uuid.New().String()
		}
	}

	if err := h.StudySpots.InsertMany(spots); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "study spot import failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"imported": len(spots)})
}
