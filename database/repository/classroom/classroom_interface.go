package classroomRepo

import (
	"campusspots/models"
)

// ClassroomSearchFilter holds the coarse predicates pushed down to the
// database. The availability filter re-validates everything afterwards, so
// these only narrow the fetch.
type ClassroomSearchFilter struct {
	Building    string
	MinCapacity int
}

// ClassroomRepository defines methods for classroom data access.
type ClassroomRepository interface {
	// GetByID retrieves a classroom by its unique ID.
	GetByID(id string) (*models.Classroom, error)
	// GetAll retrieves all classrooms.
	GetAll() ([]models.Classroom, error)
	// Search retrieves classrooms matching the coarse filter.
	Search(filter ClassroomSearchFilter) ([]models.Classroom, error)
	// InsertMany bulk-loads classroom records (admin import).
	InsertMany(rooms []models.Classroom) error
}
