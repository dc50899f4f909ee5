package studyspotRepo

import (
	"campusspots/models"
)

// StudySpotRepository defines methods for study-spot data access.
type StudySpotRepository interface {
	// GetByID retrieves a study spot by its unique ID.
	GetByID(id string) (*models.StudySpot, error)
	// GetAll retrieves all study spots.
	GetAll() ([]models.StudySpot, error)
	// SearchByBuilding retrieves spots in the given building; an empty
	// building returns everything. Only this coarse predicate is pushed to
	// the database, the ranking filter handles the rest.
	SearchByBuilding(building string) ([]models.StudySpot, error)
	// InsertMany bulk-loads study spot records (admin import).
	InsertMany(spots []models.StudySpot) error
}
