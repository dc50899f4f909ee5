package search

import (
	"math/rand"

	"campusspots/models"
)

// Warning messages surfaced to the presentation layer. These are business
// rules, not errors: the search still returns a structured result.
const (
	WarnBeforeOpening = "Cannot schedule before 7:00 am. Please choose a valid start time."
	WarnAfterClosing  = "Cannot schedule at or after 10:00 pm. Please choose a valid start time."
	WarnPastClosing   = "Your requested time extends beyond 10:00 pm. You can only use the room until 10:00 pm."
	WarnWeekend       = "Classrooms are unavailable on weekends."
)

// Service runs the availability and ranking filters over candidate spaces
// already fetched by a repository. It performs no I/O itself; the repository
// may have applied coarse predicates, so every rule is re-validated here.
type Service interface {
	FilterClassrooms(rooms []models.Classroom, criteria models.ClassroomCriteria) (models.ClassroomSearchResult, error)
	FilterStudySpots(spots []models.StudySpot, criteria models.StudySpotCriteria) (models.StudySpotSearchResult, error)
}

// DefaultSearchService implements Service. Rand breaks ties between equally
// good top-pick candidates; inject a seeded source in tests for determinism.
type DefaultSearchService struct {
	Rand *rand.Rand
}

// NewDefaultSearchService builds a search service with the given tie-break
// source. A nil rng falls back to the package-global source.
func NewDefaultSearchService(rng *rand.Rand) *DefaultSearchService {
	return &DefaultSearchService{Rand: rng}
}

func (s *DefaultSearchService) intn(n int) int {
	if s.Rand != nil {
		return s.Rand.Intn(n)
	}
	return rand.Intn(n)
}
