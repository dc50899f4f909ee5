package search

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusspots/models"
)

func newTestService() *DefaultSearchService {
	return NewDefaultSearchService(rand.New(rand.NewSource(1)))
}

func mondayRoom(id string, capacity int, busy ...models.BusyInterval) models.Classroom {
	return models.Classroom{
		ID:       id,
		Name:     id,
		Building: "Dooly",
		Capacity: capacity,
		Schedule: busy,
	}
}

func TestFilterClassroomsNoCriteriaReturnsEverything(t *testing.T) {
	svc := newTestService()
	rooms := []models.Classroom{
		mondayRoom("r1", 20),
		mondayRoom("r2", 35),
	}

	result, err := svc.FilterClassrooms(rooms, models.ClassroomCriteria{})
	require.NoError(t, err)
	assert.Len(t, result.Survivors, 2)
	assert.Nil(t, result.TopPick)
	assert.Empty(t, result.Warning)
}

func TestFilterClassroomsBuildingMatchIsCaseInsensitive(t *testing.T) {
	svc := newTestService()
	rooms := []models.Classroom{
		{ID: "r1", Building: "Dooly", Capacity: 20},
		{ID: "r2", Building: "Richter", Capacity: 20},
	}

	result, err := svc.FilterClassrooms(rooms, models.ClassroomCriteria{Building: "dooly"})
	require.NoError(t, err)
	require.Len(t, result.Survivors, 1)
	assert.Equal(t, "r1", result.Survivors[0].ID)
}

func TestFilterClassroomsMinCapacity(t *testing.T) {
	svc := newTestService()
	rooms := []models.Classroom{
		mondayRoom("small", 10),
		mondayRoom("big", 40),
	}

	result, err := svc.FilterClassrooms(rooms, models.ClassroomCriteria{MinCapacity: 25})
	require.NoError(t, err)
	require.Len(t, result.Survivors, 1)
	assert.Equal(t, "big", result.Survivors[0].ID)
}

func TestFilterClassroomsScheduleOverlap(t *testing.T) {
	busy := models.BusyInterval{Days: []string{"Monday"}, StartTime: "09:00", EndTime: "10:00"}
	rooms := []models.Classroom{mondayRoom("r1", 30, busy)}
	svc := newTestService()

	// 09:30-10:30 overlaps the 09:00-10:00 lecture.
	overlapping := models.ClassroomCriteria{StartTime: "09:30", DurationHours: 1, SelectedDay: "Monday"}
	result, err := svc.FilterClassrooms(rooms, overlapping)
	require.NoError(t, err)
	assert.Empty(t, result.Survivors)

	// 10:00-11:00 touches the boundary; half-open intervals do not overlap.
	touching := models.ClassroomCriteria{StartTime: "10:00", DurationHours: 1, SelectedDay: "Monday"}
	result, err = svc.FilterClassrooms(rooms, touching)
	require.NoError(t, err)
	assert.Len(t, result.Survivors, 1)

	// The lecture is on Monday; a Tuesday request is unaffected.
	otherDay := models.ClassroomCriteria{StartTime: "09:30", DurationHours: 1, SelectedDay: "Tuesday"}
	result, err = svc.FilterClassrooms(rooms, otherDay)
	require.NoError(t, err)
	assert.Len(t, result.Survivors, 1)
}

func TestFilterClassroomsNoScheduleAlwaysIncluded(t *testing.T) {
	svc := newTestService()
	rooms := []models.Classroom{mondayRoom("bare", 30)}

	result, err := svc.FilterClassrooms(rooms, models.ClassroomCriteria{
		StartTime: "09:00", DurationHours: 2, SelectedDay: "Monday",
	})
	require.NoError(t, err)
	assert.Len(t, result.Survivors, 1)
}

func TestFilterClassroomsSchedulingWindow(t *testing.T) {
	svc := newTestService()
	rooms := []models.Classroom{mondayRoom("r1", 30)}

	tests := []struct {
		name      string
		startTime string
		duration  int
		warning   string
		survivors int
	}{
		{"before opening", "06:59", 1, WarnBeforeOpening, 0},
		{"at closing", "22:00", 1, WarnAfterClosing, 0},
		{"past closing", "21:00", 2, WarnPastClosing, 1},
		{"inside window", "09:00", 1, "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.FilterClassrooms(rooms, models.ClassroomCriteria{
				StartTime: tt.startTime, DurationHours: tt.duration, SelectedDay: "Monday",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.warning, result.Warning)
			assert.Len(t, result.Survivors, tt.survivors)
		})
	}
}

func TestFilterClassroomsWeekendRule(t *testing.T) {
	svc := newTestService()
	rooms := []models.Classroom{mondayRoom("r1", 30), mondayRoom("r2", 50)}

	for _, day := range []string{models.Saturday, models.Sunday} {
		result, err := svc.FilterClassrooms(rooms, models.ClassroomCriteria{
			StartTime: "10:00", DurationHours: 1, SelectedDay: day,
		})
		require.NoError(t, err)
		assert.Empty(t, result.Survivors, day)
		assert.Equal(t, WarnWeekend, result.Warning, day)
	}
}

func TestFilterClassroomsTopPickBestFit(t *testing.T) {
	svc := newTestService()
	rooms := []models.Classroom{
		mondayRoom("r20", 20),
		mondayRoom("r25", 25),
		mondayRoom("r30", 30),
	}

	result, err := svc.FilterClassrooms(rooms, models.ClassroomCriteria{PartySize: 22})
	require.NoError(t, err)
	require.NotNil(t, result.TopPick)
	assert.Equal(t, "r25", result.TopPick.ID)
	// Only the top pick is surfaced in the classroom flow.
	require.Len(t, result.Survivors, 1)
	assert.Equal(t, "r25", result.Survivors[0].ID)
}

func TestFilterClassroomsTopPickTieBreak(t *testing.T) {
	svc := newTestService()
	rooms := []models.Classroom{
		mondayRoom("a", 25),
		mondayRoom("b", 25),
		mondayRoom("c", 40),
	}

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		result, err := svc.FilterClassrooms(rooms, models.ClassroomCriteria{PartySize: 22})
		require.NoError(t, err)
		require.NotNil(t, result.TopPick)
		// Never the non-tied room.
		assert.NotEqual(t, "c", result.TopPick.ID)
		seen[result.TopPick.ID] = true
	}
	assert.True(t, seen["a"] && seen["b"], "both tied rooms should win eventually")
}

func TestFilterClassroomsTopPickNoEligibleRoom(t *testing.T) {
	svc := newTestService()
	rooms := []models.Classroom{mondayRoom("r10", 10)}

	result, err := svc.FilterClassrooms(rooms, models.ClassroomCriteria{PartySize: 50})
	require.NoError(t, err)
	assert.Nil(t, result.TopPick)
	assert.Empty(t, result.Survivors)
}

func TestFilterClassroomsAddingConstraintsNeverGrowsSurvivors(t *testing.T) {
	svc := newTestService()
	busy := models.BusyInterval{Days: []string{"Monday"}, StartTime: "09:00", EndTime: "11:00"}
	rooms := []models.Classroom{
		mondayRoom("r1", 20, busy),
		mondayRoom("r2", 35),
		{ID: "r3", Building: "Richter", Capacity: 60},
	}

	loose, err := svc.FilterClassrooms(rooms, models.ClassroomCriteria{})
	require.NoError(t, err)

	tighter := []models.ClassroomCriteria{
		{Building: "Dooly"},
		{Building: "Dooly", MinCapacity: 30},
		{Building: "Dooly", MinCapacity: 30, StartTime: "09:30", DurationHours: 1, SelectedDay: "Monday"},
	}
	prev := len(loose.Survivors)
	for _, criteria := range tighter {
		result, err := svc.FilterClassrooms(rooms, criteria)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(result.Survivors), prev)
		prev = len(result.Survivors)
	}
}

func TestFilterClassroomsMalformedStartTime(t *testing.T) {
	svc := newTestService()
	rooms := []models.Classroom{mondayRoom("r1", 30)}

	for _, bad := range []string{"9am", "25:00", "09:70", "0930", "::"} {
		_, err := svc.FilterClassrooms(rooms, models.ClassroomCriteria{
			StartTime: bad, DurationHours: 1, SelectedDay: "Monday",
		})
		require.Error(t, err, bad)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, bad)
	}
}

func TestFilterClassroomsUnparseableScheduleEntryExcludesRoom(t *testing.T) {
	svc := newTestService()
	rooms := []models.Classroom{
		mondayRoom("broken", 30, models.BusyInterval{Days: []string{"Monday"}, StartTime: "garbage", EndTime: "10:00"}),
		mondayRoom("fine", 30),
	}

	result, err := svc.FilterClassrooms(rooms, models.ClassroomCriteria{
		StartTime: "12:00", DurationHours: 1, SelectedDay: "Monday",
	})
	require.NoError(t, err)
	require.Len(t, result.Survivors, 1)
	assert.Equal(t, "fine", result.Survivors[0].ID)
}
