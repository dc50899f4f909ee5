package search

import (
	"fmt"
	"strings"

	"campusspots/models"
)

// FilterClassrooms applies the hard filters and, when a party size is given,
// selects the best-fit top pick. Unset criteria fields impose no restriction.
// The only error condition is a malformed criteria time string; everything
// else (empty results, window violations) comes back as data.
func (s *DefaultSearchService) FilterClassrooms(rooms []models.Classroom, criteria models.ClassroomCriteria) (models.ClassroomSearchResult, error) {
	result := models.ClassroomSearchResult{Survivors: []models.Classroom{}}

	survivors := make([]models.Classroom, 0, len(rooms))
	for _, room := range rooms {
		if !matchesBuilding(room.Building, criteria.Building) {
			continue
		}
		if criteria.MinCapacity > 0 && room.Capacity < criteria.MinCapacity {
			continue
		}
		survivors = append(survivors, room)
	}

	// Classrooms are never available on weekends, whatever else was asked.
	if criteria.SelectedDay == models.Saturday || criteria.SelectedDay == models.Sunday {
		result.Warning = WarnWeekend
		return result, nil
	}

	if criteria.StartTime != "" && criteria.DurationHours > 0 {
		reqStart, err := timeToMinutes(criteria.StartTime)
		if err != nil {
			return models.ClassroomSearchResult{}, fmt.Errorf("start time: %w", err)
		}
		reqEnd := reqStart + criteria.DurationHours*60

		switch {
		case reqStart < openingMinute:
			result.Warning = WarnBeforeOpening
			return result, nil
		case reqStart >= closingMinute:
			result.Warning = WarnAfterClosing
			return result, nil
		case reqEnd > closingMinute:
			result.Warning = WarnPastClosing
		}

		if criteria.SelectedDay != "" {
			free := survivors[:0]
			for _, room := range survivors {
				if roomFreeDuring(room, criteria.SelectedDay, reqStart, reqEnd) {
					free = append(free, room)
				}
			}
			survivors = free
		}
	}

	if criteria.PartySize > 0 {
		topPick := s.pickBestFit(survivors, criteria.PartySize)
		if topPick == nil {
			return result, nil
		}
		result.TopPick = topPick
		result.Survivors = []models.Classroom{*topPick}
		return result, nil
	}

	result.Survivors = survivors
	return result, nil
}

// roomFreeDuring reports whether the request interval clears every busy
// interval of the room on the selected day. A room with no schedule, or no
// entries for the day, is free. An entry whose times cannot be parsed is
// treated as a conflict: we cannot prove the room is free.
func roomFreeDuring(room models.Classroom, day string, reqStart, reqEnd int) bool {
	for _, entry := range room.Schedule {
		if !contains(entry.Days, day) {
			continue
		}
		busyStart, err := timeToMinutes(entry.StartTime)
		if err != nil {
			return false
		}
		busyEnd, err := timeToMinutes(entry.EndTime)
		if err != nil {
			return false
		}
		if overlaps(reqStart, reqEnd, busyStart, busyEnd) {
			return false
		}
	}
	return true
}

// pickBestFit returns the room whose capacity exceeds the party size by the
// smallest margin, breaking ties uniformly at random.
func (s *DefaultSearchService) pickBestFit(rooms []models.Classroom, partySize int) *models.Classroom {
	minDiff := -1
	for _, room := range rooms {
		if room.Capacity < partySize {
			continue
		}
		diff := room.Capacity - partySize
		if minDiff < 0 || diff < minDiff {
			minDiff = diff
		}
	}
	if minDiff < 0 {
		return nil
	}

	var candidates []models.Classroom
	for _, room := range rooms {
		if room.Capacity >= partySize && room.Capacity-partySize == minDiff {
			candidates = append(candidates, room)
		}
	}
	chosen := candidates[s.intn(len(candidates))]
	return &chosen
}

// matchesBuilding compares building labels case-insensitively. The stored
// data mixes cases across collections, so exact-case matching would silently
// drop valid rooms.
func matchesBuilding(building, wanted string) bool {
	wanted = strings.TrimSpace(wanted)
	if wanted == "" {
		return true
	}
	return strings.EqualFold(building, wanted)
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
