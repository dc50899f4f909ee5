package search

import (
	"fmt"
	"sort"
	"strings"

	"campusspots/models"
)

// FilterStudySpots applies the study-spot hard filters, scores the survivors
// and returns them best-first. This flow is fully deterministic: ties keep
// their original fetch order.
func (s *DefaultSearchService) FilterStudySpots(spots []models.StudySpot, criteria models.StudySpotCriteria) (models.StudySpotSearchResult, error) {
	result := models.StudySpotSearchResult{OtherOptions: []models.ScoredSpot{}}

	survivors := make([]models.StudySpot, 0, len(spots))
	for _, spot := range spots {
		if !matchesBuilding(spot.Location.Building, criteria.Building) {
			continue
		}
		survivors = append(survivors, spot)
	}

	if criteria.StartTime != "" && criteria.DurationHours > 0 {
		reqStart, err := timeToMinutes(criteria.StartTime)
		if err != nil {
			return models.StudySpotSearchResult{}, fmt.Errorf("start time: %w", err)
		}
		reqEnd := reqStart + criteria.DurationHours*60

		open := survivors[:0]
		for _, spot := range survivors {
			if spotOpenDuring(spot, reqStart, reqEnd) {
				open = append(open, spot)
			}
		}
		survivors = open
	}

	survivors = filterByAttributes(survivors, criteria.Attributes)
	survivors = filterByBusyness(survivors, criteria.Busyness)

	scored := make([]models.ScoredSpot, 0, len(survivors))
	for _, spot := range survivors {
		scored = append(scored, models.ScoredSpot{StudySpot: spot, Score: matchScore(spot, criteria)})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if len(scored) == 0 {
		return result, nil
	}
	result.TopPick = &scored[0]
	result.OtherOptions = scored[1:]
	return result, nil
}

// spotOpenDuring checks the request interval against the spot's operating
// hours. Absent hours mean the spot is open around the clock. Hours that
// cannot be parsed exclude the spot: we cannot prove it is open.
func spotOpenDuring(spot models.StudySpot, reqStart, reqEnd int) bool {
	if spot.OperatingHours == nil {
		return reqStart >= 0 && reqEnd <= dayMinutes
	}
	open, err := timeToMinutes(spot.OperatingHours.Open)
	if err != nil {
		return false
	}
	closeAt, err := timeToMinutes(spot.OperatingHours.Close)
	if err != nil {
		return false
	}
	return reqStart >= open && reqEnd <= closeAt
}

// filterByAttributes applies the multi-select attribute constraints. Indoor
// and Outdoor cancel each other out when both are selected. A spot with no
// amenities document never satisfies an amenity-requiring attribute.
func filterByAttributes(spots []models.StudySpot, attrs []string) []models.StudySpot {
	if len(attrs) == 0 {
		return spots
	}
	wantIndoor := contains(attrs, models.AttrIndoor)
	wantOutdoor := contains(attrs, models.AttrOutdoor)
	wantWhiteboard := contains(attrs, models.AttrWhiteboard)
	wantOutlets := contains(attrs, models.AttrPowerOutlets)

	kept := spots[:0]
	for _, spot := range spots {
		if wantIndoor && !wantOutdoor && !spot.Indoor {
			continue
		}
		if wantOutdoor && !wantIndoor && spot.Indoor {
			continue
		}
		if wantWhiteboard && !hasWhiteboard(spot) {
			continue
		}
		if wantOutlets && !hasOutlets(spot) {
			continue
		}
		kept = append(kept, spot)
	}
	return kept
}

// filterByBusyness keeps spots matching the quiet-level preference. "Quiet"
// demands a high quiet level; "Busy" anything else, including spots that
// never reported one.
func filterByBusyness(spots []models.StudySpot, busyness string) []models.StudySpot {
	if busyness == "" || busyness == models.BusynessNoPreference {
		return spots
	}
	kept := spots[:0]
	for _, spot := range spots {
		if busyness == models.BusynessQuiet && !isQuiet(spot) {
			continue
		}
		if busyness == models.BusynessBusy && isQuiet(spot) {
			continue
		}
		kept = append(kept, spot)
	}
	return kept
}

// matchScore is the additive ranking score: one point per satisfied
// preference.
func matchScore(spot models.StudySpot, criteria models.StudySpotCriteria) int {
	score := 0
	if strings.TrimSpace(criteria.Building) != "" && matchesBuilding(spot.Location.Building, criteria.Building) {
		score++
	}
	if contains(criteria.Attributes, models.AttrWhiteboard) && hasWhiteboard(spot) {
		score++
	}
	if contains(criteria.Attributes, models.AttrPowerOutlets) && hasOutlets(spot) {
		score++
	}
	if criteria.Busyness == models.BusynessQuiet && isQuiet(spot) {
		score++
	}
	if criteria.Busyness == models.BusynessBusy && !isQuiet(spot) {
		score++
	}
	return score
}

func hasWhiteboard(spot models.StudySpot) bool {
	return spot.Amenities != nil && spot.Amenities.Whiteboard
}

func hasOutlets(spot models.StudySpot) bool {
	if spot.Amenities == nil {
		return false
	}
	level := strings.ToLower(spot.Amenities.PowerOutlets)
	return level != "" && level != "none"
}

func isQuiet(spot models.StudySpot) bool {
	return spot.Amenities != nil && strings.ToLower(spot.Amenities.Quiet) == "high"
}
