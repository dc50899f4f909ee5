package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	checkinRepo "campusspots/database/repository/checkin"
	"campusspots/models"
	"campusspots/utils"
)

// Check-ins older than this no longer influence the occupancy snapshot.
const occupancyWindow = 2 * time.Hour

// Reported busyness levels mapped to an occupancy percentage.
var busynessWeight = map[string]int{
	"empty":    10,
	"moderate": 50,
	"packed":   90,
}

// DefaultCheckInService implements Service.
type DefaultCheckInService struct {
	Repo     checkinRepo.CheckInRepository
	Store    OccupancyStore
	Enqueuer RecomputeEnqueuer
}

// Submit stores the check-in and schedules a background occupancy recompute.
// A failed enqueue is logged, not returned: the check-in itself succeeded.
func (s *DefaultCheckInService) Submit(ctx context.Context, input CheckInInput) (*models.CheckIn, error) {
	if _, ok := busynessWeight[input.Busyness]; !ok {
		return nil, fmt.Errorf("unknown busyness level %q", input.Busyness)
	}

	record := &models.CheckIn{
		ID:        uuid.New().String(),
		SpotID:    input.SpotID,
		Busyness:  input.Busyness,
		Noise:     input.Noise,
		WifiSpeed: input.WifiSpeed,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to store check-in: %w", err)
	}

	if s.Enqueuer != nil {
		if err := s.Enqueuer.EnqueueOccupancyRecompute(input.SpotID); err != nil {
			utils.GetLogger().Warn("failed to enqueue occupancy recompute",
				zap.String("spotId", input.SpotID), zap.Error(err))
		}
	}
	return record, nil
}

// Occupancy serves the cached snapshot, recomputing on a miss.
func (s *DefaultCheckInService) Occupancy(ctx context.Context, spotID string) (*models.OccupancySnapshot, error) {
	if snapshot, err := s.Store.Get(ctx, spotID); err == nil && snapshot != nil {
		return snapshot, nil
	}
	return s.RecomputeOccupancy(ctx, spotID)
}

// RecomputeOccupancy aggregates the recent check-ins for a spot into an
// occupancy percentage and caches the snapshot. No check-ins in the window
// yields a zero-sample snapshot, which is a valid answer.
func (s *DefaultCheckInService) RecomputeOccupancy(ctx context.Context, spotID string) (*models.OccupancySnapshot, error) {
	since := time.Now().UTC().Add(-occupancyWindow)
	recent, err := s.Repo.RecentBySpot(spotID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent check-ins: %w", err)
	}

	total := 0
	samples := 0
	for _, ci := range recent {
		weight, ok := busynessWeight[ci.Busyness]
		if !ok {
			continue
		}
		total += weight
		samples++
	}

	snapshot := models.OccupancySnapshot{
		SpotID:     spotID,
		SampleSize: samples,
		ComputedAt: time.Now().UTC(),
	}
	if samples > 0 {
		snapshot.Occupancy = total / samples
	}

	if err := s.Store.Set(ctx, snapshot); err != nil {
		utils.GetLogger().Warn("failed to cache occupancy snapshot",
			zap.String("spotId", spotID), zap.Error(err))
	}
	return &snapshot, nil
}
