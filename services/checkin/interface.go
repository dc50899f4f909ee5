package checkin

import (
	"context"

	"campusspots/models"
)

// CheckInInput is what a client submits from the check-in form.
type CheckInInput struct {
	SpotID    string `json:"spotId" binding:"required"`
	Busyness  string `json:"busyness" binding:"required"`
	Noise     string `json:"noise"`
	WifiSpeed string `json:"wifiSpeed"`
	Comment   string `json:"comment"`
}

// OccupancyStore persists per-spot occupancy snapshots (Redis in production).
type OccupancyStore interface {
	Get(ctx context.Context, spotID string) (*models.OccupancySnapshot, error)
	Set(ctx context.Context, snapshot models.OccupancySnapshot) error
}

// RecomputeEnqueuer schedules an asynchronous occupancy recompute for a spot.
type RecomputeEnqueuer interface {
	EnqueueOccupancyRecompute(spotID string) error
}

// Service records check-ins and serves the aggregated occupancy view.
type Service interface {
	Submit(ctx context.Context, input CheckInInput) (*models.CheckIn, error)
	Occupancy(ctx context.Context, spotID string) (*models.OccupancySnapshot, error)
	RecomputeOccupancy(ctx context.Context, spotID string) (*models.OccupancySnapshot, error)
}
