package tasks

import (
	"fmt"

	"github.com/hibiken/asynq"
)

// OccupancyEnqueuer pushes recompute tasks onto the asynq queue. It satisfies
// the check-in service's RecomputeEnqueuer interface.
type OccupancyEnqueuer struct {
	Client *asynq.Client
}

func NewOccupancyEnqueuer(client *asynq.Client) *OccupancyEnqueuer {
	return &OccupancyEnqueuer{Client: client}
}

func (e *OccupancyEnqueuer) EnqueueOccupancyRecompute(spotID string) error {
	task, err := NewOccupancyRecomputeTask(spotID)
	if err != nil {
		return fmt.Errorf("failed to build occupancy task: %w", err)
	}
	if _, err := e.Client.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue occupancy task: %w", err)
	}
	return nil
}
