package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeOccupancyRecompute = "occupancy:recompute"

// OccupancyPayload identifies the spot whose snapshot needs recomputing.
type OccupancyPayload struct {
	SpotID string `json:"spotId"`
}

func NewOccupancyRecomputeTask(spotID string) (*asynq.Task, error) {
	b, err := json.Marshal(OccupancyPayload{SpotID: spotID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeOccupancyRecompute, b), nil
}
