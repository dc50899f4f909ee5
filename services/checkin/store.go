package checkin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"campusspots/models"
	"campusspots/utils"
)

// RedisOccupancyStore keeps occupancy snapshots in Redis with a TTL.
type RedisOccupancyStore struct {
	Client *redis.Client
}

func NewRedisOccupancyStore(client *redis.Client) *RedisOccupancyStore {
	return &RedisOccupancyStore{Client: client}
}

func (s *RedisOccupancyStore) Get(ctx context.Context, spotID string) (*models.OccupancySnapshot, error) {
	data, err := s.Client.Get(ctx, utils.OccupancyPrefix+spotID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read occupancy snapshot: %w", err)
	}
	var snapshot models.OccupancySnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode occupancy snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *RedisOccupancyStore) Set(ctx context.Context, snapshot models.OccupancySnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode occupancy snapshot: %w", err)
	}
	if err := s.Client.Set(ctx, utils.OccupancyPrefix+snapshot.SpotID, data, utils.OccupancyTTL).Err(); err != nil {
		return fmt.Errorf("failed to write occupancy snapshot: %w", err)
	}
	return nil
}
