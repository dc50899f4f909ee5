package sensor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"campusspots/models"
	"campusspots/utils"
)

// Service stores and serves live occupancy/noise readings from campus units.
// Readings live in Redis with a TTL, so units that stop reporting age out on
// their own; there is no history.
type Service interface {
	Record(ctx context.Context, reading models.SensorReading) error
	LiveReadings(ctx context.Context) ([]models.SensorReading, error)
}

// RedisSensorService implements Service on a dedicated Redis database.
type RedisSensorService struct {
	Client *redis.Client
}

func NewRedisSensorService(client *redis.Client) *RedisSensorService {
	return &RedisSensorService{Client: client}
}

func (s *RedisSensorService) Record(ctx context.Context, reading models.SensorReading) error {
	if reading.UnitID == "" {
		return fmt.Errorf("sensor reading missing unit id")
	}
	if reading.RecordedAt.IsZero() {
		reading.RecordedAt = time.Now().UTC()
	}
	data, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("failed to encode sensor reading: %w", err)
	}
	key := utils.SensorReadingPrefix + reading.UnitID
	if err := s.Client.Set(ctx, key, data, utils.SensorReadingTTL).Err(); err != nil {
		return fmt.Errorf("failed to store sensor reading: %w", err)
	}
	return nil
}

func (s *RedisSensorService) LiveReadings(ctx context.Context) ([]models.SensorReading, error) {
	keys, err := s.Client.Keys(ctx, utils.SensorReadingPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sensor readings: %w", err)
	}

	readings := make([]models.SensorReading, 0, len(keys))
	for _, key := range keys {
		data, err := s.Client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue // expired between KEYS and GET
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read sensor key %s: %w", key, err)
		}
		var reading models.SensorReading
		if err := json.Unmarshal([]byte(data), &reading); err != nil {
			continue
		}
		readings = append(readings, reading)
	}
	return readings, nil
}
