package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"campusspots/utils"
)

// ResultCache stores finished search-result bundles so the client's loading
// page can hand off to the results page with just an ID.
type ResultCache interface {
	SaveResult(ctx context.Context, id string, payload interface{}) error
	GetResult(ctx context.Context, id string) (json.RawMessage, error)
}

// ErrResultNotFound reports an expired or unknown result ID.
var ErrResultNotFound = fmt.Errorf("search result not found or expired")

// RedisResultCache implements ResultCache on the generic cache client.
type RedisResultCache struct {
	Client *redis.Client
}

func NewRedisResultCache(client *redis.Client) *RedisResultCache {
	return &RedisResultCache{Client: client}
}

func (c *RedisResultCache) SaveResult(ctx context.Context, id string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal search result: %w", err)
	}
	if err := c.Client.Set(ctx, utils.SearchResultPrefix+id, data, utils.SearchResultTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache search result: %w", err)
	}
	return nil
}

func (c *RedisResultCache) GetResult(ctx context.Context, id string) (json.RawMessage, error) {
	data, err := c.Client.Get(ctx, utils.SearchResultPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrResultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read search result: %w", err)
	}
	return json.RawMessage(data), nil
}
