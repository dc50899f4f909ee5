package checkinRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates indexes for frequently used query fields.
func (r *MongoCheckInRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Backs the recent-by-spot aggregation query.
		{Keys: bson.D{
			{Key: "spotId", Value: 1},
			{Key: "createdAt", Value: -1},
		}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create check-in indexes: %w", err)
	}
	return nil
}
