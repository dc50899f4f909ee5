package checkinRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campusspots/database"
	"campusspots/models"
)

// MongoCheckInRepo implements CheckInRepository using MongoDB.
type MongoCheckInRepo struct {
	coll *mongo.Collection
}

// NewMongoCheckInRepo creates a new instance of CheckInRepository using MongoDB.
func NewMongoCheckInRepo() *MongoCheckInRepo {
	coll := database.MongoClient.Database("campusspots").Collection("checkins")
	return &MongoCheckInRepo{coll: coll}
}

func (r *MongoCheckInRepo) Create(checkIn *models.CheckIn) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, checkIn); err != nil {
		return fmt.Errorf("failed to create check-in: %w", err)
	}
	return nil
}

func (r *MongoCheckInRepo) RecentBySpot(spotID string, since time.Time) ([]models.CheckIn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{
		"spotId":    spotID,
		"createdAt": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve check-ins for spot %s: %w", spotID, err)
	}
	defer cursor.Close(ctx)
	var checkIns []models.CheckIn
	for cursor.Next(ctx) {
		var ci models.CheckIn
		if err := cursor.Decode(&ci); err != nil {
			return nil, fmt.Errorf("failed to decode check-in: %w", err)
		}
		checkIns = append(checkIns, ci)
	}
	return checkIns, nil
}
