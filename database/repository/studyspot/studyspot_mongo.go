package studyspotRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"campusspots/database"
	"campusspots/models"
)

// MongoStudySpotRepo implements StudySpotRepository using MongoDB.
type MongoStudySpotRepo struct {
	coll *mongo.Collection
}

// NewMongoStudySpotRepo creates a new instance of StudySpotRepository using MongoDB.
func NewMongoStudySpotRepo() *MongoStudySpotRepo {
	coll := database.MongoClient.Database("campusspots").Collection("studyspots")
	return &MongoStudySpotRepo{coll: coll}
}

func (r *MongoStudySpotRepo) GetByID(id string) (*models.StudySpot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var spot models.StudySpot
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&spot); err != nil {
		return nil, fmt.Errorf("failed to fetch study spot with id %s: %w", id, err)
	}
	return &spot, nil
}

func (r *MongoStudySpotRepo) GetAll() ([]models.StudySpot, error) {
	return r.find(bson.M{})
}

func (r *MongoStudySpotRepo) SearchByBuilding(building string) ([]models.StudySpot, error) {
	query := bson.M{}
	if building != "" {
		query["location.building"] = buildingRegex(building)
	}
	return r.find(query)
}

// buildingRegex matches the building label exactly, ignoring case. The input
// comes straight from the client, so it is quoted first: names like "C++ Lab"
// must match literally, not blow up the query.
func buildingRegex(building string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(building) + "$", "$options": "i"}
}

func (r *MongoStudySpotRepo) InsertMany(spots []models.StudySpot) error {
	if len(spots) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	docs := make([]interface{}, 0, len(spots))
	for _, spot := range spots {
		docs = append(docs, spot)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert study spots: %w", err)
	}
	return nil
}

func (r *MongoStudySpotRepo) find(query bson.M) ([]models.StudySpot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve study spots: %w", err)
	}
	defer cursor.Close(ctx)
	var spots []models.StudySpot
	for cursor.Next(ctx) {
		var spot models.StudySpot
		if err := cursor.Decode(&spot); err != nil {
			return nil, fmt.Errorf("failed to decode study spot: %w", err)
		}
		spots = append(spots, spot)
	}
	return spots, nil
}
