package classroomRepo

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

// MongoClassroomRepo implements ClassroomRepository using MongoDB.
type MongoClassroomRepo struct {
	coll *mongo.Collection
}

// NewMongoClassroomRepo creates a new instance of ClassroomRepository using MongoDB.
func NewMongoClassroomRepo() *MongoClassroomRepo {
	coll := database.MongoClient.Database("campusspots").Collection("classrooms")
	return &MongoClassroomRepo{coll: coll}
}

func (r *MongoClassroomRepo) GetByID(id string) (*models.Classroom, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var room models.Classroom
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&room); err != nil {
		return nil, fmt.Errorf("failed to fetch classroom with id %s: %w", id, err)
	}
	return &room, nil
}

func (r *MongoClassroomRepo) GetAll() ([]models.Classroom, error) {
	return r.find(bson.M{})
}

// Search pushes building equality and a capacity threshold down to Mongo.
// Building matching here is exact; the availability filter applies the
// case-insensitive match on whatever comes back.
func (r *MongoClassroomRepo) Search(filter ClassroomSearchFilter) ([]models.Classroom, error) {
	query := bson.M{}
	if filter.Building != "" {
		query["building"] = buildingRegex(filter.Building)
	}
	if filter.MinCapacity > 0 {
		query["capacity"] = bson.M{"$gte": filter.MinCapacity}
	}
	return r.find(query)
}

func (r *MongoClassroomRepo) InsertMany(rooms []models.Classroom) error {
	if len(rooms) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	docs := make([]interface{}, 0, len(rooms))
	for _, room := range rooms {
		docs = append(docs, room)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert classrooms: %w", err)
	}
	return nil
}

// buildingRegex matches the building label exactly, ignoring case. The input
// comes straight from the client, so it is quoted first: names like "C++ Lab"
// must match literally, not blow up the query.
func buildingRegex(building string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(building) + "$", "$options": "i"}
}

func (r *MongoClassroomRepo) find(query bson.M) ([]models.Classroom, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve classrooms: %w", err)
	}
	defer cursor.Close(ctx)
	var rooms []models.Classroom
	for cursor.Next(ctx) {
		var room models.Classroom
		if err := cursor.Decode(&room); err != nil {
			return nil, fmt.Errorf("failed to decode classroom: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}
