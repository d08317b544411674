package store

import (
	"context"
	"time"

	"bugtracker-be/apperrors"
	"bugtracker-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoOpTimeout = 10 * time.Second

// MongoStore is the production BugStore backed by a MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore wraps an established client around the "bugs"
// collection of the given database.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection("bugs"),
	}
}

func (s *MongoStore) Insert(ctx context.Context, bug models.Bug) (models.Bug, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	now := time.Now()
	bug.ID = primitive.NewObjectID()
	bug.CreatedAt = now
	bug.UpdatedAt = now

	if _, err := s.collection.InsertOne(ctx, bug); err != nil {
		return models.Bug{}, apperrors.NewInternal("Failed to create bug", err)
	}
	return bug, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (models.Bug, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Bug{}, apperrors.NewNotFound("Bug not found")
	}

	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	var bug models.Bug
	err = s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&bug)
	if err == mongo.ErrNoDocuments {
		return models.Bug{}, apperrors.NewNotFound("Bug not found")
	}
	if err != nil {
		return models.Bug{}, apperrors.NewInternal("Failed to retrieve bug", err)
	}
	return bug, nil
}

func (s *MongoStore) Query(ctx context.Context, filter BugFilter, page, limit int) ([]models.Bug, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}

	skip := (page - 1) * limit

	// ObjectIDs are monotonic, so sorting on _id yields insertion order.
	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to retrieve bugs", err)
	}
	defer cursor.Close(ctx)

	bugs := make([]models.Bug, 0, limit)
	if err := cursor.All(ctx, &bugs); err != nil {
		return nil, apperrors.NewInternal("Failed to decode bugs", err)
	}
	return bugs, nil
}

func (s *MongoStore) UpdateByID(ctx context.Context, id string, update BugUpdate) (models.Bug, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Bug{}, apperrors.NewNotFound("Bug not found")
	}

	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Priority != nil {
		set["priority"] = *update.Priority
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.AssignedTo != nil {
		set["assignedTo"] = *update.AssignedTo
	}

	var bug models.Bug
	err = s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&bug)
	if err == mongo.ErrNoDocuments {
		return models.Bug{}, apperrors.NewNotFound("Bug not found")
	}
	if err != nil {
		return models.Bug{}, apperrors.NewInternal("Failed to update bug", err)
	}
	return bug, nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewNotFound("Bug not found")
	}

	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperrors.NewInternal("Failed to delete bug", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFound("Bug not found")
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
