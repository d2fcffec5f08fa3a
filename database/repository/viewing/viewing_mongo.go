package viewingRepo

import (
	"context"
	"fmt"
	"time"

	"homeview/database"
	"homeview/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoViewingRepo implements ViewingRepository using MongoDB.
type MongoViewingRepo struct {
	viewingColl *mongo.Collection
}

// NewMongoViewingRepo constructs a new instance of MongoViewingRepo.
func NewMongoViewingRepo() ViewingRepository {
	db := database.MongoClient.Database("homeview")
	return &MongoViewingRepo{
		viewingColl: db.Collection("viewings"),
	}
}

// Create inserts a new viewing document.
func (repo *MongoViewingRepo) Create(ctx context.Context, viewing *models.Viewing) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.viewingColl.InsertOne(ctxWithTimeout, viewing); err != nil {
		return fmt.Errorf("error creating viewing: %w", err)
	}
	return nil
}

// GetByID retrieves a viewing by its ID.
func (repo *MongoViewingRepo) GetByID(ctx context.Context, id string) (*models.Viewing, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var viewing models.Viewing
	if err := repo.viewingColl.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&viewing); err != nil {
		return nil, fmt.Errorf("viewing not found: %w", err)
	}
	return &viewing, nil
}

// ListByProperty returns all viewings booked for a property, newest first.
func (repo *MongoViewingRepo) ListByProperty(ctx context.Context, propertyID string) ([]models.Viewing, error) {
	return repo.list(ctx, bson.M{"property_id": propertyID})
}

// ListAll returns every viewing on record, newest first.
func (repo *MongoViewingRepo) ListAll(ctx context.Context) ([]models.Viewing, error) {
	return repo.list(ctx, bson.M{})
}

func (repo *MongoViewingRepo) list(ctx context.Context, filter bson.M) ([]models.Viewing, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.viewingColl.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing viewings: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var viewings []models.Viewing
	if err := cursor.All(ctxWithTimeout, &viewings); err != nil {
		return nil, fmt.Errorf("error decoding viewings: %w", err)
	}
	return viewings, nil
}
