package placeRepo

import (
	"context"
	"errors"
	"time"

	"inclusivehub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new place and returns its ID.
func (r *mongoPlaceRepo) Create(ctx context.Context, place models.Place) (string, error) {
	if place.ID == "" {
		place.ID = uuid.New().String()
	}
	place.CreatedAt = time.Now()
	place.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, place)
	if err != nil {
		return "", err
	}
	return place.ID, nil
}

// GetByID returns a place by its ID.
func (r *mongoPlaceRepo) GetByID(ctx context.Context, id string) (*models.Place, error) {
	var place models.Place
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&place)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// List fetches places, optionally narrowed by type and required features.
func (r *mongoPlaceRepo) List(ctx context.Context, filter *models.PlaceFilter) ([]models.Place, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Type != "" {
			query["type"] = filter.Type
		}
		if len(filter.Features) > 0 {
			query["features"] = bson.M{"$all": filter.Features}
		}
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var places []models.Place
	if err := cursor.All(ctx, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// UpdateAccessibility stores analysis results on an existing place.
func (r *mongoPlaceRepo) UpdateAccessibility(ctx context.Context, id string, features []string, description string) error {
	update := bson.M{"$set": bson.M{
		"features":    features,
		"description": description,
		"updatedAt":   time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("place not found")
	}
	return nil
}

// DeleteByID removes a place by ID.
func (r *mongoPlaceRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("place not found")
	}
	return nil
}
