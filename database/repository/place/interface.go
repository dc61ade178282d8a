package placeRepo

import (
	"context"

	"inclusivehub/database"
	"inclusivehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PlaceRepository interface {
	Create(ctx context.Context, place models.Place) (string, error)
	GetByID(ctx context.Context, id string) (*models.Place, error)
	List(ctx context.Context, filter *models.PlaceFilter) ([]models.Place, error)
	UpdateAccessibility(ctx context.Context, id string, features []string, description string) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoPlaceRepo struct {
	coll *mongo.Collection
}

// NewMongoPlaceRepo returns a new PlaceRepository instance using MongoDB.
func NewMongoPlaceRepo() PlaceRepository {
	db := database.MongoClient.Database("inclusivehub")
	return &mongoPlaceRepo{
		coll: db.Collection("places"),
	}
}
