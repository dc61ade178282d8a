package ngoRepo

import (
	"context"

	"inclusivehub/database"
	"inclusivehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type NGORepository interface {
	Create(ctx context.Context, ngo models.NGO) (string, error)
	GetByID(ctx context.Context, id string) (*models.NGO, error)
	List(ctx context.Context) ([]models.NGO, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoNGORepo struct {
	coll *mongo.Collection
}

// NewMongoNGORepo returns a new NGORepository instance using MongoDB.
func NewMongoNGORepo() NGORepository {
	db := database.MongoClient.Database("inclusivehub")
	return &mongoNGORepo{
		coll: db.Collection("ngos"),
	}
}
