package educationRepo

import (
	"context"

	"inclusivehub/database"
	"inclusivehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type EducationRepository interface {
	Create(ctx context.Context, module models.EducationModule) (string, error)
	GetByID(ctx context.Context, id string) (*models.EducationModule, error)
	List(ctx context.Context) ([]models.EducationModule, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoEducationRepo struct {
	coll *mongo.Collection
}

// NewMongoEducationRepo returns a new EducationRepository instance using MongoDB.
func NewMongoEducationRepo() EducationRepository {
	db := database.MongoClient.Database("inclusivehub")
	return &mongoEducationRepo{
		coll: db.Collection("education_modules"),
	}
}
