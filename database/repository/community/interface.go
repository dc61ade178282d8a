package communityRepo

import (
	"context"

	"inclusivehub/database"
	"inclusivehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CommunityRepository interface {
	Create(ctx context.Context, post models.CommunityPost) (string, error)
	GetByID(ctx context.Context, id string) (*models.CommunityPost, error)
	List(ctx context.Context) ([]models.CommunityPost, error)
	Like(ctx context.Context, id string) (*models.CommunityPost, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoCommunityRepo struct {
	coll *mongo.Collection
}

// NewMongoCommunityRepo returns a new CommunityRepository instance using MongoDB.
func NewMongoCommunityRepo() CommunityRepository {
	db := database.MongoClient.Database("inclusivehub")
	return &mongoCommunityRepo{
		coll: db.Collection("community_posts"),
	}
}
