package marketRepo

import (
	"context"

	"inclusivehub/database"
	"inclusivehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type MarketplaceRepository interface {
	Create(ctx context.Context, item models.MarketplaceItem) (string, error)
	GetByID(ctx context.Context, id string) (*models.MarketplaceItem, error)
	List(ctx context.Context) ([]models.MarketplaceItem, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoMarketRepo struct {
	coll *mongo.Collection
}

// NewMongoMarketplaceRepo returns a new MarketplaceRepository instance using MongoDB.
func NewMongoMarketplaceRepo() MarketplaceRepository {
	db := database.MongoClient.Database("inclusivehub")
	return &mongoMarketRepo{
		coll: db.Collection("marketplace_items"),
	}
}
