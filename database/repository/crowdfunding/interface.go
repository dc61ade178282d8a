package crowdfundingRepo

import (
	"context"

	"inclusivehub/database"
	"inclusivehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CrowdfundingRepository interface {
	Create(ctx context.Context, campaign models.CrowdfundingCampaign) (string, error)
	GetByID(ctx context.Context, id string) (*models.CrowdfundingCampaign, error)
	List(ctx context.Context) ([]models.CrowdfundingCampaign, error)
	Donate(ctx context.Context, id string, amount float64) (*models.CrowdfundingCampaign, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoCrowdfundingRepo struct {
	coll *mongo.Collection
}

// NewMongoCrowdfundingRepo returns a new CrowdfundingRepository instance using MongoDB.
func NewMongoCrowdfundingRepo() CrowdfundingRepository {
	db := database.MongoClient.Database("inclusivehub")
	return &mongoCrowdfundingRepo{
		coll: db.Collection("crowdfunding_campaigns"),
	}
}
