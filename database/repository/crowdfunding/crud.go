package crowdfundingRepo

import (
	"context"
	"errors"
	"time"

	"inclusivehub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new campaign and returns its ID.
func (r *mongoCrowdfundingRepo) Create(ctx context.Context, campaign models.CrowdfundingCampaign) (string, error) {
	if campaign.ID == "" {
		campaign.ID = uuid.New().String()
	}
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, campaign)
	if err != nil {
		return "", err
	}
	return campaign.ID, nil
}

// GetByID returns a campaign by its ID.
func (r *mongoCrowdfundingRepo) GetByID(ctx context.Context, id string) (*models.CrowdfundingCampaign, error) {
	var campaign models.CrowdfundingCampaign
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&campaign)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// List fetches all campaigns, newest first.
func (r *mongoCrowdfundingRepo) List(ctx context.Context) ([]models.CrowdfundingCampaign, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []models.CrowdfundingCampaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Donate atomically adds to the raised amount and returns the updated campaign.
func (r *mongoCrowdfundingRepo) Donate(ctx context.Context, id string, amount float64) (*models.CrowdfundingCampaign, error) {
	update := bson.M{
		"$inc": bson.M{"raisedAmount": amount},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var campaign models.CrowdfundingCampaign
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&campaign)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// DeleteByID removes a campaign by ID.
func (r *mongoCrowdfundingRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("campaign not found")
	}
	return nil
}
