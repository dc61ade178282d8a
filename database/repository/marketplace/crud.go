package marketRepo

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

// Create inserts a new marketplace item and returns its ID.
func (r *mongoMarketRepo) Create(ctx context.Context, item models.MarketplaceItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	return item.ID, nil
}

// GetByID returns a marketplace item by its ID.
func (r *mongoMarketRepo) GetByID(ctx context.Context, id string) (*models.MarketplaceItem, error) {
	var item models.MarketplaceItem
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List fetches all marketplace items, newest first.
func (r *mongoMarketRepo) List(ctx context.Context) ([]models.MarketplaceItem, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MarketplaceItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByID removes a marketplace item by ID.
func (r *mongoMarketRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("marketplace item not found")
	}
	return nil
}
