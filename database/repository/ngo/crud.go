package ngoRepo

import (
	"context"
	"errors"
	"time"

	"inclusivehub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new NGO and returns its ID.
func (r *mongoNGORepo) Create(ctx context.Context, ngo models.NGO) (string, error) {
	if ngo.ID == "" {
		ngo.ID = uuid.New().String()
	}
	ngo.CreatedAt = time.Now()
	ngo.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, ngo)
	if err != nil {
		return "", err
	}
	return ngo.ID, nil
}

// GetByID returns an NGO by its ID.
func (r *mongoNGORepo) GetByID(ctx context.Context, id string) (*models.NGO, error) {
	var ngo models.NGO
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ngo)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ngo, nil
}

// List fetches all NGOs.
func (r *mongoNGORepo) List(ctx context.Context) ([]models.NGO, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ngos []models.NGO
	if err := cursor.All(ctx, &ngos); err != nil {
		return nil, err
	}
	return ngos, nil
}

// DeleteByID removes an NGO by ID.
func (r *mongoNGORepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("ngo not found")
	}
	return nil
}
