package educationRepo

import (
	"context"
	"errors"
	"time"

	"inclusivehub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new education module and returns its ID.
func (r *mongoEducationRepo) Create(ctx context.Context, module models.EducationModule) (string, error) {
	if module.ID == "" {
		module.ID = uuid.New().String()
	}
	module.CreatedAt = time.Now()
	module.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, module)
	if err != nil {
		return "", err
	}
	return module.ID, nil
}

// GetByID returns an education module by its ID.
func (r *mongoEducationRepo) GetByID(ctx context.Context, id string) (*models.EducationModule, error) {
	var module models.EducationModule
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&module)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// List fetches all education modules.
func (r *mongoEducationRepo) List(ctx context.Context) ([]models.EducationModule, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var modules []models.EducationModule
	if err := cursor.All(ctx, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

// DeleteByID removes an education module by ID.
func (r *mongoEducationRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("education module not found")
	}
	return nil
}
