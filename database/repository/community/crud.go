package communityRepo

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

// Create inserts a new community post and returns its ID.
func (r *mongoCommunityRepo) Create(ctx context.Context, post models.CommunityPost) (string, error) {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		return "", err
	}
	return post.ID, nil
}

// GetByID returns a community post by its ID.
func (r *mongoCommunityRepo) GetByID(ctx context.Context, id string) (*models.CommunityPost, error) {
	var post models.CommunityPost
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List fetches all community posts, newest first.
func (r *mongoCommunityRepo) List(ctx context.Context) ([]models.CommunityPost, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.CommunityPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Like increments the like counter and returns the updated post.
func (r *mongoCommunityRepo) Like(ctx context.Context, id string) (*models.CommunityPost, error) {
	update := bson.M{
		"$inc": bson.M{"likes": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.CommunityPost
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteByID removes a community post by ID.
func (r *mongoCommunityRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("post not found")
	}
	return nil
}
