package chatRepo

import (
	"context"
	"time"

	"inclusivehub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new chat message and returns its ID.
func (r *mongoChatRepo) Create(ctx context.Context, msg models.ChatMessage) (string, error) {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	msg.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, msg)
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

// GetBySession fetches all messages for a session in chronological order.
func (r *mongoChatRepo) GetBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteBySession removes all messages for a session.
func (r *mongoChatRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"sessionId": sessionID})
	return err
}
