package chatRepo

import (
	"context"

	"inclusivehub/database"
	"inclusivehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, msg models.ChatMessage) (string, error)
	GetBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type mongoChatRepo struct {
	coll *mongo.Collection
}

// NewMongoChatRepo returns a new ChatMessageRepository instance using MongoDB.
func NewMongoChatRepo() ChatMessageRepository {
	db := database.MongoClient.Database("inclusivehub")
	return &mongoChatRepo{
		coll: db.Collection("chat_messages"),
	}
}
