package assistant

import (
	"context"
	"encoding/json"
	"time"

	"inclusivehub/models"

	"github.com/go-redis/redis/v8"
)

const historyKeyPrefix = "chat:hist:"

// HistoryStore keeps a rolling conversation window per room/session.
type HistoryStore interface {
	Append(ctx context.Context, key string, turn models.ConversationTurn) error
	Recent(ctx context.Context, key string, n int64) ([]models.ConversationTurn, error)
	Clear(ctx context.Context, key string) error
}

// RedisHistoryStore persists turns in a Redis list with a TTL.
type RedisHistoryStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisHistoryStore(client *redis.Client, ttl time.Duration) *RedisHistoryStore {
	return &RedisHistoryStore{client: client, ttl: ttl}
}

func (s *RedisHistoryStore) Append(ctx context.Context, key string, turn models.ConversationTurn) error {
	b, err := json.Marshal(turn)
	if err != nil {
		return err
	}
	rkey := historyKeyPrefix + key
	if err := s.client.RPush(ctx, rkey, b).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, rkey, s.ttl).Err()
}

func (s *RedisHistoryStore) Recent(ctx context.Context, key string, n int64) ([]models.ConversationTurn, error) {
	items, err := s.client.LRange(ctx, historyKeyPrefix+key, -n, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	turns := make([]models.ConversationTurn, 0, len(items))
	for _, item := range items {
		var turn models.ConversationTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			continue
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (s *RedisHistoryStore) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, historyKeyPrefix+key).Err()
}
