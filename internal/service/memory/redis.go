package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	chatModel "github.com/obaidAfridi75/Afridibot-repo/internal/model/chat"
)

// RedisStore implements Store on a Redis list per session, for deployments
// where session state must survive a single process.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func turnKey(sessionID string) string {
	return "chat:turns:" + sessionID
}

// Append pushes a JSON-encoded turn onto the session list. RPUSH keeps
// concurrent appends ordered without client-side locking.
func (s *RedisStore) Append(ctx context.Context, sessionID string, turn chatModel.Turn) error {
	payload, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to encode turn: %w", err)
	}

	if err := s.client.RPush(ctx, turnKey(sessionID), payload).Err(); err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}
	return nil
}

// Recent reads the last n turns, oldest-first.
func (s *RedisStore) Recent(ctx context.Context, sessionID string, n int) ([]chatModel.Turn, error) {
	raw, err := s.client.LRange(ctx, turnKey(sessionID), -int64(n), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load turns: %w", err)
	}

	turns := make([]chatModel.Turn, 0, len(raw))
	for _, item := range raw {
		var turn chatModel.Turn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("failed to decode turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}
