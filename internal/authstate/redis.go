package authstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps pending logins in redis so the authorization flow
// survives process restarts and works across multiple handler instances.
// Expiry is redis TTL; consume-once is GETDEL.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "authstate:"}
}

func (s *RedisStore) key(state string) string {
	return s.prefix + state
}

// Put stores the pending login under the state token with the given TTL.
func (s *RedisStore) Put(ctx context.Context, state string, login PendingLogin, ttl time.Duration) error {
	data, err := json.Marshal(login)
	if err != nil {
		return fmt.Errorf("marshal pending login: %w", err)
	}
	return s.client.Set(ctx, s.key(state), data, ttl).Err()
}

// Take atomically removes and returns the entry via GETDEL.
func (s *RedisStore) Take(ctx context.Context, state string) (*PendingLogin, error) {
	val, err := s.client.GetDel(ctx, s.key(state)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("take pending login: %w", err)
	}

	var login PendingLogin
	if err := json.Unmarshal([]byte(val), &login); err != nil {
		return nil, fmt.Errorf("unmarshal pending login: %w", err)
	}
	return &login, nil
}
