package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/azacreation/adminsdk/pkg/logging"
)

const redisTokenKey = "adminsdk:session:token"

// RedisTokenStore persists the session token in Redis, sharing one
// admin session across processes.
type RedisTokenStore struct {
	client redis.Cmdable
	key    string
	ctx    context.Context
	logger *logging.Logger
}

// NewRedisTokenStore creates a Redis-backed token store.
func NewRedisTokenStore(client redis.Cmdable) *RedisTokenStore {
	return &RedisTokenStore{
		client: client,
		key:    redisTokenKey,
		ctx:    context.Background(),
		logger: logging.GetDefault(),
	}
}

// NewRedisTokenStoreFromURL connects to Redis and returns a token
// store, verifying the connection first.
func NewRedisTokenStoreFromURL(redisURL string) (*RedisTokenStore, error) {
	logger := logging.GetDefault()
	ctx := context.Background()

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(ctx, "Connected to Redis token store")

	return &RedisTokenStore{
		client: client,
		key:    redisTokenKey,
		ctx:    ctx,
		logger: logger,
	}, nil
}

// Get returns the stored token; an absent key means no token.
func (r *RedisTokenStore) Get() (string, error) {
	token, err := r.client.Get(r.ctx, r.key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Set stores the token without expiry; the session model has none.
func (r *RedisTokenStore) Set(token string) error {
	return r.client.Set(r.ctx, r.key, token, 0).Err()
}

// Clear removes the stored token.
func (r *RedisTokenStore) Clear() error {
	return r.client.Del(r.ctx, r.key).Err()
}
