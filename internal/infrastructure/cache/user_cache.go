package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"school-backend/internal/application/interfaces"
	"school-backend/internal/domain/entities"
)

type RedisUserCache struct {
	client *redis.Client
}

// NewRedisUserCache connects to Redis and returns a user cache, or nil when
// addr is empty or the server is unreachable. Callers treat a nil cache as
// "caching disabled".
func NewRedisUserCache(ctx context.Context, addr, password string, db int) (*RedisUserCache, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisUserCache{client: client}, nil
}

var _ interfaces.UserCache = (*RedisUserCache)(nil)

func userKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (c *RedisUserCache) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	data, err := c.client.Get(ctx, userKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var user entities.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *RedisUserCache) SetUser(ctx context.Context, user *entities.User, ttl time.Duration) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, userKey(user.ID), data, ttl).Err()
}

func (c *RedisUserCache) DeleteUser(ctx context.Context, id uint) error {
	return c.client.Del(ctx, userKey(id)).Err()
}

func (c *RedisUserCache) Close() error {
	return c.client.Close()
}
