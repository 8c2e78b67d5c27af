package cache

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const KeyPrefix = "catalog"

type Config struct {
	Addr     string
	Password string
	DB       int
}

type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(ctx context.Context, cfg *Config) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisClient{Client: client}, nil
}

func (c *RedisClient) Close() error {
	return c.Client.Close()
}

// GetJSON decodes the value under key into dest. A missing key is (false, nil).
func (c *RedisClient) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisClient) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, data, ttl).Err()
}

// DeletePattern removes every key matching pattern and returns how many were removed.
func (c *RedisClient) DeletePattern(ctx context.Context, pattern string) (int, error) {
	var deleted int
	iter := c.Client.Scan(ctx, 0, pattern, 100).Iterator()
	batch := make([]string, 0, 100)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			n, err := c.Client.Del(ctx, batch...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += int(n)
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, err
	}
	if len(batch) > 0 {
		n, err := c.Client.Del(ctx, batch...).Result()
		if err != nil {
			return deleted, err
		}
		deleted += int(n)
	}
	return deleted, nil
}

// Key builds "catalog:<entity>:<md5 of params>".
func Key(entity string, params any) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s:%x", KeyPrefix, entity, md5.Sum(data)), nil
}

// EntityPattern matches every cached key of one entity.
func EntityPattern(entity string) string {
	return fmt.Sprintf("%s:%s:*", KeyPrefix, entity)
}

// ReadThrough returns the value cached under key, or calls load and caches its
// result for ttl. Cache failures go to onErr and never fail the call; a nil
// client disables caching.
func ReadThrough[T any](ctx context.Context, c *RedisClient, key string, ttl time.Duration,
	load func(context.Context) (T, error), onErr func(error)) (T, error) {
	if c == nil || key == "" {
		return load(ctx)
	}

	var cached T
	hit, err := c.GetJSON(ctx, key, &cached)
	if err != nil {
		onErr(err)
	} else if hit {
		return cached, nil
	}

	val, err := load(ctx)
	if err != nil {
		return val, err
	}
	if err := c.SetJSON(ctx, key, val, ttl); err != nil {
		onErr(err)
	}
	return val, nil
}
