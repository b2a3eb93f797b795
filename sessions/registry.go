package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrSessionMissing is returned when a session id is not (or no longer) registered.
var ErrSessionMissing = errors.New("session not registered")

// Registry is the server-side list of live sessions.
type Registry interface {
	Put(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Lookup(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
	SetValue(ctx context.Context, sessionID, key, value string, ttl time.Duration) error
	GetValue(ctx context.Context, sessionID, key string) (string, error)
}

type RedisRegistry struct {
	client *redis.Client
	prefix string
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisRegistry(client *redis.Client) *RedisRegistry {
	return &RedisRegistry{client: client, prefix: "session:"}
}

func (r *RedisRegistry) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisRegistry) Put(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(sessionID), userID, ttl).Err(); err != nil {
		return fmt.Errorf("register session: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Lookup(ctx context.Context, sessionID string) (string, error) {
	userID, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return "", ErrSessionMissing
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}
	return userID, nil
}

// valsKey holds every per-session value in one hash so Delete knows all keys.
func (r *RedisRegistry) valsKey(sessionID string) string {
	return r.key(sessionID) + ":vals"
}

func (r *RedisRegistry) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.key(sessionID), r.valsKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *RedisRegistry) SetValue(ctx context.Context, sessionID, key, value string, ttl time.Duration) error {
	vals := r.valsKey(sessionID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, vals, key, value)
		pipe.Expire(ctx, vals, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("set session value: %w", err)
	}
	return nil
}

func (r *RedisRegistry) GetValue(ctx context.Context, sessionID, key string) (string, error) {
	val, err := r.client.HGet(ctx, r.valsKey(sessionID), key).Result()
	if err == redis.Nil {
		return "", ErrSessionMissing
	}
	if err != nil {
		return "", fmt.Errorf("get session value: %w", err)
	}
	return val, nil
}
