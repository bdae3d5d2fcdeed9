package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) Create(ctx context.Context, userID string, ttl time.Duration) (*Session, error) {
	s := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := r.rdb.Set(ctx, keyPrefix+s.ID, userID, ttl).Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Redis) Get(ctx context.Context, id string) (*Session, error) {
	userID, err := r.rdb.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Session{ID: id, UserID: userID}, nil
}

func (r *Redis) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, keyPrefix+id).Err()
}
