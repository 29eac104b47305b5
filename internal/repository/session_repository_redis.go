package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"estatehub/internal/domain/entity"
	domainRepo "estatehub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSessionKeyPrefix namespaces session keys
const RedisSessionKeyPrefix = "session:"

func sessionKey(id uuid.UUID) string {
	return RedisSessionKeyPrefix + id.String()
}

type redisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository stores each session as JSON under session:<id>
// with an expiry of ttl, refreshed on every save.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) domainRepo.SessionRepository {
	return &redisSessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisSessionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	if session.Bookings == nil {
		session.Bookings = []entity.Booking{}
	}
	return &session, nil
}

func (r *redisSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	session.ExpiresAt = time.Now().Add(r.ttl)

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

// Close is a no-op; the client is owned by the application
func (r *redisSessionRepository) Close() error {
	return nil
}
