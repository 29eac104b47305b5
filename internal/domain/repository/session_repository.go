package repository

import (
	"context"

	"estatehub/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionRepository stores visitor sessions until they expire.
// Get returns nil, nil when the session does not exist or has expired.
type SessionRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	Close() error
}
