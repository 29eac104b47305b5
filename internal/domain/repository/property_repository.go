package repository

import (
	"context"

	"estatehub/internal/domain/entity"
)

type PropertyRepository interface {
	FindAll(ctx context.Context) ([]entity.Property, error)
	FindByID(ctx context.Context, id string) (*entity.Property, error)
}
