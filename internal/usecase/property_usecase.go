package usecase

import (
	"context"
	"errors"

	"estatehub/internal/converter"
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/repository"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
)

type PropertyUsecase interface {
	GetAll(ctx context.Context) (*dto.PropertyListResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PropertyResponse, error)
}

type propertyUsecase struct {
	propertyRepo repository.PropertyRepository
}

func NewPropertyUsecase(propertyRepo repository.PropertyRepository) PropertyUsecase {
	return &propertyUsecase{propertyRepo: propertyRepo}
}

func (u *propertyUsecase) GetAll(ctx context.Context) (*dto.PropertyListResponse, error) {
	properties, err := u.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.PropertyListResponse{
		Properties: converter.PropertiesToResponses(properties),
	}, nil
}

func (u *propertyUsecase) GetByID(ctx context.Context, id string) (*dto.PropertyResponse, error) {
	property, err := u.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	return converter.PropertyToResponse(property), nil
}
