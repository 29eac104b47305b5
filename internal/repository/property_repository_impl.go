package repository

import (
	"context"

	"estatehub/internal/domain/entity"
	domainRepo "estatehub/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// sampleProperties are the hardcoded listings of the landing page
var sampleProperties = []entity.Property{
	{
		ID:       "modern-villa",
		Title:    "Modern Villa",
		Location: "Beverly Hills, CA",
		Price:    decimal.RequireFromString("2500000"),
		Beds:     4,
		Baths:    3,
		Sqft:     3500,
		Image:    "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&q=80",
	},
	{
		ID:       "luxury-penthouse",
		Title:    "Luxury Penthouse",
		Location: "Manhattan, NY",
		Price:    decimal.RequireFromString("3200000"),
		Beds:     3,
		Baths:    2,
		Sqft:     2800,
		Image:    "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800&q=80",
	},
	{
		ID:       "oceanfront-estate",
		Title:    "Oceanfront Estate",
		Location: "Malibu, CA",
		Price:    decimal.RequireFromString("4800000"),
		Beds:     5,
		Baths:    4,
		Sqft:     5200,
		Image:    "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&q=80",
	},
}

type propertyRepository struct {
	properties []entity.Property
}

func NewPropertyRepository() domainRepo.PropertyRepository {
	return &propertyRepository{properties: sampleProperties}
}

func (r *propertyRepository) FindAll(ctx context.Context) ([]entity.Property, error) {
	properties := make([]entity.Property, len(r.properties))
	copy(properties, r.properties)
	return properties, nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	for _, p := range r.properties {
		if p.ID == id {
			property := p
			return &property, nil
		}
	}
	return nil, nil
}
