package converter

import (
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders whole-dollar amounts with grouping, e.g. "$2,500,000".
// Amounts with cents keep two decimals.
func FormatUSD(amount decimal.Decimal) string {
	if amount.Equal(amount.Truncate(0)) {
		return usPrinter.Sprintf("$%d", amount.IntPart())
	}
	f, _ := amount.Round(2).Float64()
	return usPrinter.Sprintf("$%.2f", f)
}

// PropertyToResponse converts a Property entity to PropertyResponse DTO
func PropertyToResponse(property *entity.Property) *dto.PropertyResponse {
	if property == nil {
		return nil
	}

	return &dto.PropertyResponse{
		ID:         property.ID,
		Title:      property.Title,
		Location:   property.Location,
		Price:      property.Price,
		PriceLabel: FormatUSD(property.Price),
		Beds:       property.Beds,
		Baths:      property.Baths,
		Sqft:       property.Sqft,
		SqftLabel:  usPrinter.Sprintf("%d", property.Sqft),
		Image:      property.Image,
	}
}

// PropertiesToResponses converts a slice of Property entities to slice of PropertyResponse DTOs
func PropertiesToResponses(properties []entity.Property) []dto.PropertyResponse {
	responses := make([]dto.PropertyResponse, len(properties))
	for i := range properties {
		responses[i] = *PropertyToResponse(&properties[i])
	}
	return responses
}
