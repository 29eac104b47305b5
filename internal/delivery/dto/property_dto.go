package dto

import (
	"github.com/shopspring/decimal"
)

// Response DTOs

type PropertyResponse struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Location   string          `json:"location"`
	Price      decimal.Decimal `json:"price"`
	PriceLabel string          `json:"price_label"` // e.g. "$2,500,000"
	Beds       int             `json:"beds"`
	Baths      int             `json:"baths"`
	Sqft       int             `json:"sqft"`
	SqftLabel  string          `json:"sqft_label"` // e.g. "3,500"
	Image      string          `json:"image"`
}

type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
}
