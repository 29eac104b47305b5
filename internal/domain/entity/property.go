package entity

import (
	"github.com/shopspring/decimal"
)

// Property is a listing shown on the landing page
type Property struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Location string          `json:"location"`
	Price    decimal.Decimal `json:"price"`
	Beds     int             `json:"beds"`
	Baths    int             `json:"baths"`
	Sqft     int             `json:"sqft"`
	Image    string          `json:"image"`
}
