package entity

import "github.com/shopspring/decimal"

// Listing is a discounted surplus-food offer of a restaurant.
type Listing struct {
	ID            int64
	RestaurantID  int64
	Title         string
	Description   string
	ImageURL      string
	OriginalPrice decimal.Decimal
	PickupPrice   decimal.Decimal
	DeliveryPrice decimal.Decimal
	FreshScore    float64 // 0-100
	ConsumeWithin int     // hours, 0 when unknown
	Count         int     // available stock
}
