package dto

import (
	"freshdeal/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Listing is the wire form of a listing.
type Listing struct {
	ID            int64           `json:"id"`
	RestaurantID  int64           `json:"restaurant_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"image_url,omitempty"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	PickupPrice   decimal.Decimal `json:"pick_up_price"`
	DeliveryPrice decimal.Decimal `json:"delivery_price"`
	FreshScore    float64         `json:"fresh_score"`
	ConsumeWithin int             `json:"consume_within"`
	Count         int             `json:"count"`
}

// ListingsResponse wraps a listing list.
type ListingsResponse struct {
	Listings []Listing `json:"listings"`
}

// FromListing maps an entity to its wire form.
func FromListing(l entity.Listing) Listing {
	return Listing{
		ID:            l.ID,
		RestaurantID:  l.RestaurantID,
		Title:         l.Title,
		Description:   l.Description,
		ImageURL:      l.ImageURL,
		OriginalPrice: l.OriginalPrice,
		PickupPrice:   l.PickupPrice,
		DeliveryPrice: l.DeliveryPrice,
		FreshScore:    l.FreshScore,
		ConsumeWithin: l.ConsumeWithin,
		Count:         l.Count,
	}
}

// ToEntity maps a server listing.
func (l Listing) ToEntity() entity.Listing {
	return entity.Listing{
		ID:            l.ID,
		RestaurantID:  l.RestaurantID,
		Title:         l.Title,
		Description:   l.Description,
		ImageURL:      l.ImageURL,
		OriginalPrice: l.OriginalPrice,
		PickupPrice:   l.PickupPrice,
		DeliveryPrice: l.DeliveryPrice,
		FreshScore:    l.FreshScore,
		ConsumeWithin: l.ConsumeWithin,
		Count:         l.Count,
	}
}
