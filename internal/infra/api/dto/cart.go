package dto

import "freshdeal/internal/domain/entity"

// CartItem is the wire form of a cart line.
type CartItem struct {
	ListingID    int64  `json:"listing_id" validate:"required"`
	RestaurantID int64  `json:"restaurant_id,omitempty"`
	Count        int    `json:"count" validate:"min=0"`
	Title        string `json:"title,omitempty"`
}

// CartResponse wraps the cart lines.
type CartResponse struct {
	Cart []CartItem `json:"cart"`
}

// CartItemResponse wraps one confirmed line.
type CartItemResponse struct {
	Item CartItem `json:"item"`
}

// FromCartItem maps an entity to its wire form.
func FromCartItem(i entity.CartItem) CartItem {
	return CartItem{
		ListingID:    i.ListingID,
		RestaurantID: i.RestaurantID,
		Count:        i.Count,
		Title:        i.Title,
	}
}

// ToEntity maps a server line.
func (i CartItem) ToEntity() entity.CartItem {
	return entity.CartItem{
		ListingID:    i.ListingID,
		RestaurantID: i.RestaurantID,
		Count:        i.Count,
		Title:        i.Title,
	}
}
