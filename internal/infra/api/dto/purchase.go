package dto

import (
	"time"

	"freshdeal/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the body of POST /purchase.
type CreateOrderRequest struct {
	IsDelivery      bool   `json:"is_delivery"`
	DeliveryAddress string `json:"delivery_address,omitempty" validate:"required_if=IsDelivery true"`
	DeliveryNotes   string `json:"delivery_notes,omitempty"`
	PickupNotes     string `json:"pickup_notes,omitempty"`
}

// Purchase is the wire form of an order.
type Purchase struct {
	ID              int64           `json:"purchase_id"`
	UserID          int64           `json:"user_id"`
	RestaurantID    int64           `json:"restaurant_id"`
	ListingID       int64           `json:"listing_id"`
	ListingTitle    string          `json:"listing_title"`
	Quantity        int             `json:"quantity"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          string          `json:"status"`
	IsDelivery      bool            `json:"is_delivery"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	DeliveryNotes   string          `json:"delivery_notes,omitempty"`
	CompletionImage string          `json:"completion_image_url,omitempty"`
	CreatedAt       time.Time       `json:"purchase_date"`
}

// PurchasesResponse wraps an order list.
type PurchasesResponse struct {
	Purchases []Purchase `json:"purchases"`
}

// PurchaseResponse wraps one order.
type PurchaseResponse struct {
	Purchase Purchase `json:"purchase"`
}

// Pagination describes one page of previous orders.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	HasNext     bool `json:"has_next"`
}

// PreviousPurchasesResponse is returned by GET /purchase/previous.
type PreviousPurchasesResponse struct {
	Purchases  []Purchase `json:"purchases"`
	Pagination Pagination `json:"pagination"`
}

// ResponseRequest is the body of POST /purchase/{id}/response.
type ResponseRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
}

// HasRatingResponse is returned by GET /purchase/{id}/has-rating.
type HasRatingResponse struct {
	HasRating bool `json:"has_rating"`
}

// FromPurchase maps an entity to its wire form.
func FromPurchase(p entity.Purchase) Purchase {
	return Purchase{
		ID:              p.ID,
		UserID:          p.UserID,
		RestaurantID:    p.RestaurantID,
		ListingID:       p.ListingID,
		ListingTitle:    p.ListingTitle,
		Quantity:        p.Quantity,
		TotalPrice:      p.TotalPrice,
		Status:          string(p.Status),
		IsDelivery:      p.IsDelivery,
		DeliveryAddress: p.DeliveryAddress,
		DeliveryNotes:   p.DeliveryNotes,
		CompletionImage: p.CompletionImage,
		CreatedAt:       p.CreatedAt,
	}
}

// ToEntity maps a server order.
func (p Purchase) ToEntity() entity.Purchase {
	return entity.Purchase{
		ID:              p.ID,
		UserID:          p.UserID,
		RestaurantID:    p.RestaurantID,
		ListingID:       p.ListingID,
		ListingTitle:    p.ListingTitle,
		Quantity:        p.Quantity,
		TotalPrice:      p.TotalPrice,
		Status:          entity.PurchaseStatus(p.Status),
		IsDelivery:      p.IsDelivery,
		DeliveryAddress: p.DeliveryAddress,
		DeliveryNotes:   p.DeliveryNotes,
		CompletionImage: p.CompletionImage,
		CreatedAt:       p.CreatedAt,
	}
}

// ToPurchases maps a server order list.
func ToPurchases(in []Purchase) []entity.Purchase {
	out := make([]entity.Purchase, 0, len(in))
	for _, p := range in {
		out = append(out, p.ToEntity())
	}

	return out
}
