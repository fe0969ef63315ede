package repository

import (
	"context"

	"freshdeal/internal/domain/entity"
)

// OrderRequest turns the current cart into orders.
type OrderRequest struct {
	IsDelivery      bool
	DeliveryAddress string
	DeliveryNotes   string
	PickupNotes     string
}

// PurchasePage is one page of past orders.
type PurchasePage struct {
	Purchases []entity.Purchase
	Page      int
	PerPage   int
	Total     int
	HasNext   bool
}

// PurchaseRepository defines the purchase endpoints of the backend.
type PurchaseRepository interface {
	// CreateOrder places one order per cart line and clears the server cart.
	CreateOrder(ctx context.Context, token string, request OrderRequest) ([]entity.Purchase, error)

	FetchActive(ctx context.Context, token string) ([]entity.Purchase, error)
	FetchPrevious(ctx context.Context, token string, page, perPage int) (*PurchasePage, error)
	FetchDetail(ctx context.Context, token string, purchaseID int64) (*entity.Purchase, error)

	// Respond records a restaurant decision on a pending order.
	Respond(ctx context.Context, token string, purchaseID int64, decision entity.Decision) (*entity.Purchase, error)

	// HasRating reports whether the order was already reviewed.
	HasRating(ctx context.Context, token string, purchaseID int64) (bool, error)
}
