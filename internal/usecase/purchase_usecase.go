package usecase

import (
	"context"

	"freshdeal/internal/domain/entity"
)

// CreateOrderInput turns the cart into orders.
type CreateOrderInput struct {
	IsDelivery bool
	Notes      string
}

// PurchaseUsecase defines the order operations.
type PurchaseUsecase interface {
	// CreateOrder places the cart. Delivery orders ship to the selected address.
	CreateOrder(ctx context.Context, input CreateOrderInput) ([]entity.Purchase, error)

	FetchActiveOrders(ctx context.Context) ([]entity.Purchase, error)
	FetchPreviousOrders(ctx context.Context, page int) ([]entity.Purchase, error)
	FetchOrderDetail(ctx context.Context, purchaseID int64) (*entity.Purchase, error)

	// RespondToOrder records a restaurant decision.
	RespondToOrder(ctx context.Context, purchaseID int64, decision entity.Decision) (*entity.Purchase, error)

	HasRating(ctx context.Context, purchaseID int64) (bool, error)

	// PickupCode renders the QR code of an accepted pickup order.
	PickupCode(ctx context.Context, purchaseID int64) ([]byte, error)
}
