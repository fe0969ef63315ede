package repository

import (
	"context"

	"freshdeal/internal/domain/entity"
)

// CartRepository defines the cart endpoints of the backend.
type CartRepository interface {
	FetchCart(ctx context.Context, token string) ([]entity.CartItem, error)

	// AddItem inserts a new line and returns the server-confirmed item.
	AddItem(ctx context.Context, token string, listingID int64, count int) (*entity.CartItem, error)

	// UpdateItem sets the count of an existing line.
	UpdateItem(ctx context.Context, token string, listingID int64, count int) (*entity.CartItem, error)

	RemoveItem(ctx context.Context, token string, listingID int64) error

	// ResetCart empties the cart.
	ResetCart(ctx context.Context, token string) error
}
