package usecase

import (
	"context"

	"freshdeal/internal/domain/entity"
)

// Confirmer asks the user whether the cart of another restaurant may be replaced.
type Confirmer interface {
	ConfirmCartReplace(ctx context.Context, currentRestaurantID, newRestaurantID int64) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, currentRestaurantID, newRestaurantID int64) bool

// ConfirmCartReplace calls f.
func (f ConfirmFunc) ConfirmCartReplace(ctx context.Context, currentRestaurantID, newRestaurantID int64) bool {
	return f(ctx, currentRestaurantID, newRestaurantID)
}

// AddToCartInput adds one unit of a listing.
type AddToCartInput struct {
	Listing entity.Listing
	// Confirmer is consulted on a cross-restaurant conflict. nil declines.
	Confirmer Confirmer
}

// CartUsecase defines the cart operations.
type CartUsecase interface {
	FetchCart(ctx context.Context) ([]entity.CartItem, error)

	// AddToCart adds one unit. A cart holding another restaurant is only replaced
	// after confirmation, by a reset that completes before the add.
	AddToCart(ctx context.Context, input AddToCartInput) (*entity.CartItem, error)

	// RemoveFromCart removes one unit; the line disappears at zero.
	RemoveFromCart(ctx context.Context, listingID int64) error

	// UpdateCartItem sets an explicit count, bounded by stock.
	UpdateCartItem(ctx context.Context, listing entity.Listing, count int) error

	ResetCart(ctx context.Context) error
}
