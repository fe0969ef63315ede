package usecase

import (
	"context"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/store"
)

// ProximityInput selects restaurants around a coordinate.
type ProximityInput struct {
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
	RadiusKm  float64 `validate:"gt=0"`
}

// CommentInput is a review of a completed purchase.
type CommentInput struct {
	PurchaseID int64   `validate:"required"`
	Comment    string  `validate:"required"`
	Rating     float64 `validate:"gte=1,lte=5"`
}

// RestaurantUsecase defines the restaurant operations.
type RestaurantUsecase interface {
	// FetchByProximity replaces the restaurant list with the results around the input point.
	FetchByProximity(ctx context.Context, input ProximityInput) ([]entity.Restaurant, error)

	FetchRestaurant(ctx context.Context, restaurantID int64) (*entity.Restaurant, error)
	FetchListings(ctx context.Context, restaurantID int64) ([]entity.Listing, error)

	FetchFavorites(ctx context.Context) ([]int64, error)
	AddFavorite(ctx context.Context, restaurantID int64) error
	RemoveFavorite(ctx context.Context, restaurantID int64) error

	AddComment(ctx context.Context, restaurantID int64, input CommentInput) error

	// Owner-side management.
	FetchAll(ctx context.Context) ([]entity.Restaurant, error)
	CreateRestaurant(ctx context.Context, form repository.RestaurantForm) (*entity.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurantID int64, form repository.RestaurantForm) (*entity.Restaurant, error)
	DeleteRestaurant(ctx context.Context, restaurantID int64) error

	SelectListing(listing entity.Listing)
	ClearListing()
	SetFulfillmentMode(mode store.FulfillmentMode)
}
