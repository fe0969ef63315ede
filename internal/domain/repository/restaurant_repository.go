package repository

import (
	"context"

	"freshdeal/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProximityQuery selects restaurants within RadiusKm of a coordinate.
type ProximityQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// Image is a file sent as a multipart part.
type Image struct {
	Filename string
	Content  []byte
}

// RestaurantForm carries the multipart fields of a restaurant create or update.
type RestaurantForm struct {
	Name                string
	Description         string
	Category            string
	Latitude            float64
	Longitude           float64
	WorkingDays         []string
	WorkingHoursStart   string
	WorkingHoursEnd     string
	Pickup              bool
	Delivery            bool
	MaxDeliveryDistance *float64
	DeliveryFee         decimal.NullDecimal
	MinOrderAmount      decimal.NullDecimal
	Image               *Image
}

// CommentInput is a review left after a purchase.
type CommentInput struct {
	PurchaseID int64
	Comment    string
	Rating     float64
}

// RestaurantRepository defines the restaurant endpoints of the backend.
type RestaurantRepository interface {
	// FetchByProximity returns the restaurants around a coordinate.
	FetchByProximity(ctx context.Context, token string, query ProximityQuery) ([]entity.Restaurant, error)

	FetchRestaurant(ctx context.Context, token string, restaurantID int64) (*entity.Restaurant, error)
	FetchAll(ctx context.Context, token string) ([]entity.Restaurant, error)
	CreateRestaurant(ctx context.Context, token string, form RestaurantForm) (*entity.Restaurant, error)
	UpdateRestaurant(ctx context.Context, token string, restaurantID int64, form RestaurantForm) (*entity.Restaurant, error)
	DeleteRestaurant(ctx context.Context, token string, restaurantID int64) error

	// AddComment posts a review. Rating is rounded to the nearest integer.
	AddComment(ctx context.Context, token string, restaurantID int64, input CommentInput) error

	// FetchListings returns the active listings of a restaurant.
	FetchListings(ctx context.Context, token string, restaurantID int64) ([]entity.Listing, error)
}
