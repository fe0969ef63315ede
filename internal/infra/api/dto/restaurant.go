package dto

import (
	"time"

	"freshdeal/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

// Restaurant is the wire form of a restaurant.
type Restaurant struct {
	ID                    int64               `json:"id"`
	OwnerID               int64               `json:"owner_id"`
	RestaurantName        string              `json:"restaurantName"`
	RestaurantDescription string              `json:"restaurantDescription"`
	Longitude             float64             `json:"longitude"`
	Latitude              float64             `json:"latitude"`
	Category              string              `json:"category"`
	WorkingDays           []string            `json:"workingDays"`
	WorkingHoursStart     string              `json:"workingHoursStart,omitempty"`
	WorkingHoursEnd       string              `json:"workingHoursEnd,omitempty"`
	Listings              int                 `json:"listings"`
	Rating                *float64            `json:"rating"`
	RatingCount           int                 `json:"ratingCount"`
	ImageURL              *string             `json:"image_url"`
	Pickup                bool                `json:"pickup"`
	Delivery              bool                `json:"delivery"`
	DistanceKm            *float64            `json:"distance_km"`
	MaxDeliveryDistance   *float64            `json:"maxDeliveryDistance"`
	DeliveryFee           decimal.NullDecimal `json:"deliveryFee"`
	MinOrderAmount        decimal.NullDecimal `json:"minOrderAmount"`
	Comments              []Comment           `json:"comments,omitempty"`
}

// Comment is the wire form of a restaurant review.
type Comment struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	PurchaseID int64     `json:"purchase_id,omitempty"`
	Comment    string    `json:"comment"`
	Rating     int       `json:"rating"`
	Timestamp  time.Time `json:"timestamp"`
}

// CommentRequest is the body of POST /restaurants/{id}/comments.
type CommentRequest struct {
	Comment    string `json:"comment" validate:"required"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
	PurchaseID int64  `json:"purchase_id" validate:"required"`
}

// ProximityRequest is the body of POST /restaurants/proximity.
type ProximityRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Radius    float64 `json:"radius" validate:"gt=0"`
}

// RestaurantsResponse wraps a restaurant list.
type RestaurantsResponse struct {
	Restaurants []Restaurant `json:"restaurants"`
}

// RestaurantResponse wraps a created or updated restaurant.
type RestaurantResponse struct {
	Restaurant Restaurant `json:"restaurant"`
}

// FromRestaurant maps an entity to its wire form.
func FromRestaurant(r entity.Restaurant) Restaurant {
	out := Restaurant{
		ID:                    r.ID,
		OwnerID:               r.OwnerID,
		RestaurantName:        r.Name,
		RestaurantDescription: r.Description,
		Longitude:             r.Location.Lon(),
		Latitude:              r.Location.Lat(),
		Category:              r.Category,
		WorkingDays:           r.WorkingDays,
		WorkingHoursStart:     r.WorkingHoursStart,
		WorkingHoursEnd:       r.WorkingHoursEnd,
		Listings:              r.ListingCount,
		Rating:                r.Rating,
		RatingCount:           r.RatingCount,
		Pickup:                r.Pickup,
		Delivery:              r.Delivery,
		DistanceKm:            r.DistanceKm,
		MaxDeliveryDistance:   r.MaxDeliveryDistance,
		DeliveryFee:           r.DeliveryFee,
		MinOrderAmount:        r.MinOrderAmount,
	}
	if r.ImageURL != "" {
		image := r.ImageURL
		out.ImageURL = &image
	}
	for _, c := range r.Comments {
		out.Comments = append(out.Comments, Comment{
			ID:         c.ID,
			UserID:     c.UserID,
			PurchaseID: c.PurchaseID,
			Comment:    c.Comment,
			Rating:     c.Rating,
			Timestamp:  c.Timestamp,
		})
	}

	return out
}

// ToEntity maps a server restaurant.
func (r Restaurant) ToEntity() entity.Restaurant {
	out := entity.Restaurant{
		ID:                  r.ID,
		OwnerID:             r.OwnerID,
		Name:                r.RestaurantName,
		Description:         r.RestaurantDescription,
		Location:            orb.Point{r.Longitude, r.Latitude},
		Category:            r.Category,
		WorkingDays:         r.WorkingDays,
		WorkingHoursStart:   r.WorkingHoursStart,
		WorkingHoursEnd:     r.WorkingHoursEnd,
		ListingCount:        r.Listings,
		Rating:              r.Rating,
		RatingCount:         r.RatingCount,
		Pickup:              r.Pickup,
		Delivery:            r.Delivery,
		DistanceKm:          r.DistanceKm,
		MaxDeliveryDistance: r.MaxDeliveryDistance,
		DeliveryFee:         r.DeliveryFee,
		MinOrderAmount:      r.MinOrderAmount,
	}
	if r.ImageURL != nil {
		out.ImageURL = *r.ImageURL
	}
	for _, c := range r.Comments {
		out.Comments = append(out.Comments, entity.Comment{
			ID:         c.ID,
			UserID:     c.UserID,
			PurchaseID: c.PurchaseID,
			Comment:    c.Comment,
			Rating:     c.Rating,
			Timestamp:  c.Timestamp,
		})
	}

	return out
}

// ToRestaurants maps a server restaurant list.
func ToRestaurants(in []Restaurant) []entity.Restaurant {
	out := make([]entity.Restaurant, 0, len(in))
	for _, r := range in {
		out = append(out, r.ToEntity())
	}

	return out
}
