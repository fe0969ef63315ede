package entity

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

// Restaurant is a venue offering surplus-food listings. Fulfillment and distance
// fields are computed by the server and trusted as-is.
type Restaurant struct {
	ID                  int64
	OwnerID             int64
	Name                string
	Description         string
	Location            orb.Point // lon/lat
	Category            string
	WorkingDays         []string
	WorkingHoursStart   string
	WorkingHoursEnd     string
	ListingCount        int
	Rating              *float64
	RatingCount         int
	ImageURL            string
	Pickup              bool
	Delivery            bool
	DistanceKm          *float64 // nil when the server did not compute it
	MaxDeliveryDistance *float64
	DeliveryFee         decimal.NullDecimal
	MinOrderAmount      decimal.NullDecimal
	Comments            []Comment
}

// Comment is a rating left by a customer after a purchase.
type Comment struct {
	ID         int64
	UserID     int64
	PurchaseID int64
	Comment    string
	Rating     int
	Timestamp  time.Time
}
