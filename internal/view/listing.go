package view

import (
	"cmp"
	"slices"
	"time"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/store"

	"github.com/shopspring/decimal"
)

// FreshBand classifies a fresh score for display.
type FreshBand string

const (
	FreshGood     FreshBand = "good"
	FreshWarning  FreshBand = "warning"
	FreshCritical FreshBand = "critical"
)

// Fresh returns the band of a 0-100 score.
func Fresh(score float64) FreshBand {
	switch {
	case score >= 80:
		return FreshGood
	case score >= 50:
		return FreshWarning
	default:
		return FreshCritical
	}
}

// DisplayPrice is the price charged in the given fulfillment mode.
func DisplayPrice(listing entity.Listing, mode store.FulfillmentMode) decimal.Decimal {
	if mode == store.ModePickup {
		return listing.PickupPrice
	}

	return listing.DeliveryPrice
}

var hundred = decimal.NewFromInt(100)

// SavingsPercent is the rounded discount of the display price against the original price.
func SavingsPercent(listing entity.Listing, mode store.FulfillmentMode) int64 {
	if !listing.OriginalPrice.IsPositive() {
		return 0
	}
	saved := listing.OriginalPrice.Sub(DisplayPrice(listing, mode))

	return saved.Div(listing.OriginalPrice).Mul(hundred).Round(0).IntPart()
}

// ConsumeBefore is the time until which a listing bought at now stays good.
// Listings without a window get one hour.
func ConsumeBefore(listing entity.Listing, now time.Time) time.Time {
	hours := listing.ConsumeWithin
	if hours <= 0 {
		hours = 1
	}

	return now.Add(time.Duration(hours) * time.Hour)
}

// CartCount is the count of the cart line for listingID, 0 when the listing
// shows an Add button instead of a stepper.
func CartCount(cart store.CartState, listingID int64) int {
	return cart.Count(listingID)
}

// ListingCard is what one row of the listing screen shows.
type ListingCard struct {
	Listing        entity.Listing
	Price          decimal.Decimal
	SavingsPercent int64
	Band           FreshBand
	InCart         int
}

// ListingCards combines the listings of the opened restaurant with the cart.
func ListingCards(state store.State) []ListingCard {
	mode := state.Restaurant.Mode
	cards := make([]ListingCard, 0, len(state.Restaurant.Listings.Data))
	for _, listing := range state.Restaurant.Listings.Data {
		cards = append(cards, ListingCard{
			Listing:        listing,
			Price:          DisplayPrice(listing, mode),
			SavingsPercent: SavingsPercent(listing, mode),
			Band:           Fresh(listing.FreshScore),
			InCart:         CartCount(state.Cart, listing.ID),
		})
	}

	return cards
}

// SortAchievements orders unlocked achievements first, keeping the server order otherwise.
func SortAchievements(achievements []entity.Achievement) []entity.Achievement {
	out := slices.Clone(achievements)
	slices.SortStableFunc(out, func(a, b entity.Achievement) int {
		return cmp.Compare(rank(a.Unlocked), rank(b.Unlocked))
	})

	return out
}

func rank(unlocked bool) int {
	if unlocked {
		return 0
	}

	return 1
}
