package view

import (
	"testing"
	"time"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/store"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func km(v float64) *float64 {
	return &v
}

func TestFresh_Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  FreshBand
	}{
		{99, FreshGood},
		{80, FreshGood},
		{79, FreshWarning},
		{50, FreshWarning},
		{49, FreshCritical},
		{0, FreshCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Fresh(tt.score), "score %v", tt.score)
		assert.Equal(t, Fresh(tt.score), Fresh(tt.score))
	}
}

func TestFilters_Toggle(t *testing.T) {
	t.Run("default is pickup only", func(t *testing.T) {
		assert.Equal(t, Filters{Pickup: true}, DefaultFilters())
	})

	t.Run("pickup off while delivery off switches to delivery", func(t *testing.T) {
		got := DefaultFilters().Toggle(FilterPickup)
		assert.Equal(t, Filters{Pickup: false, Delivery: true}, got)
	})

	t.Run("delivery off while pickup off restores pickup", func(t *testing.T) {
		got := Filters{Delivery: true}.Toggle(FilterDelivery)
		assert.Equal(t, Filters{Pickup: true}, got)
	})

	t.Run("both on then one off", func(t *testing.T) {
		both := DefaultFilters().Toggle(FilterDelivery)
		assert.Equal(t, Filters{Pickup: true, Delivery: true}, both)
		assert.Equal(t, Filters{Delivery: true}, both.Toggle(FilterPickup))
	})

	t.Run("under30 is independent", func(t *testing.T) {
		got := DefaultFilters().Toggle(FilterUnder30).Toggle(FilterPickup)
		assert.Equal(t, Filters{Delivery: true, Under30: true}, got)
	})

	t.Run("never both off", func(t *testing.T) {
		f := DefaultFilters()
		ids := []FilterID{FilterPickup, FilterPickup, FilterDelivery, FilterUnder30, FilterDelivery, FilterPickup, FilterDelivery}
		for _, id := range ids {
			f = f.Toggle(id)
			assert.True(t, f.Pickup || f.Delivery, "after toggling %s", id)
		}
	})
}

func TestFilterRestaurants_PickupUnder30(t *testing.T) {
	restaurants := []entity.Restaurant{
		{ID: 1, Pickup: true, DistanceKm: km(1)},
		{ID: 2, Pickup: false, Delivery: true, DistanceKm: km(0.5)},
		{ID: 3, Pickup: true, DistanceKm: km(3)},
		{ID: 4, Pickup: true, DistanceKm: km(3.1)},
		{ID: 5, Pickup: true},
		{ID: 6, Pickup: true, Delivery: true, DistanceKm: km(2.9)},
	}

	got := FilterRestaurants(restaurants, Filters{Pickup: true, Under30: true})

	ids := make([]int64, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{1, 3, 6}, ids)
}

func TestFilterRestaurants_Delivery(t *testing.T) {
	restaurants := []entity.Restaurant{
		{ID: 1, Pickup: true},
		{ID: 2, Delivery: true},
		{ID: 3, Pickup: true, Delivery: true},
	}

	got := FilterRestaurants(restaurants, Filters{Delivery: true})
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	got = FilterRestaurants(restaurants, Filters{Pickup: true, Delivery: true})
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestWithDistances(t *testing.T) {
	origin := orb.Point{28.9784, 41.0082}
	restaurants := []entity.Restaurant{
		{ID: 1, Location: orb.Point{28.9784, 41.0082}},
		{ID: 2, Location: orb.Point{29.0, 41.0}, DistanceKm: km(42)},
		{ID: 3, Location: orb.Point{28.9784, 41.0352}},
	}

	got := WithDistances(restaurants, origin)

	require.NotNil(t, got[0].DistanceKm)
	assert.InDelta(t, 0, *got[0].DistanceKm, 1e-9)
	assert.Equal(t, 42.0, *got[1].DistanceKm)
	require.NotNil(t, got[2].DistanceKm)
	assert.InDelta(t, 3.0, *got[2].DistanceKm, 0.05)
	assert.Nil(t, restaurants[0].DistanceKm, "input must not be mutated")
}

func TestDisplayPriceAndSavings(t *testing.T) {
	listing := entity.Listing{
		OriginalPrice: decimal.NewFromInt(100),
		PickupPrice:   decimal.NewFromInt(40),
		DeliveryPrice: decimal.RequireFromString("55.5"),
	}

	assert.True(t, DisplayPrice(listing, store.ModePickup).Equal(decimal.NewFromInt(40)))
	assert.True(t, DisplayPrice(listing, store.ModeDelivery).Equal(decimal.RequireFromString("55.5")))
	assert.Equal(t, int64(60), SavingsPercent(listing, store.ModePickup))
	assert.Equal(t, int64(45), SavingsPercent(listing, store.ModeDelivery))
	assert.Equal(t, int64(0), SavingsPercent(entity.Listing{}, store.ModePickup))
}

func TestConsumeBefore(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(time.Hour), ConsumeBefore(entity.Listing{}, now))
	assert.Equal(t, now.Add(6*time.Hour), ConsumeBefore(entity.Listing{ConsumeWithin: 6}, now))
}

func TestListingCards(t *testing.T) {
	state := store.InitialState()
	state.Restaurant.Listings.Data = []entity.Listing{
		{ID: 10, FreshScore: 85, OriginalPrice: decimal.NewFromInt(10), PickupPrice: decimal.NewFromInt(5), DeliveryPrice: decimal.NewFromInt(8)},
		{ID: 11, FreshScore: 20, OriginalPrice: decimal.NewFromInt(10), PickupPrice: decimal.NewFromInt(9), DeliveryPrice: decimal.NewFromInt(9)},
	}
	state.Cart.Items.Data = []entity.CartItem{{ListingID: 11, RestaurantID: 1, Count: 2}}

	cards := ListingCards(state)

	require.Len(t, cards, 2)
	assert.Equal(t, FreshGood, cards[0].Band)
	assert.Equal(t, 0, cards[0].InCart)
	assert.Equal(t, int64(50), cards[0].SavingsPercent)
	assert.Equal(t, FreshCritical, cards[1].Band)
	assert.Equal(t, 2, cards[1].InCart)
}

func TestSortAchievements(t *testing.T) {
	in := []entity.Achievement{
		{ID: 1}, {ID: 2, Unlocked: true}, {ID: 3}, {ID: 4, Unlocked: true},
	}

	got := SortAchievements(in)

	ids := []int64{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	assert.Equal(t, []int64{2, 4, 1, 3}, ids)
	assert.Equal(t, int64(1), in[0].ID)
}

func TestRestaurants_UsesSelectedAddress(t *testing.T) {
	state := store.InitialState()
	state.Address.Addresses = []entity.Address{{ID: "a1", Latitude: 41.0082, Longitude: 28.9784}}
	state.Address.SelectedAddressID = "a1"
	state.Restaurant.Proximity.Data = []entity.Restaurant{
		{ID: 1, Pickup: true, Location: orb.Point{28.9784, 41.0100}},
		{ID: 2, Pickup: true, Location: orb.Point{28.9784, 41.2000}},
	}

	got := Restaurants(state, Filters{Pickup: true, Under30: true})

	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}
