package store

import (
	"testing"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reduceAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}

	return s
}

func home() entity.Address {
	return entity.Address{ID: "1", Title: "Home", Latitude: 41.0, Longitude: 29.0, Status: entity.OptimisticConfirmed}
}

func office() entity.Address {
	return entity.Address{ID: "2", Title: "Office", Latitude: 41.1, Longitude: 29.1, Status: entity.OptimisticConfirmed}
}

func TestReduce_UnknownActionLeavesStateUnchanged(t *testing.T) {
	s := reduceAll(InitialState(), ProfileFulfilled{Addresses: []entity.Address{home()}})

	assert.Equal(t, s, Reduce(s, nil))
	assert.Equal(t, s, Reduce(s, ListingCleared{}))
}

func TestAddress_OptimisticAddConfirmed(t *testing.T) {
	s := reduceAll(InitialState(), ProfileFulfilled{Addresses: []entity.Address{home(), office()}})
	tempID := entity.NewTempAddressID()

	s = Reduce(s, AddressAdded{Address: entity.Address{ID: tempID, Title: "Gym"}})
	require.Len(t, s.Address.Addresses, 3)
	assert.Equal(t, entity.OptimisticPending, s.Address.Addresses[2].Status)
	assert.Equal(t, tempID, s.Address.SelectedAddressID)
	assert.True(t, s.Address.Mutation.Loading)

	s = Reduce(s, AddressConfirmed{TempID: tempID, Address: entity.Address{ID: "9", Title: "Gym"}})
	require.Len(t, s.Address.Addresses, 3)
	assert.Equal(t, "9", s.Address.Addresses[2].ID)
	assert.Equal(t, entity.OptimisticConfirmed, s.Address.Addresses[2].Status)
	assert.Equal(t, "9", s.Address.SelectedAddressID)
	assert.False(t, s.Address.Mutation.Loading)
	assert.Equal(t, StatusSucceeded, s.Address.Mutation.Status)
}

func TestAddress_ProfileRefreshKeepsTentativeAddress(t *testing.T) {
	tempID := entity.NewTempAddressID()
	s := reduceAll(InitialState(),
		ProfileFulfilled{Addresses: []entity.Address{home()}},
		AddressAdded{Address: entity.Address{ID: tempID, Title: "Gym"}},
		ProfileFulfilled{Addresses: []entity.Address{home(), office()}},
	)

	require.Len(t, s.Address.Addresses, 3)
	assert.Equal(t, tempID, s.Address.Addresses[2].ID)
	assert.Equal(t, tempID, s.Address.SelectedAddressID)

	s = Reduce(s, AddressConfirmed{TempID: tempID, Address: entity.Address{ID: "9", Title: "Gym"}})

	ids := make([]string, 0, len(s.Address.Addresses))
	for _, addr := range s.Address.Addresses {
		ids = append(ids, addr.ID)
	}
	assert.Equal(t, []string{"1", "2", "9"}, ids)
	assert.Equal(t, "9", s.Address.SelectedAddressID)
}

func TestAddress_ConfirmAfterRefreshDeliveredRecord(t *testing.T) {
	tempID := entity.NewTempAddressID()
	saved := entity.Address{ID: "9", Title: "Gym", Status: entity.OptimisticConfirmed}
	s := reduceAll(InitialState(),
		ProfileFulfilled{Addresses: []entity.Address{home()}},
		AddressAdded{Address: entity.Address{ID: tempID, Title: "Gym"}},
		ProfileFulfilled{Addresses: []entity.Address{home(), saved}},
		AddressConfirmed{TempID: tempID, Address: saved},
	)

	require.Len(t, s.Address.Addresses, 2)
	assert.Equal(t, "9", s.Address.Addresses[1].ID)
	assert.Equal(t, "9", s.Address.SelectedAddressID)
}

func TestAddress_RollbackAfterRefreshRemovesTentative(t *testing.T) {
	tempID := entity.NewTempAddressID()
	s := reduceAll(InitialState(),
		ProfileFulfilled{Addresses: []entity.Address{home()}},
		AddressAdded{Address: entity.Address{ID: tempID, Title: "Gym"}},
		ProfileFulfilled{Addresses: []entity.Address{home(), office()}},
		AddressRolledBack{TempID: tempID, PreviousSelectedID: "1", Message: "Failed to add address"},
	)

	assert.Equal(t, []entity.Address{home(), office()}, s.Address.Addresses)
	assert.Equal(t, "1", s.Address.SelectedAddressID)
}

func TestAddress_OptimisticAddRolledBackRestoresList(t *testing.T) {
	before := reduceAll(InitialState(),
		ProfileFulfilled{Addresses: []entity.Address{home(), office()}},
		AddressSelected{ID: "2"},
	)
	tempID := entity.NewTempAddressID()

	after := reduceAll(before,
		AddressAdded{Address: entity.Address{ID: tempID, Title: "Gym"}},
		AddressRolledBack{TempID: tempID, PreviousSelectedID: "2", Message: "Address could not be saved"},
	)

	assert.Equal(t, before.Address.Addresses, after.Address.Addresses)
	assert.Equal(t, "2", after.Address.SelectedAddressID)
	assert.Equal(t, "Address could not be saved", after.Address.Mutation.Error)
	assert.False(t, after.Address.Mutation.Loading)
}

func TestAddress_RemoveSelectedFallsBackToFirst(t *testing.T) {
	s := reduceAll(InitialState(),
		ProfileFulfilled{Addresses: []entity.Address{home(), office()}},
		AddressSelected{ID: "2"},
		AddressRemoved{ID: "2"},
	)
	assert.Equal(t, "1", s.Address.SelectedAddressID)

	s = Reduce(s, AddressRemoved{ID: "1"})
	assert.Empty(t, s.Address.SelectedAddressID)
	assert.Empty(t, s.Address.Addresses)
}

func TestAddress_SelectUnknownIDIsIgnored(t *testing.T) {
	s := reduceAll(InitialState(),
		ProfileFulfilled{Addresses: []entity.Address{home()}},
		AddressSelected{ID: "404"},
	)

	assert.Equal(t, "1", s.Address.SelectedAddressID)
}

func TestCart_NetCountsForSingleRestaurant(t *testing.T) {
	// listing -> expected net count; a line reaching 0 disappears
	s := reduceAll(InitialState(),
		CartItemMerged{Item: entity.CartItem{ListingID: 1, RestaurantID: 7, Count: 1}},
		CartItemMerged{Item: entity.CartItem{ListingID: 1, RestaurantID: 7, Count: 2}},
		CartItemMerged{Item: entity.CartItem{ListingID: 2, RestaurantID: 7, Count: 1}},
		CartItemMerged{Item: entity.CartItem{ListingID: 1, RestaurantID: 7, Count: 3}},
		CartItemMerged{Item: entity.CartItem{ListingID: 2, RestaurantID: 7, Count: 0}},
		CartItemMerged{Item: entity.CartItem{ListingID: 1, RestaurantID: 7, Count: 2}},
	)

	assert.Equal(t, 2, s.Cart.Count(1))
	assert.Equal(t, 0, s.Cart.Count(2))
	require.Len(t, s.Cart.Items.Data, 1)
	restaurantID, ok := s.Cart.RestaurantID()
	assert.True(t, ok)
	assert.Equal(t, int64(7), restaurantID)
}

func TestCart_MergeKeepsKnownFields(t *testing.T) {
	s := reduceAll(InitialState(),
		CartItemMerged{Item: entity.CartItem{ListingID: 1, RestaurantID: 7, Count: 1, Title: "Bagels"}},
		CartItemMerged{Item: entity.CartItem{ListingID: 1, Count: 2}},
	)

	assert.Equal(t, entity.CartItem{ListingID: 1, RestaurantID: 7, Count: 2, Title: "Bagels"}, s.Cart.Items.Data[0])
}

func TestCart_ClearedByOrderCreated(t *testing.T) {
	s := reduceAll(InitialState(),
		CartItemMerged{Item: entity.CartItem{ListingID: 1, RestaurantID: 7, Count: 1}},
		OrderCreated{Purchases: []entity.Purchase{{ID: 3, Status: entity.PurchasePending}}},
	)

	assert.Empty(t, s.Cart.Items.Data)
	assert.Len(t, s.Purchase.Active.Data, 1)
}

func TestRestaurant_ProximityWholesaleReplace(t *testing.T) {
	s := reduceAll(InitialState(),
		ProximityPending{Seq: 1},
		ProximityFulfilled{Seq: 1, Restaurants: []entity.Restaurant{{ID: 1}, {ID: 2}}},
		ProximityPending{Seq: 2},
	)
	assert.True(t, s.Restaurant.Proximity.Loading)
	assert.Len(t, s.Restaurant.Proximity.Data, 2)

	s = Reduce(s, ProximityFulfilled{Seq: 2, Restaurants: []entity.Restaurant{{ID: 3}}})
	assert.False(t, s.Restaurant.Proximity.Loading)
	assert.Equal(t, []entity.Restaurant{{ID: 3}}, s.Restaurant.Proximity.Data)
}

func TestRestaurant_RejectedClearsLoading(t *testing.T) {
	s := reduceAll(InitialState(),
		ProximityPending{Seq: 1},
		ProximityRejected{Seq: 1, Message: "Authentication token is missing"},
	)

	assert.False(t, s.Restaurant.Proximity.Loading)
	assert.Equal(t, StatusFailed, s.Restaurant.Proximity.Status)
	assert.Equal(t, "Authentication token is missing", s.Restaurant.Proximity.Error)
}

func TestRestaurant_LastToSettleWinsWithoutGuard(t *testing.T) {
	s := reduceAll(InitialState(),
		ProximityPending{Seq: 1},
		ProximityPending{Seq: 2},
		ProximityFulfilled{Seq: 2, Restaurants: []entity.Restaurant{{ID: 2}}},
		ProximityFulfilled{Seq: 1, Restaurants: []entity.Restaurant{{ID: 1}}},
	)

	assert.Equal(t, []entity.Restaurant{{ID: 1}}, s.Restaurant.Proximity.Data)
}

func TestRestaurant_GuardDropsStaleFetch(t *testing.T) {
	s := reduceAll(InitialState(),
		ProximityPending{Seq: 1},
		ProximityPending{Seq: 2},
		ProximityFulfilled{Seq: 2, Restaurants: []entity.Restaurant{{ID: 2}}, Guarded: true},
		ProximityFulfilled{Seq: 1, Restaurants: []entity.Restaurant{{ID: 1}}, Guarded: true},
		ProximityRejected{Seq: 1, Message: "late", Guarded: true},
	)

	assert.Equal(t, []entity.Restaurant{{ID: 2}}, s.Restaurant.Proximity.Data)
	assert.Equal(t, StatusSucceeded, s.Restaurant.Proximity.Status)
}

func TestRestaurant_FavoriteToggled(t *testing.T) {
	s := reduceAll(InitialState(),
		FavoritesFulfilled{RestaurantIDs: []int64{1, 2}},
		FavoriteToggled{RestaurantID: 3, Favorite: true},
		FavoriteToggled{RestaurantID: 1, Favorite: false},
		FavoriteToggled{RestaurantID: 3, Favorite: true},
	)

	assert.ElementsMatch(t, []int64{2, 3}, s.Restaurant.Favorites.Data)
	assert.True(t, s.Restaurant.IsFavorite(3))
	assert.False(t, s.Restaurant.IsFavorite(1))
}

func TestRestaurant_ListingsForOtherRestaurantIgnored(t *testing.T) {
	s := reduceAll(InitialState(),
		ListingsPending{RestaurantID: 1},
		ListingsPending{RestaurantID: 2},
		ListingsFulfilled{RestaurantID: 1, Listings: []entity.Listing{{ID: 10}}},
	)

	assert.True(t, s.Restaurant.Listings.Loading)
	assert.Empty(t, s.Restaurant.Listings.Data)
}

func TestPurchase_PreviousPagesAccumulate(t *testing.T) {
	s := reduceAll(InitialState(),
		PreviousOrdersFulfilled{Page: repository.PurchasePage{Purchases: []entity.Purchase{{ID: 1}}, Page: 1, HasNext: true}},
		PreviousOrdersFulfilled{Page: repository.PurchasePage{Purchases: []entity.Purchase{{ID: 2}}, Page: 2}},
	)
	assert.Len(t, s.Purchase.Previous.Data, 2)
	assert.False(t, s.Purchase.PreviousHasNext)

	s = Reduce(s, PreviousOrdersFulfilled{Page: repository.PurchasePage{Purchases: []entity.Purchase{{ID: 5}}, Page: 1}})
	assert.Equal(t, []entity.Purchase{{ID: 5}}, s.Purchase.Previous.Data)
}

func TestPurchase_RejectedOrderLeavesActiveList(t *testing.T) {
	s := reduceAll(InitialState(),
		ActiveOrdersFulfilled{Purchases: []entity.Purchase{{ID: 1, Status: entity.PurchasePending}, {ID: 2, Status: entity.PurchasePending}}},
		OrderResponded{Purchase: entity.Purchase{ID: 1, Status: entity.PurchaseRejected}},
		OrderResponded{Purchase: entity.Purchase{ID: 2, Status: entity.PurchaseAccepted}},
	)

	require.Len(t, s.Purchase.Active.Data, 1)
	assert.Equal(t, entity.PurchaseAccepted, s.Purchase.Active.Data[0].Status)
}

func TestLogout_ResetsEverySlice(t *testing.T) {
	own := entity.Rank{UserID: 1, Rank: 4}
	s := reduceAll(InitialState(),
		LoginFulfilled{Token: "token"},
		ProfileFulfilled{User: entity.User{ID: 1, Name: "Ada"}, Addresses: []entity.Address{home()}},
		SearchRadiusSet{RadiusKm: 5},
		ProximityPending{Seq: 3},
		ProximityFulfilled{Seq: 3, Restaurants: []entity.Restaurant{{ID: 1}}},
		FavoritesFulfilled{RestaurantIDs: []int64{1}},
		FulfillmentModeSet{Mode: ModeDelivery},
		CartItemMerged{Item: entity.CartItem{ListingID: 1, RestaurantID: 1, Count: 2}},
		StatsFulfilled{Stats: entity.Stats{MoneySaved: decimal.NewFromInt(12)}},
		RankingsFulfilled{Rankings: []entity.Rank{own}, Own: &own},
		ActiveOrdersFulfilled{Purchases: []entity.Purchase{{ID: 1}}},
	)
	require.NotEqual(t, InitialState(), s)

	s = Reduce(s, Logout{})

	assert.Equal(t, InitialState(), s)
	assert.Empty(t, s.User.Token)
}

func TestUser_EmailUpdatedResetsVerification(t *testing.T) {
	s := reduceAll(InitialState(),
		ProfileFulfilled{User: entity.User{ID: 1, Email: "old@example.com", EmailVerified: true}},
		ProfileUpdatePending{},
		EmailUpdated{Email: "new@example.com"},
	)

	assert.Equal(t, "new@example.com", s.User.Profile.Data.Email)
	assert.False(t, s.User.Profile.Data.EmailVerified)
	assert.False(t, s.User.Update.Loading)
}
