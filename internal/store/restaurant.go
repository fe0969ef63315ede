package store

import (
	"slices"

	"freshdeal/internal/domain/entity"
)

// FulfillmentMode selects which listing price applies.
type FulfillmentMode string

const (
	ModePickup   FulfillmentMode = "pickup"
	ModeDelivery FulfillmentMode = "delivery"
)

// RestaurantState owns the restaurants around the selected address and the
// restaurant currently opened.
type RestaurantState struct {
	Proximity Remote[[]entity.Restaurant]
	// LatestFetchSeq is the newest proximity fetch dispatched.
	LatestFetchSeq uint64
	Favorites      Remote[[]int64]

	Detail             Remote[*entity.Restaurant]
	DetailRestaurantID int64

	Listings             Remote[[]entity.Listing]
	ListingsRestaurantID int64
	SelectedListing      *entity.Listing

	Mode FulfillmentMode
}

func initialRestaurantState() RestaurantState {
	return RestaurantState{
		Proximity: idleRemote[[]entity.Restaurant](nil),
		Favorites: idleRemote[[]int64](nil),
		Detail:    idleRemote[*entity.Restaurant](nil),
		Listings:  idleRemote[[]entity.Listing](nil),
		Mode:      ModePickup,
	}
}

// IsFavorite reports membership in the favorite id set.
func (s RestaurantState) IsFavorite(restaurantID int64) bool {
	return slices.Contains(s.Favorites.Data, restaurantID)
}

// Restaurant looks up a restaurant by id in the proximity results, then the opened detail.
func (s RestaurantState) Restaurant(restaurantID int64) (entity.Restaurant, bool) {
	i := slices.IndexFunc(s.Proximity.Data, func(r entity.Restaurant) bool { return r.ID == restaurantID })
	if i >= 0 {
		return s.Proximity.Data[i], true
	}
	if s.Detail.Data != nil && s.Detail.Data.ID == restaurantID {
		return *s.Detail.Data, true
	}

	return entity.Restaurant{}, false
}

// Listing looks up a listing of the opened restaurant.
func (s RestaurantState) Listing(listingID int64) (entity.Listing, bool) {
	i := slices.IndexFunc(s.Listings.Data, func(l entity.Listing) bool { return l.ID == listingID })
	if i < 0 {
		return entity.Listing{}, false
	}

	return s.Listings.Data[i], true
}

func (s RestaurantState) staleFetch(seq uint64, guarded bool) bool {
	return guarded && seq < s.LatestFetchSeq
}

func reduceRestaurant(s RestaurantState, action Action) RestaurantState {
	switch a := action.(type) {
	case Logout:
		return initialRestaurantState()

	case ProximityPending:
		s.LatestFetchSeq = max(s.LatestFetchSeq, a.Seq)
		s.Proximity = s.Proximity.pending()

		return s

	case ProximityFulfilled:
		if s.staleFetch(a.Seq, a.Guarded) {
			return s
		}
		s.Proximity = s.Proximity.fulfilled(slices.Clone(a.Restaurants))

		return s

	case ProximityRejected:
		if s.staleFetch(a.Seq, a.Guarded) {
			return s
		}
		s.Proximity = s.Proximity.rejected(a.Message)

		return s

	case FavoritesPending:
		s.Favorites = s.Favorites.pending()

		return s

	case FavoritesFulfilled:
		s.Favorites = s.Favorites.fulfilled(slices.Clone(a.RestaurantIDs))

		return s

	case FavoritesRejected:
		s.Favorites = s.Favorites.rejected(a.Message)

		return s

	case FavoriteToggled:
		ids := slices.DeleteFunc(slices.Clone(s.Favorites.Data), func(id int64) bool { return id == a.RestaurantID })
		if a.Favorite {
			ids = append(ids, a.RestaurantID)
		}
		s.Favorites.Data = ids

		return s

	case RestaurantDetailPending:
		s.DetailRestaurantID = a.RestaurantID
		s.Detail = s.Detail.pending()

		return s

	case RestaurantDetailFulfilled:
		if a.Restaurant.ID != s.DetailRestaurantID {
			return s
		}
		restaurant := a.Restaurant
		s.Detail = s.Detail.fulfilled(&restaurant)

		return s

	case RestaurantDetailRejected:
		if a.RestaurantID != s.DetailRestaurantID {
			return s
		}
		s.Detail = s.Detail.rejected(a.Message)

		return s

	case ListingsPending:
		if a.RestaurantID != s.ListingsRestaurantID {
			s.Listings.Data = nil
		}
		s.ListingsRestaurantID = a.RestaurantID
		s.Listings = s.Listings.pending()

		return s

	case ListingsFulfilled:
		if a.RestaurantID != s.ListingsRestaurantID {
			return s
		}
		s.Listings = s.Listings.fulfilled(slices.Clone(a.Listings))

		return s

	case ListingsRejected:
		if a.RestaurantID != s.ListingsRestaurantID {
			return s
		}
		s.Listings = s.Listings.rejected(a.Message)

		return s

	case ListingSelected:
		listing := a.Listing
		s.SelectedListing = &listing

		return s

	case ListingCleared:
		s.SelectedListing = nil

		return s

	case FulfillmentModeSet:
		if a.Mode == ModePickup || a.Mode == ModeDelivery {
			s.Mode = a.Mode
		}

		return s

	default:
		return s
	}
}
