package store

import (
	"slices"

	"freshdeal/internal/domain/entity"
)

// CartState owns the cart lines. All lines share one restaurant.
type CartState struct {
	Items Remote[[]entity.CartItem]
}

func initialCartState() CartState {
	return CartState{Items: idleRemote[[]entity.CartItem](nil)}
}

// RestaurantID returns the restaurant of the cart, false when the cart is empty.
func (s CartState) RestaurantID() (int64, bool) {
	if len(s.Items.Data) == 0 {
		return 0, false
	}

	return s.Items.Data[0].RestaurantID, true
}

// Count returns the count of the line for listingID, or 0.
func (s CartState) Count(listingID int64) int {
	for _, item := range s.Items.Data {
		if item.ListingID == listingID {
			return item.Count
		}
	}

	return 0
}

func (s CartState) index(listingID int64) int {
	return slices.IndexFunc(s.Items.Data, func(i entity.CartItem) bool { return i.ListingID == listingID })
}

func reduceCart(s CartState, action Action) CartState {
	switch a := action.(type) {
	case Logout:
		return initialCartState()

	case CartPending:
		s.Items = s.Items.pending()

		return s

	case CartFulfilled:
		s.Items = s.Items.fulfilled(slices.Clone(a.Items))

		return s

	case CartRejected:
		s.Items = s.Items.rejected(a.Message)

		return s

	case CartItemMerged:
		items := slices.Clone(s.Items.Data)
		i := s.index(a.Item.ListingID)
		switch {
		case i >= 0 && a.Item.Count <= 0:
			items = slices.Delete(items, i, i+1)
		case i >= 0:
			merged := a.Item
			if merged.RestaurantID == 0 {
				merged.RestaurantID = items[i].RestaurantID
			}
			if merged.Title == "" {
				merged.Title = items[i].Title
			}
			items[i] = merged
		case a.Item.Count > 0:
			items = append(items, a.Item)
		}
		s.Items = s.Items.fulfilled(items)

		return s

	case CartItemRemoved:
		items := slices.DeleteFunc(slices.Clone(s.Items.Data), func(i entity.CartItem) bool { return i.ListingID == a.ListingID })
		s.Items = s.Items.fulfilled(items)

		return s

	case CartCleared, OrderCreated:
		s.Items = s.Items.fulfilled(nil)

		return s

	default:
		return s
	}
}
