package store

// State is the whole client state.
type State struct {
	Address    AddressState
	Restaurant RestaurantState
	Cart       CartState
	User       UserState
	Purchase   PurchaseState
}

// InitialState returns the state of a fresh, logged-out client.
func InitialState() State {
	return State{
		Address:    initialAddressState(),
		Restaurant: initialRestaurantState(),
		Cart:       initialCartState(),
		User:       initialUserState(),
		Purchase:   initialPurchaseState(),
	}
}

// Reduce applies action to every slice. It never performs I/O and never fails;
// slices ignore actions they do not handle.
func Reduce(s State, action Action) State {
	if action == nil {
		return s
	}

	return State{
		Address:    reduceAddress(s.Address, action),
		Restaurant: reduceRestaurant(s.Restaurant, action),
		Cart:       reduceCart(s.Cart, action),
		User:       reduceUser(s.User, action),
		Purchase:   reducePurchase(s.Purchase, action),
	}
}
