package store

import (
	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"
)

// Action is an operation outcome. The set is closed: only this package declares actions.
type Action interface {
	isAction()
}

// Logout resets every slice to its initial state.
type Logout struct{}

// Address actions.
type (
	// AddressAdded applies a tentative address and selects it.
	AddressAdded struct{ Address entity.Address }
	// AddressConfirmed replaces the tentative address in place with the server record.
	AddressConfirmed struct {
		TempID  string
		Address entity.Address
	}
	// AddressRolledBack removes exactly the tentative address and restores the previous selection.
	AddressRolledBack struct {
		TempID             string
		PreviousSelectedID string
		Message            string
	}
	AddressRemovePending  struct{ ID string }
	AddressRemoved        struct{ ID string }
	AddressRemoveRejected struct {
		ID      string
		Message string
	}
	AddressSelected struct{ ID string }
	SearchRadiusSet struct{ RadiusKm float64 }
)

// Restaurant actions. Proximity actions carry the fetch sequence number.
type (
	ProximityPending   struct{ Seq uint64 }
	ProximityFulfilled struct {
		Seq         uint64
		Restaurants []entity.Restaurant
		Guarded     bool // drop when a newer fetch was dispatched
	}
	ProximityRejected struct {
		Seq     uint64
		Message string
		Guarded bool
	}
	FavoritesPending   struct{}
	FavoritesFulfilled struct{ RestaurantIDs []int64 }
	FavoritesRejected  struct{ Message string }
	FavoriteToggled    struct {
		RestaurantID int64
		Favorite     bool
	}
	RestaurantDetailPending   struct{ RestaurantID int64 }
	RestaurantDetailFulfilled struct{ Restaurant entity.Restaurant }
	RestaurantDetailRejected  struct {
		RestaurantID int64
		Message      string
	}
	ListingsPending   struct{ RestaurantID int64 }
	ListingsFulfilled struct {
		RestaurantID int64
		Listings     []entity.Listing
	}
	ListingsRejected struct {
		RestaurantID int64
		Message      string
	}
	ListingSelected    struct{ Listing entity.Listing }
	ListingCleared     struct{}
	FulfillmentModeSet struct{ Mode FulfillmentMode }
)

// Cart actions.
type (
	CartPending   struct{}
	CartFulfilled struct{ Items []entity.CartItem }
	CartRejected  struct{ Message string }
	// CartItemMerged inserts the server-confirmed line or replaces the count of
	// the existing one. A count of zero or less removes the line.
	CartItemMerged  struct{ Item entity.CartItem }
	CartItemRemoved struct{ ListingID int64 }
	CartCleared     struct{}
)

// User actions.
type (
	LoginPending      struct{}
	LoginFulfilled    struct{ Token string }
	LoginRejected     struct{ Message string }
	RegisterPending   struct{}
	RegisterFulfilled struct{}
	RegisterRejected  struct{ Message string }
	// TokenRestored loads a token kept from an earlier run.
	TokenRestored    struct{ Token string }
	ProfilePending   struct{}
	ProfileFulfilled struct {
		User      entity.User
		Addresses []entity.Address
	}
	ProfileRejected       struct{ Message string }
	ProfileUpdatePending  struct{}
	ProfileUpdateRejected struct{ Message string }
	UsernameUpdated       struct{ Name string }
	EmailUpdated          struct{ Email string }
	PasswordUpdated       struct{}
	StatsPending          struct{}
	StatsFulfilled        struct{ Stats entity.Stats }
	StatsRejected         struct{ Message string }
	AchievementsPending   struct{}
	AchievementsFulfilled struct{ Achievements []entity.Achievement }
	AchievementsRejected  struct{ Message string }
	RankingsPending       struct{}
	RankingsFulfilled     struct {
		Rankings []entity.Rank
		Own      *entity.Rank
	}
	RankingsRejected struct{ Message string }
)

// Purchase actions.
type (
	OrderPending  struct{}
	OrderCreated  struct{ Purchases []entity.Purchase }
	OrderRejected struct{ Message string }
	// OrderResponded carries an order after a restaurant decision.
	OrderResponded          struct{ Purchase entity.Purchase }
	ActiveOrdersPending     struct{}
	ActiveOrdersFulfilled   struct{ Purchases []entity.Purchase }
	ActiveOrdersRejected    struct{ Message string }
	PreviousOrdersPending   struct{ Page int }
	PreviousOrdersFulfilled struct{ Page repository.PurchasePage }
	PreviousOrdersRejected  struct{ Message string }
	OrderDetailPending      struct{ PurchaseID int64 }
	OrderDetailFulfilled    struct{ Purchase entity.Purchase }
	OrderDetailRejected     struct {
		PurchaseID int64
		Message    string
	}
)

func (Logout) isAction() {}

func (AddressAdded) isAction()          {}
func (AddressConfirmed) isAction()      {}
func (AddressRolledBack) isAction()     {}
func (AddressRemovePending) isAction()  {}
func (AddressRemoved) isAction()        {}
func (AddressRemoveRejected) isAction() {}
func (AddressSelected) isAction()       {}
func (SearchRadiusSet) isAction()       {}

func (ProximityPending) isAction()          {}
func (ProximityFulfilled) isAction()        {}
func (ProximityRejected) isAction()         {}
func (FavoritesPending) isAction()          {}
func (FavoritesFulfilled) isAction()        {}
func (FavoritesRejected) isAction()         {}
func (FavoriteToggled) isAction()           {}
func (RestaurantDetailPending) isAction()   {}
func (RestaurantDetailFulfilled) isAction() {}
func (RestaurantDetailRejected) isAction()  {}
func (ListingsPending) isAction()           {}
func (ListingsFulfilled) isAction()         {}
func (ListingsRejected) isAction()          {}
func (ListingSelected) isAction()           {}
func (ListingCleared) isAction()            {}
func (FulfillmentModeSet) isAction()        {}

func (CartPending) isAction()     {}
func (CartFulfilled) isAction()   {}
func (CartRejected) isAction()    {}
func (CartItemMerged) isAction()  {}
func (CartItemRemoved) isAction() {}
func (CartCleared) isAction()     {}

func (LoginPending) isAction()          {}
func (LoginFulfilled) isAction()        {}
func (LoginRejected) isAction()         {}
func (RegisterPending) isAction()       {}
func (RegisterFulfilled) isAction()     {}
func (RegisterRejected) isAction()      {}
func (TokenRestored) isAction()         {}
func (ProfilePending) isAction()        {}
func (ProfileFulfilled) isAction()      {}
func (ProfileRejected) isAction()       {}
func (ProfileUpdatePending) isAction()  {}
func (ProfileUpdateRejected) isAction() {}
func (UsernameUpdated) isAction()       {}
func (EmailUpdated) isAction()          {}
func (PasswordUpdated) isAction()       {}
func (StatsPending) isAction()          {}
func (StatsFulfilled) isAction()        {}
func (StatsRejected) isAction()         {}
func (AchievementsPending) isAction()   {}
func (AchievementsFulfilled) isAction() {}
func (AchievementsRejected) isAction()  {}
func (RankingsPending) isAction()       {}
func (RankingsFulfilled) isAction()     {}
func (RankingsRejected) isAction()      {}

func (OrderPending) isAction()            {}
func (OrderCreated) isAction()            {}
func (OrderRejected) isAction()           {}
func (OrderResponded) isAction()          {}
func (ActiveOrdersPending) isAction()     {}
func (ActiveOrdersFulfilled) isAction()   {}
func (ActiveOrdersRejected) isAction()    {}
func (PreviousOrdersPending) isAction()   {}
func (PreviousOrdersFulfilled) isAction() {}
func (PreviousOrdersRejected) isAction()  {}
func (OrderDetailPending) isAction()      {}
func (OrderDetailFulfilled) isAction()    {}
func (OrderDetailRejected) isAction()     {}
