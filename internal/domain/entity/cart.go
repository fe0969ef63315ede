package entity

// CartItem is one cart line. A cart never mixes restaurants.
type CartItem struct {
	ListingID    int64
	RestaurantID int64
	Count        int
	Title        string
}
