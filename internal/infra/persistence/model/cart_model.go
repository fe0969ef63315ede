package model

import "time"

// CartItemModel mirrors the 'cart_items' table, one row per user and listing.
type CartItemModel struct {
	UserID       int64 `gorm:"primaryKey"`
	ListingID    int64 `gorm:"primaryKey"`
	RestaurantID int64 `gorm:"index;not null"`
	Count        int   `gorm:"not null"`
	UpdatedAt    time.Time

	Listing *ListingModel `gorm:"foreignKey:ListingID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
