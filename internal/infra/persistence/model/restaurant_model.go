package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RestaurantModel mirrors the 'restaurants' table. OwnerID references users.id.
type RestaurantModel struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	OwnerID             int64  `gorm:"index;not null"`
	Name                string `gorm:"type:varchar(150);not null"`
	Description         string `gorm:"type:text"`
	Category            string `gorm:"type:varchar(50)"`
	Latitude            float64
	Longitude           float64
	WorkingDays         string `gorm:"type:varchar(100)"` // comma separated
	WorkingHoursStart   string `gorm:"type:varchar(5)"`
	WorkingHoursEnd     string `gorm:"type:varchar(5)"`
	ImageURL            string `gorm:"type:varchar(255)"`
	Pickup              bool
	Delivery            bool
	MaxDeliveryDistance *float64
	DeliveryFee         decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	MinOrderAmount      decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	RatingSum           int
	RatingCount         int
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Listings []ListingModel `gorm:"foreignKey:RestaurantID"`
	Comments []CommentModel `gorm:"foreignKey:RestaurantID"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// ListingModel mirrors the 'listings' table. Count is the remaining stock.
type ListingModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	RestaurantID  int64           `gorm:"index;not null"`
	Title         string          `gorm:"type:varchar(150);not null"`
	Description   string          `gorm:"type:text"`
	ImageURL      string          `gorm:"type:varchar(255)"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PickupPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DeliveryPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FreshScore    float64
	ConsumeWithin int
	Count         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}

// CommentModel mirrors the 'comments' table. One review per purchase.
type CommentModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64  `gorm:"index;not null"`
	UserID       int64  `gorm:"index;not null"`
	PurchaseID   int64  `gorm:"uniqueIndex;not null"`
	Comment      string `gorm:"type:text"`
	Rating       int
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
