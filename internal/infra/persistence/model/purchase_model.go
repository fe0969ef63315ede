package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseModel mirrors the 'purchases' table. One row per ordered cart line.
type PurchaseModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	UserID          int64           `gorm:"index;not null"`
	RestaurantID    int64           `gorm:"index;not null"`
	ListingID       int64           `gorm:"not null"`
	ListingTitle    string          `gorm:"type:varchar(150)"`
	Quantity        int             `gorm:"not null"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SavedAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status          string          `gorm:"type:varchar(16);index;not null"`
	IsDelivery      bool
	DeliveryAddress string `gorm:"type:text"`
	DeliveryNotes   string `gorm:"type:text"`
	PickupNotes     string `gorm:"type:text"`
	CompletionImage string `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
