package model

import "time"

// AddressModel mirrors the 'addresses' table. UserID references users.id.
type AddressModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	UserID       int64  `gorm:"index;not null"`
	Title        string `gorm:"type:varchar(100);not null"`
	Street       string `gorm:"type:varchar(255);not null"`
	Neighborhood string `gorm:"type:varchar(100)"`
	District     string `gorm:"type:varchar(100)"`
	Province     string `gorm:"type:varchar(100)"`
	Country      string `gorm:"type:varchar(100)"`
	PostalCode   string `gorm:"type:varchar(20)"`
	ApartmentNo  string `gorm:"type:varchar(20)"`
	DoorNo       string `gorm:"type:varchar(20)"`
	Latitude     float64
	Longitude    float64
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
