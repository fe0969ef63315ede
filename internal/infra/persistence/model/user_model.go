// Package model holds the GORM models of the SQLite databases.
package model

import "time"

// UserModel mirrors the 'users' table of the development backend.
type UserModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(100);not null"`
	Email         string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PhoneNumber   string `gorm:"type:varchar(32);index"`
	Role          string `gorm:"type:varchar(32);not null"`
	PasswordHash  string `gorm:"type:varchar(255);not null"`
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Addresses []AddressModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// FavoriteModel mirrors the 'favorites' join table.
type FavoriteModel struct {
	UserID       int64 `gorm:"primaryKey"`
	RestaurantID int64 `gorm:"primaryKey"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
