// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account roles.
const (
	RoleCustomer   = "customer"
	RoleRestaurant = "restaurant"
)

// User is the authenticated account.
type User struct {
	ID            int64
	Name          string
	Email         string
	PhoneNumber   string
	Role          string
	EmailVerified bool
}

// Stats holds the gamification totals of a user.
type Stats struct {
	MoneySaved    decimal.Decimal
	FoodSaved     decimal.Decimal // kilograms
	TotalDiscount decimal.Decimal
}

// Achievement is a badge a user has or can unlock.
type Achievement struct {
	ID                 int64
	Name               string
	Description        string
	Type               string
	Unlocked           bool
	EarnedAt           *time.Time
	Threshold          *int
	DiscountPercentage *int
}

// Rank is one row of the leaderboard.
type Rank struct {
	UserID        int64
	UserName      string
	Rank          int
	TotalDiscount decimal.Decimal
}
