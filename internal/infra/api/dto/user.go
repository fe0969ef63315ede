package dto

import (
	"time"

	"freshdeal/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// LoginRequest is the body of POST /login. Either Email or PhoneNumber is set.
type LoginRequest struct {
	Email       string `json:"email,omitempty" validate:"required_without=PhoneNumber"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"required_without=Email"`
	Password    string `json:"password" validate:"required"`
	LoginType   string `json:"login_type"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name        string `json:"name_surname" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role"`
}

// User is the wire form of the account.
type User struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"email_verified"`
}

// UserDataResponse is returned by GET /user/data.
type UserDataResponse struct {
	User            User      `json:"user_data"`
	UserAddressList []Address `json:"user_address_list"`
}

// UsernameRequest is the body of PUT /user/username.
type UsernameRequest struct {
	Username string `json:"username" validate:"required"`
}

// EmailRequest is the body of PUT /user/email.
type EmailRequest struct {
	OldEmail string `json:"old_email" validate:"required,email"`
	NewEmail string `json:"new_email" validate:"required,email"`
}

// PasswordRequest is the body of PUT /user/password.
type PasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Achievement is the wire form of a badge.
type Achievement struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Type               string     `json:"achievement_type"`
	Unlocked           bool       `json:"unlocked"`
	EarnedAt           *time.Time `json:"earned_at"`
	Threshold          *int       `json:"threshold,omitempty"`
	DiscountPercentage *int       `json:"discount_percentage,omitempty"`
}

// AchievementsResponse wraps the achievement list.
type AchievementsResponse struct {
	Achievements []Achievement `json:"achievements"`
}

// Rank is one leaderboard row.
type Rank struct {
	UserID        int64           `json:"user_id"`
	UserName      string          `json:"user_name"`
	Rank          int             `json:"rank"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
}

// RankingsResponse wraps the leaderboard and the caller's row.
type RankingsResponse struct {
	Rankings []Rank `json:"rankings"`
	UserRank *Rank  `json:"user_rank,omitempty"`
}

// Stats is the body of GET /user/stats.
type Stats struct {
	MoneySaved    decimal.Decimal `json:"money_saved"`
	FoodSaved     decimal.Decimal `json:"food_saved"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
}

// FavoriteRequest is the body of POST and DELETE /user/favorites.
type FavoriteRequest struct {
	RestaurantID int64 `json:"restaurant_id" validate:"required"`
}

// FavoritesResponse lists favorite restaurant ids.
type FavoritesResponse struct {
	Favorites []int64 `json:"favorites"`
}

// MessageResponse acknowledges an action.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FromUser maps an entity to its wire form.
func FromUser(u entity.User) User {
	return User{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		PhoneNumber:   u.PhoneNumber,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
	}
}

// ToEntity maps the server account.
func (u User) ToEntity() entity.User {
	return entity.User{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		PhoneNumber:   u.PhoneNumber,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
	}
}

// FromAchievement maps an entity to its wire form.
func FromAchievement(a entity.Achievement) Achievement {
	return Achievement(a)
}

// ToEntity maps a server achievement.
func (a Achievement) ToEntity() entity.Achievement {
	return entity.Achievement(a)
}

// FromRank maps an entity to its wire form.
func FromRank(r entity.Rank) Rank {
	return Rank(r)
}

// ToEntity maps a server rank row.
func (r Rank) ToEntity() entity.Rank {
	return entity.Rank(r)
}

// FromStats maps an entity to its wire form.
func FromStats(s entity.Stats) Stats {
	return Stats(s)
}

// ToEntity maps the server totals.
func (s Stats) ToEntity() entity.Stats {
	return entity.Stats(s)
}
