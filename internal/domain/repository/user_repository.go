package repository

import (
	"context"

	"freshdeal/internal/domain/entity"
)

// Credentials identifies a user at login. Either Email or PhoneNumber is set.
type Credentials struct {
	Email       string
	PhoneNumber string
	Password    string
}

// Registration carries the fields of a new account.
type Registration struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
	Role        string
}

// Profile is the user record together with its saved addresses.
type Profile struct {
	User      entity.User
	Addresses []entity.Address
}

// UserRepository defines the account endpoints of the backend.
type UserRepository interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, credentials Credentials) (string, error)

	// Register creates a new account.
	Register(ctx context.Context, registration Registration) error

	// FetchProfile retrieves the user together with the address list.
	FetchProfile(ctx context.Context, token string) (*Profile, error)

	UpdateUsername(ctx context.Context, token, username string) error
	UpdateEmail(ctx context.Context, token, oldEmail, newEmail string) error
	UpdatePassword(ctx context.Context, token, oldPassword, newPassword string) error

	// FetchAchievements lists locked and unlocked achievements.
	FetchAchievements(ctx context.Context, token string) ([]entity.Achievement, error)

	// FetchRankings returns the leaderboard and the caller's own rank, nil when unranked.
	FetchRankings(ctx context.Context, token string) ([]entity.Rank, *entity.Rank, error)

	// FetchStats returns the gamification totals.
	FetchStats(ctx context.Context, token string) (*entity.Stats, error)

	// Favorites live under the user resource.
	FetchFavorites(ctx context.Context, token string) ([]int64, error)
	AddFavorite(ctx context.Context, token string, restaurantID int64) error
	RemoveFavorite(ctx context.Context, token string, restaurantID int64) error
}
