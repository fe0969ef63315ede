// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"freshdeal/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the credentials of a login. Either Email or PhoneNumber is set.
type LoginInput struct {
	Email       string `validate:"required_without=PhoneNumber"`
	PhoneNumber string `validate:"required_without=Email"`
	Password    string `validate:"required"`
}

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	PhoneNumber string
	Password    string `validate:"required,min=6"`
	Role        string
}

// UpdateEmailInput changes the login email.
type UpdateEmailInput struct {
	OldEmail string `validate:"required,email"`
	NewEmail string `validate:"required,email,nefield=OldEmail"`
}

// UpdatePasswordInput changes the password.
type UpdatePasswordInput struct {
	OldPassword string `validate:"required"`
	NewPassword string `validate:"required,min=6,nefield=OldPassword"`
}

// UserUsecase defines the account operations.
type UserUsecase interface {
	Login(ctx context.Context, input LoginInput) error
	Register(ctx context.Context, input RegisterInput) error

	// Logout clears the token and resets every slice exactly once.
	Logout(ctx context.Context) error

	// RestoreSession loads a token kept from an earlier run. It reports whether one was found.
	RestoreSession(ctx context.Context) (bool, error)

	// FetchUserData loads the profile and the saved addresses.
	FetchUserData(ctx context.Context) (*entity.User, error)

	UpdateUsername(ctx context.Context, username string) error
	UpdateEmail(ctx context.Context, input UpdateEmailInput) error
	UpdatePassword(ctx context.Context, input UpdatePasswordInput) error

	FetchAchievements(ctx context.Context) ([]entity.Achievement, error)
	FetchRankings(ctx context.Context) ([]entity.Rank, error)
	FetchStats(ctx context.Context) (*entity.Stats, error)
}
