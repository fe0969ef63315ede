package api

import (
	"context"
	"net/http"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/infra/api/dto"
	"freshdeal/internal/infra/gateway"
)

const (
	loginTypeEmail = "email"
	loginTypePhone = "phone_number"
)

type userRepository struct {
	client Requester
}

// NewUserRepository creates a new user repository.
func NewUserRepository(client Requester) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) Login(ctx context.Context, credentials repository.Credentials) (string, error) {
	body := dto.LoginRequest{
		Email:       credentials.Email,
		PhoneNumber: credentials.PhoneNumber,
		Password:    credentials.Password,
		LoginType:   loginTypeEmail,
	}
	if credentials.Email == "" {
		body.LoginType = loginTypePhone
	}

	var resp dto.LoginResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "login",
		Method:    http.MethodPost,
		Path:      "/login",
		Body:      body,
	}, &resp); err != nil {
		return "", err
	}

	return resp.Token, nil
}

func (r *userRepository) Register(ctx context.Context, registration repository.Registration) error {
	return r.client.Do(ctx, gateway.Request{
		Operation: "register",
		Method:    http.MethodPost,
		Path:      "/register",
		Body: dto.RegisterRequest{
			Name:        registration.Name,
			Email:       registration.Email,
			PhoneNumber: registration.PhoneNumber,
			Password:    registration.Password,
			Role:        registration.Role,
		},
	}, nil)
}

func (r *userRepository) FetchProfile(ctx context.Context, token string) (*repository.Profile, error) {
	var resp dto.UserDataResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getUserData",
		Method:    http.MethodGet,
		Path:      "/user/data",
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	return &repository.Profile{
		User:      resp.User.ToEntity(),
		Addresses: dto.ToAddresses(resp.UserAddressList),
	}, nil
}

func (r *userRepository) UpdateUsername(ctx context.Context, token, username string) error {
	return r.client.Do(ctx, gateway.Request{
		Operation: "updateUsername",
		Method:    http.MethodPut,
		Path:      "/user/username",
		Body:      dto.UsernameRequest{Username: username},
		Token:     token,
	}, nil)
}

func (r *userRepository) UpdateEmail(ctx context.Context, token, oldEmail, newEmail string) error {
	return r.client.Do(ctx, gateway.Request{
		Operation: "updateEmail",
		Method:    http.MethodPut,
		Path:      "/user/email",
		Body:      dto.EmailRequest{OldEmail: oldEmail, NewEmail: newEmail},
		Token:     token,
	}, nil)
}

func (r *userRepository) UpdatePassword(ctx context.Context, token, oldPassword, newPassword string) error {
	return r.client.Do(ctx, gateway.Request{
		Operation: "updatePassword",
		Method:    http.MethodPut,
		Path:      "/user/password",
		Body:      dto.PasswordRequest{OldPassword: oldPassword, NewPassword: newPassword},
		Token:     token,
	}, nil)
}

func (r *userRepository) FetchAchievements(ctx context.Context, token string) ([]entity.Achievement, error) {
	var resp dto.AchievementsResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getAchievements",
		Method:    http.MethodGet,
		Path:      "/user/achievements",
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	achievements := make([]entity.Achievement, 0, len(resp.Achievements))
	for _, a := range resp.Achievements {
		achievements = append(achievements, a.ToEntity())
	}

	return achievements, nil
}

func (r *userRepository) FetchRankings(ctx context.Context, token string) ([]entity.Rank, *entity.Rank, error) {
	var resp dto.RankingsResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getRankings",
		Method:    http.MethodGet,
		Path:      "/user/rankings",
		Token:     token,
	}, &resp); err != nil {
		return nil, nil, err
	}

	rankings := make([]entity.Rank, 0, len(resp.Rankings))
	for _, rank := range resp.Rankings {
		rankings = append(rankings, rank.ToEntity())
	}

	var own *entity.Rank
	if resp.UserRank != nil {
		rank := resp.UserRank.ToEntity()
		own = &rank
	}

	return rankings, own, nil
}

func (r *userRepository) FetchStats(ctx context.Context, token string) (*entity.Stats, error) {
	var resp dto.Stats
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getStats",
		Method:    http.MethodGet,
		Path:      "/user/stats",
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	stats := resp.ToEntity()

	return &stats, nil
}

func (r *userRepository) FetchFavorites(ctx context.Context, token string) ([]int64, error) {
	var resp dto.FavoritesResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getFavorites",
		Method:    http.MethodGet,
		Path:      "/user/favorites",
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	if resp.Favorites == nil {
		return []int64{}, nil
	}

	return resp.Favorites, nil
}

func (r *userRepository) AddFavorite(ctx context.Context, token string, restaurantID int64) error {
	return r.client.Do(ctx, gateway.Request{
		Operation: "addFavorite",
		Method:    http.MethodPost,
		Path:      "/user/favorites",
		Body:      dto.FavoriteRequest{RestaurantID: restaurantID},
		Token:     token,
	}, nil)
}

func (r *userRepository) RemoveFavorite(ctx context.Context, token string, restaurantID int64) error {
	return r.client.Do(ctx, gateway.Request{
		Operation: "removeFavorite",
		Method:    http.MethodDelete,
		Path:      "/user/favorites",
		Body:      dto.FavoriteRequest{RestaurantID: restaurantID},
		Token:     token,
	}, nil)
}
