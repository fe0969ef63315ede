package handler

import (
	"net/http"

	"freshdeal/internal/delivery/http/response"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/api/dto"
	"freshdeal/internal/infra/persistence/stubdb"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the account, address, gamification and favorite routes.
type UserHandler struct {
	backend *stubdb.Backend
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(backend *stubdb.Backend) *UserHandler {
	return &UserHandler{backend: backend}
}

// GetData returns the account with its address list.
func (h *UserHandler) GetData(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.backend.Profile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	addresses := make([]dto.Address, 0, len(profile.Addresses))
	for _, a := range profile.Addresses {
		addresses = append(addresses, dto.FromAddress(a))
	}

	return response.OK(c, dto.UserDataResponse{
		User:            dto.FromUser(profile.User),
		UserAddressList: addresses,
	})
}

func (h *UserHandler) UpdateUsername(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.UsernameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.backend.UpdateUsername(c.Request().Context(), userID, req.Username); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Username updated")
}

func (h *UserHandler) UpdateEmail(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.EmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.backend.UpdateEmail(c.Request().Context(), userID, req.OldEmail, req.NewEmail); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Email updated, please verify the new address")
}

func (h *UserHandler) UpdatePassword(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.PasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.backend.UpdatePassword(c.Request().Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Password updated")
}

// AddAddress stores an address and answers with its server id.
func (h *UserHandler) AddAddress(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.Address
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.backend.AddAddress(c.Request().Context(), userID, req.ToEntity())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, dto.AddressResponse{Address: dto.FromAddress(address)})
}

func (h *UserHandler) RemoveAddress(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.backend.RemoveAddress(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Address removed")
}

func (h *UserHandler) Achievements(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	achievements, err := h.backend.Achievements(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]dto.Achievement, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, dto.FromAchievement(a))
	}

	return response.OK(c, dto.AchievementsResponse{Achievements: out})
}

// Rankings returns the leaderboard with the caller's own row when ranked.
func (h *UserHandler) Rankings(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	ranks, own, err := h.backend.Rankings(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := dto.RankingsResponse{Rankings: make([]dto.Rank, 0, len(ranks))}
	for _, r := range ranks {
		resp.Rankings = append(resp.Rankings, dto.FromRank(r))
	}
	if own != nil {
		row := dto.FromRank(*own)
		resp.UserRank = &row
	}

	return response.OK(c, resp)
}

func (h *UserHandler) Stats(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	stats, err := h.backend.Stats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.FromStats(*stats))
}

func (h *UserHandler) Favorites(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	ids, err := h.backend.Favorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.FavoritesResponse{Favorites: ids})
}

func (h *UserHandler) AddFavorite(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.FavoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.backend.AddFavorite(c.Request().Context(), userID, req.RestaurantID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Added to favorites")
}

func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.FavoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.backend.RemoveFavorite(c.Request().Context(), userID, req.RestaurantID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Removed from favorites")
}
