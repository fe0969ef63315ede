package handler

import (
	"net/http"

	"freshdeal/internal/delivery/http/response"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/api/dto"
	"freshdeal/internal/infra/persistence/stubdb"

	"github.com/labstack/echo/v4"
)

// CartHandler serves the single-restaurant cart of the caller.
type CartHandler struct {
	backend *stubdb.Backend
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(backend *stubdb.Backend) *CartHandler {
	return &CartHandler{backend: backend}
}

func (h *CartHandler) Get(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.backend.Cart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]dto.CartItem, 0, len(items))
	for _, item := range items {
		out = append(out, dto.FromCartItem(item))
	}

	return response.OK(c, dto.CartResponse{Cart: out})
}

// Add puts a listing into the cart, replacing the count of an existing line.
func (h *CartHandler) Add(c echo.Context) error {
	return h.put(c, false)
}

// Update sets the count of a line already in the cart. Zero removes it.
func (h *CartHandler) Update(c echo.Context) error {
	return h.put(c, true)
}

func (h *CartHandler) put(c echo.Context, mustExist bool) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CartItem
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.backend.PutCartItem(c.Request().Context(), userID, req.ListingID, req.Count, mustExist)
	if err != nil {
		return errors.WithStack(err)
	}
	if item == nil {
		return response.OK(c, dto.CartItemResponse{Item: dto.CartItem{ListingID: req.ListingID}})
	}

	return response.OK(c, dto.CartItemResponse{Item: dto.FromCartItem(*item)})
}

func (h *CartHandler) Remove(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	listingID, err := pathID(c, "listing_id")
	if err != nil {
		return err
	}

	if err := h.backend.RemoveCartItem(c.Request().Context(), userID, listingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Item removed from cart")
}

func (h *CartHandler) Reset(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.backend.ResetCart(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Cart cleared")
}
