package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "freshdeal/internal/delivery/context"
	"freshdeal/internal/delivery/http/response"
	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/api/dto"
	"freshdeal/internal/infra/persistence/stubdb"

	"github.com/labstack/echo/v4"
)

const defaultPerPage = 10

// PurchaseHandler serves order creation, history and restaurant decisions.
type PurchaseHandler struct {
	backend *stubdb.Backend
	logger  *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler, injected by Fx.
func NewPurchaseHandler(backend *stubdb.Backend, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{backend: backend, logger: logger}
}

// Create turns the caller's cart into pending orders.
func (h *PurchaseHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	purchases, err := h.backend.CreateOrder(c.Request().Context(), userID, repository.OrderRequest{
		IsDelivery:      req.IsDelivery,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryNotes:   req.DeliveryNotes,
		PickupNotes:     req.PickupNotes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Order created",
		slog.Int64("user_id", userID),
		slog.Int("purchases", len(purchases)),
		slog.Bool("delivery", req.IsDelivery),
	)

	return response.Created(c, dto.PurchasesResponse{Purchases: toPurchaseDTOs(purchases)})
}

func (h *PurchaseHandler) Active(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	purchases, err := h.backend.ActivePurchases(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.PurchasesResponse{Purchases: toPurchaseDTOs(purchases)})
}

// Previous pages through finished orders with page and per_page query parameters.
func (h *PurchaseHandler) Previous(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	page, perPage := 1, defaultPerPage
	if err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("per_page", &perPage).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pagination")
	}

	result, err := h.backend.PreviousPurchases(c.Request().Context(), userID, page, perPage)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.PreviousPurchasesResponse{
		Purchases: toPurchaseDTOs(result.Purchases),
		Pagination: dto.Pagination{
			CurrentPage: result.Page,
			PerPage:     result.PerPage,
			Total:       result.Total,
			HasNext:     result.HasNext,
		},
	})
}

func (h *PurchaseHandler) Get(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	purchaseID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	purchase, err := h.backend.Purchase(c.Request().Context(), userID, purchaseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.PurchaseResponse{Purchase: dto.FromPurchase(*purchase)})
}

// Respond records the restaurant's accept or reject decision.
func (h *PurchaseHandler) Respond(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	purchaseID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ResponseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	purchase, err := h.backend.Respond(c.Request().Context(), userID, purchaseID, entity.Decision(req.Action))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.PurchaseResponse{Purchase: dto.FromPurchase(*purchase)})
}

func (h *PurchaseHandler) HasRating(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	purchaseID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	rated, err := h.backend.HasRating(c.Request().Context(), userID, purchaseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.HasRatingResponse{HasRating: rated})
}

func toPurchaseDTOs(purchases []entity.Purchase) []dto.Purchase {
	out := make([]dto.Purchase, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, dto.FromPurchase(p))
	}

	return out
}
