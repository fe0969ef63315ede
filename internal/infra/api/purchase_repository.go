package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/infra/api/dto"
	"freshdeal/internal/infra/gateway"
)

const purchasePath = "/purchase"

type purchaseRepository struct {
	client Requester
}

// NewPurchaseRepository creates a new purchase repository.
func NewPurchaseRepository(client Requester) repository.PurchaseRepository {
	return &purchaseRepository{client: client}
}

func (r *purchaseRepository) CreateOrder(ctx context.Context, token string, request repository.OrderRequest) ([]entity.Purchase, error) {
	var resp dto.PurchasesResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "createPurchaseOrder",
		Method:    http.MethodPost,
		Path:      purchasePath,
		Body: dto.CreateOrderRequest{
			IsDelivery:      request.IsDelivery,
			DeliveryAddress: request.DeliveryAddress,
			DeliveryNotes:   request.DeliveryNotes,
			PickupNotes:     request.PickupNotes,
		},
		Token: token,
	}, &resp); err != nil {
		return nil, err
	}

	return dto.ToPurchases(resp.Purchases), nil
}

func (r *purchaseRepository) FetchActive(ctx context.Context, token string) ([]entity.Purchase, error) {
	var resp dto.PurchasesResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getUserActiveOrders",
		Method:    http.MethodGet,
		Path:      purchasePath + "/active",
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	return dto.ToPurchases(resp.Purchases), nil
}

func (r *purchaseRepository) FetchPrevious(ctx context.Context, token string, page, perPage int) (*repository.PurchasePage, error) {
	var resp dto.PreviousPurchasesResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getUserPreviousOrders",
		Method:    http.MethodGet,
		Path:      purchasePath + "/previous",
		Query: url.Values{
			"page":     []string{strconv.Itoa(page)},
			"per_page": []string{strconv.Itoa(perPage)},
		},
		Token: token,
	}, &resp); err != nil {
		return nil, err
	}

	return &repository.PurchasePage{
		Purchases: dto.ToPurchases(resp.Purchases),
		Page:      resp.Pagination.CurrentPage,
		PerPage:   resp.Pagination.PerPage,
		Total:     resp.Pagination.Total,
		HasNext:   resp.Pagination.HasNext,
	}, nil
}

func (r *purchaseRepository) FetchDetail(ctx context.Context, token string, purchaseID int64) (*entity.Purchase, error) {
	var resp dto.PurchaseResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getOrderDetails",
		Method:    http.MethodGet,
		Path:      idPath(purchasePath, purchaseID),
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	purchase := resp.Purchase.ToEntity()

	return &purchase, nil
}

func (r *purchaseRepository) Respond(ctx context.Context, token string, purchaseID int64, decision entity.Decision) (*entity.Purchase, error) {
	var resp dto.PurchaseResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "handleRestaurantResponse",
		Method:    http.MethodPost,
		Path:      idPath(purchasePath, purchaseID, "response"),
		Body:      dto.ResponseRequest{Action: string(decision)},
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	purchase := resp.Purchase.ToEntity()

	return &purchase, nil
}

func (r *purchaseRepository) HasRating(ctx context.Context, token string, purchaseID int64) (bool, error) {
	var resp dto.HasRatingResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getPurchaseRatingStatus",
		Method:    http.MethodGet,
		Path:      idPath(purchasePath, purchaseID, "has-rating"),
		Token:     token,
	}, &resp); err != nil {
		return false, err
	}

	return resp.HasRating, nil
}
