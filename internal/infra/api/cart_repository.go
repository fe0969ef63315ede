package api

import (
	"context"
	"net/http"
	"strconv"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/infra/api/dto"
	"freshdeal/internal/infra/gateway"
)

const cartPath = "/cart"

type cartRepository struct {
	client Requester
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(client Requester) repository.CartRepository {
	return &cartRepository{client: client}
}

func (r *cartRepository) FetchCart(ctx context.Context, token string) ([]entity.CartItem, error) {
	var resp dto.CartResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getCart",
		Method:    http.MethodGet,
		Path:      cartPath,
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	items := make([]entity.CartItem, 0, len(resp.Cart))
	for _, item := range resp.Cart {
		items = append(items, item.ToEntity())
	}

	return items, nil
}

func (r *cartRepository) AddItem(ctx context.Context, token string, listingID int64, count int) (*entity.CartItem, error) {
	return r.writeItem(ctx, "addToCart", http.MethodPost, token, listingID, count)
}

func (r *cartRepository) UpdateItem(ctx context.Context, token string, listingID int64, count int) (*entity.CartItem, error) {
	return r.writeItem(ctx, "updateCart", http.MethodPut, token, listingID, count)
}

func (r *cartRepository) writeItem(ctx context.Context, operation, method, token string, listingID int64, count int) (*entity.CartItem, error) {
	var resp dto.CartItemResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: operation,
		Method:    method,
		Path:      cartPath,
		Body:      dto.CartItem{ListingID: listingID, Count: count},
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	item := resp.Item.ToEntity()

	return &item, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, token string, listingID int64) error {
	return r.client.Do(ctx, gateway.Request{
		Operation: "removeFromCart",
		Method:    http.MethodDelete,
		Path:      cartPath + "/" + strconv.FormatInt(listingID, 10),
		Token:     token,
	}, nil)
}

func (r *cartRepository) ResetCart(ctx context.Context, token string) error {
	return r.client.Do(ctx, gateway.Request{
		Operation: "resetCart",
		Method:    http.MethodPost,
		Path:      cartPath + "/reset",
		Token:     token,
	}, nil)
}
