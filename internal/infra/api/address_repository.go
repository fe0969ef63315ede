package api

import (
	"context"
	"net/http"
	"net/url"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/infra/api/dto"
	"freshdeal/internal/infra/gateway"
)

type addressRepository struct {
	client Requester
}

// NewAddressRepository creates a new address repository.
func NewAddressRepository(client Requester) repository.AddressRepository {
	return &addressRepository{client: client}
}

func (r *addressRepository) AddAddress(ctx context.Context, token string, address entity.Address) (*entity.Address, error) {
	var resp dto.AddressResponse
	err := r.client.Do(ctx, gateway.Request{
		Operation: "addAddress",
		Method:    http.MethodPost,
		Path:      "/user/addresses",
		Body:      dto.FromAddress(address),
		Token:     token,
	}, &resp)
	if err != nil {
		return nil, err
	}

	confirmed := resp.Address.ToEntity()

	return &confirmed, nil
}

func (r *addressRepository) RemoveAddress(ctx context.Context, token, addressID string) error {
	return r.client.Do(ctx, gateway.Request{
		Operation: "removeAddress",
		Method:    http.MethodDelete,
		Path:      "/user/addresses/" + url.PathEscape(addressID),
		Token:     token,
	}, nil)
}
