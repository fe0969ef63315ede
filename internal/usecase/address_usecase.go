package usecase

import (
	"context"

	"freshdeal/internal/domain/entity"

	"github.com/paulmach/orb"
)

// AddAddressInput describes a new delivery address.
type AddAddressInput struct {
	Title        string `validate:"required"`
	Street       string `validate:"required"`
	Neighborhood string
	District     string
	Province     string
	Country      string
	PostalCode   string
	ApartmentNo  string
	DoorNo       string
	Latitude     float64 `validate:"latitude"`
	Longitude    float64 `validate:"longitude"`
}

// AddressUsecase defines the address operations.
type AddressUsecase interface {
	// AddAddress inserts the address optimistically, then confirms or rolls it back.
	AddAddress(ctx context.Context, input AddAddressInput) (*entity.Address, error)

	RemoveAddress(ctx context.Context, addressID string) error

	// SelectAddress makes addressID the active address. The selection listener refetches nearby restaurants.
	SelectAddress(addressID string) error

	// SetSearchRadius changes the proximity radius used by the next fetch.
	SetSearchRadius(radiusKm float64) error
}

// AddressLookup turns map drags into address drafts.
type AddressLookup interface {
	// Drag reports a new pin position. Rapid drags are coalesced into one lookup.
	Drag(point orb.Point)

	// Close cancels a pending lookup.
	Close()
}
