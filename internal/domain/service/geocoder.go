package service

import (
	"context"

	"freshdeal/internal/domain/entity"

	"github.com/paulmach/orb"
)

// Geocoder resolves coordinates into a postal address.
type Geocoder interface {
	// Reverse returns an address draft for the point; ID and Title are left empty.
	Reverse(ctx context.Context, point orb.Point) (*entity.Address, error)
}
