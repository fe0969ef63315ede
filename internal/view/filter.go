// Package view derives what a screen renders from the store state. Every
// function is pure and safe to recompute on each state change.
package view

import (
	"slices"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/store"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Under30MaxKm is the distance assumed reachable within 30 minutes.
const Under30MaxKm = 3.0

// FilterID names one of the home screen filters.
type FilterID string

const (
	FilterPickup   FilterID = "pickup"
	FilterDelivery FilterID = "delivery"
	FilterUnder30  FilterID = "under30"
)

// Filters is the active restaurant filter set. Pickup and Delivery are never both false.
type Filters struct {
	Pickup   bool
	Delivery bool
	Under30  bool
}

// DefaultFilters is the resting state: pickup only.
func DefaultFilters() Filters {
	return Filters{Pickup: true}
}

// Toggle flips one filter. Switching off the only active fulfillment filter
// moves the selection to the other one instead.
func (f Filters) Toggle(id FilterID) Filters {
	switch id {
	case FilterPickup:
		if f.Pickup && !f.Delivery {
			return Filters{Pickup: false, Delivery: true, Under30: f.Under30}
		}
		f.Pickup = !f.Pickup
	case FilterDelivery:
		if f.Delivery && !f.Pickup {
			return Filters{Pickup: true, Delivery: false, Under30: f.Under30}
		}
		f.Delivery = !f.Delivery
	case FilterUnder30:
		f.Under30 = !f.Under30
	}

	return f
}

// Matches reports whether a restaurant passes the filters.
func (f Filters) Matches(r entity.Restaurant) bool {
	if f.Delivery && !r.Delivery {
		return false
	}
	if f.Pickup && !r.Pickup {
		return false
	}
	if f.Under30 && !withinUnder30(r) {
		return false
	}

	return true
}

// withinUnder30 treats an unknown distance as out of range.
func withinUnder30(r entity.Restaurant) bool {
	return r.DistanceKm != nil && *r.DistanceKm <= Under30MaxKm
}

// FilterRestaurants returns the restaurants passing f, keeping their order.
func FilterRestaurants(restaurants []entity.Restaurant, f Filters) []entity.Restaurant {
	out := make([]entity.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if f.Matches(r) {
			out = append(out, r)
		}
	}

	return out
}

// WithDistances returns a copy of restaurants where every missing distance is
// the great-circle distance from origin. Server distances are kept.
func WithDistances(restaurants []entity.Restaurant, origin orb.Point) []entity.Restaurant {
	out := slices.Clone(restaurants)
	for i := range out {
		if out[i].DistanceKm != nil {
			continue
		}
		km := DistanceKm(origin, out[i].Location)
		out[i].DistanceKm = &km
	}

	return out
}

// DistanceKm is the haversine distance between two lon/lat points.
func DistanceKm(a, b orb.Point) float64 {
	return geo.DistanceHaversine(a, b) / 1000
}

// Restaurants is the home screen list: the proximity results around the
// selected address that pass f.
func Restaurants(state store.State, f Filters) []entity.Restaurant {
	restaurants := state.Restaurant.Proximity.Data
	if selected, ok := state.Address.Selected(); ok {
		restaurants = WithDistances(restaurants, selected.Point())
	}

	return FilterRestaurants(restaurants, f)
}
