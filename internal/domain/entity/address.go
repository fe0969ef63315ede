// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// TempAddressIDPrefix marks ids generated locally for an address the server has not confirmed yet.
const TempAddressIDPrefix = "temp-"

// OptimisticStatus tracks an optimistically created entity through its two-phase commit.
type OptimisticStatus string

const (
	OptimisticPending   OptimisticStatus = "pending"
	OptimisticConfirmed OptimisticStatus = "confirmed"
	OptimisticFailed    OptimisticStatus = "failed"
)

// Address is a delivery location saved by the user.
type Address struct {
	ID           string           // Server id, or a TempAddressIDPrefix id while pending.
	Title        string           // A user-defined label, e.g., "Home", "Office".
	Street       string           // Street and building.
	Neighborhood string           // Neighborhood or quarter.
	District     string           // District within the province.
	Province     string           // Province or state.
	Country      string           // Country name.
	PostalCode   string           // Postal code.
	ApartmentNo  string           // Apartment number, optional.
	DoorNo       string           // Door number, optional.
	Latitude     float64          // The geographic latitude.
	Longitude    float64          // The geographic longitude.
	Status       OptimisticStatus // Commit state of a locally created address.
}

// NewTempAddressID returns a fresh temporary id.
func NewTempAddressID() string {
	return TempAddressIDPrefix + uuid.NewString()
}

// IsTemporary reports whether id was generated locally.
func IsTemporary(id string) bool {
	return strings.HasPrefix(id, TempAddressIDPrefix)
}

// Point returns the address location as lon/lat.
func (a Address) Point() orb.Point {
	return orb.Point{a.Longitude, a.Latitude}
}

// SameLocation reports whether both addresses point at identical coordinates.
func (a Address) SameLocation(other Address) bool {
	return a.Latitude == other.Latitude && a.Longitude == other.Longitude
}
