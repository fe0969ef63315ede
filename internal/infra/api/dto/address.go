// Package dto holds the JSON wire shapes of the backend REST surface and
// their mapping to domain entities.
package dto

import "freshdeal/internal/domain/entity"

// Address is the wire form of a saved address.
type Address struct {
	ID           string  `json:"id,omitempty"`
	Title        string  `json:"title" validate:"required"`
	Street       string  `json:"street" validate:"required"`
	Neighborhood string  `json:"neighborhood"`
	District     string  `json:"district"`
	Province     string  `json:"province"`
	Country      string  `json:"country"`
	PostalCode   string  `json:"postalCode"`
	ApartmentNo  string  `json:"apartmentNo,omitempty"`
	DoorNo       string  `json:"doorNo,omitempty"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
}

// AddressResponse wraps a created address.
type AddressResponse struct {
	Address Address `json:"address"`
}

// FromAddress maps an entity to its wire form. Temporary ids are never sent.
func FromAddress(a entity.Address) Address {
	id := a.ID
	if entity.IsTemporary(id) {
		id = ""
	}

	return Address{
		ID:           id,
		Title:        a.Title,
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
		District:     a.District,
		Province:     a.Province,
		Country:      a.Country,
		PostalCode:   a.PostalCode,
		ApartmentNo:  a.ApartmentNo,
		DoorNo:       a.DoorNo,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
	}
}

// ToEntity maps a server address to a confirmed entity.
func (a Address) ToEntity() entity.Address {
	return entity.Address{
		ID:           a.ID,
		Title:        a.Title,
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
		District:     a.District,
		Province:     a.Province,
		Country:      a.Country,
		PostalCode:   a.PostalCode,
		ApartmentNo:  a.ApartmentNo,
		DoorNo:       a.DoorNo,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
		Status:       entity.OptimisticConfirmed,
	}
}

// ToAddresses maps a server address list.
func ToAddresses(in []Address) []entity.Address {
	out := make([]entity.Address, 0, len(in))
	for _, a := range in {
		out = append(out, a.ToEntity())
	}

	return out
}
