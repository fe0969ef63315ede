package store

import (
	"slices"

	"freshdeal/internal/domain/entity"
)

// AddressState owns the saved addresses. SelectedAddressID is "" or the id of
// an address in Addresses.
type AddressState struct {
	Addresses         []entity.Address
	SelectedAddressID string
	// SearchRadiusKm is the proximity radius picked by the user, 0 when unset.
	SearchRadiusKm float64
	Mutation       Progress
}

func initialAddressState() AddressState {
	return AddressState{Mutation: idle()}
}

// Selected returns the selected address.
func (s AddressState) Selected() (entity.Address, bool) {
	return s.find(s.SelectedAddressID)
}

// Address looks up a saved address by id.
func (s AddressState) Address(id string) (entity.Address, bool) {
	return s.find(id)
}

func (s AddressState) find(id string) (entity.Address, bool) {
	if id == "" {
		return entity.Address{}, false
	}
	i := s.index(id)
	if i < 0 {
		return entity.Address{}, false
	}

	return s.Addresses[i], true
}

func (s AddressState) index(id string) int {
	return slices.IndexFunc(s.Addresses, func(a entity.Address) bool { return a.ID == id })
}

// withoutAddress removes id and repairs the selection: fallback, then the first remaining address, then none.
func (s AddressState) withoutAddress(id, fallback string) AddressState {
	i := s.index(id)
	if i < 0 {
		return s
	}
	s.Addresses = slices.Delete(slices.Clone(s.Addresses), i, i+1)

	if s.SelectedAddressID == id {
		s.SelectedAddressID = ""
		if _, ok := s.find(fallback); ok {
			s.SelectedAddressID = fallback
		} else if len(s.Addresses) > 0 {
			s.SelectedAddressID = s.Addresses[0].ID
		}
	}

	return s
}

func reduceAddress(s AddressState, action Action) AddressState {
	switch a := action.(type) {
	case Logout:
		return initialAddressState()

	case AddressAdded:
		added := a.Address
		added.Status = entity.OptimisticPending
		s.Addresses = append(slices.Clone(s.Addresses), added)
		s.SelectedAddressID = added.ID
		s.Mutation = s.Mutation.pending()

		return s

	case AddressConfirmed:
		i := s.index(a.TempID)
		if i < 0 {
			return s
		}
		confirmed := a.Address
		confirmed.Status = entity.OptimisticConfirmed
		s.Addresses = slices.Clone(s.Addresses)
		if j := s.index(confirmed.ID); j >= 0 && j != i {
			// A refresh already delivered the server record.
			s.Addresses[j] = confirmed
			s.Addresses = slices.Delete(s.Addresses, i, i+1)
		} else {
			s.Addresses[i] = confirmed
		}
		if s.SelectedAddressID == a.TempID {
			s.SelectedAddressID = confirmed.ID
		}
		s.Mutation = s.Mutation.succeeded()

		return s

	case AddressRolledBack:
		s = s.withoutAddress(a.TempID, a.PreviousSelectedID)
		s.Mutation = s.Mutation.failed(a.Message)

		return s

	case AddressRemovePending:
		s.Mutation = s.Mutation.pending()

		return s

	case AddressRemoved:
		s = s.withoutAddress(a.ID, "")
		s.Mutation = s.Mutation.succeeded()

		return s

	case AddressRemoveRejected:
		s.Mutation = s.Mutation.failed(a.Message)

		return s

	case AddressSelected:
		if _, ok := s.find(a.ID); ok || a.ID == "" {
			s.SelectedAddressID = a.ID
		}

		return s

	case SearchRadiusSet:
		if a.RadiusKm > 0 {
			s.SearchRadiusKm = a.RadiusKm
		}

		return s

	case ProfileFulfilled:
		// Tentative entries survive a refresh so their confirm or rollback still lands.
		addresses := slices.Clone(a.Addresses)
		for _, addr := range s.Addresses {
			if addr.Status == entity.OptimisticPending && entity.IsTemporary(addr.ID) {
				addresses = append(addresses, addr)
			}
		}
		s.Addresses = addresses
		if _, ok := s.find(s.SelectedAddressID); !ok {
			s.SelectedAddressID = ""
			if len(s.Addresses) > 0 {
				s.SelectedAddressID = s.Addresses[0].ID
			}
		}

		return s

	default:
		return s
	}
}
