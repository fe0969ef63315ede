// Package repository defines the interfaces for the remote persistence layer.
// These interfaces act as a contract between the operations and the REST backend client.
package repository

import (
	"context"

	"freshdeal/internal/domain/entity"
)

// AddressRepository defines the address endpoints of the backend.
type AddressRepository interface {
	// AddAddress stores a new address and returns the server-confirmed record.
	AddAddress(ctx context.Context, token string, address entity.Address) (*entity.Address, error)

	// RemoveAddress deletes an address by its server id.
	RemoveAddress(ctx context.Context, token, addressID string) error
}
