package service

import "freshdeal/internal/domain/entity"

// QRCodeService defines the interface for pickup code generation and parsing.
type QRCodeService interface {
	// GeneratePickupQR renders the PNG code a customer shows at pickup.
	GeneratePickupQR(purchase entity.Purchase) ([]byte, error)

	// ParsePickupQR extracts the purchase id from scanned code content.
	ParsePickupQR(content string) (int64, error)
}
