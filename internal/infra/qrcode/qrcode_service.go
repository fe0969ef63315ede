package qrcode

import (
	"encoding/json"
	"fmt"

	"freshdeal/config"
	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const pickupType = "pickup"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PickupData is the payload encoded in a pickup code.
type PickupData struct {
	PurchaseID   int64  `json:"purchase_id"`
	RestaurantID int64  `json:"restaurant_id"`
	Type         string `json:"type"`
}

// New creates the QR code service from configuration.
func New(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR renders the PNG a customer shows at the counter.
func (s *qrcodeService) GeneratePickupQR(purchase entity.Purchase) ([]byte, error) {
	jsonData, err := json.Marshal(PickupData{
		PurchaseID:   purchase.ID,
		RestaurantID: purchase.RestaurantID,
		Type:         pickupType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR returns the purchase id of scanned pickup code content.
func (s *qrcodeService) ParsePickupQR(qrData string) (int64, error) {
	var data PickupData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != pickupType {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.PurchaseID <= 0 {
		return 0, fmt.Errorf("invalid purchase id: %d", data.PurchaseID)
	}

	return data.PurchaseID, nil
}
