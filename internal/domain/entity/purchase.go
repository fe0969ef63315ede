package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatus is the lifecycle state of an order.
type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "PENDING"
	PurchaseAccepted  PurchaseStatus = "ACCEPTED"
	PurchaseRejected  PurchaseStatus = "REJECTED"
	PurchaseCompleted PurchaseStatus = "COMPLETED"
)

// Decision is a restaurant's answer to a pending order.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// Purchase is an order created from the cart.
type Purchase struct {
	ID              int64
	UserID          int64
	RestaurantID    int64
	ListingID       int64
	ListingTitle    string
	Quantity        int
	TotalPrice      decimal.Decimal
	Status          PurchaseStatus
	IsDelivery      bool
	DeliveryAddress string
	DeliveryNotes   string
	CompletionImage string
	CreatedAt       time.Time
}

// Active reports whether the order still awaits completion.
func (p Purchase) Active() bool {
	return p.Status == PurchasePending || p.Status == PurchaseAccepted
}
