package impl

import (
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/errors"
)

// Fallback messages shown when the server gives no reason of its own.
const (
	msgLoginFailed          = "Login failed"
	msgRegisterFailed       = "Registration failed"
	msgFetchUserFailed      = "Failed to fetch user data"
	msgUpdateProfileFailed  = "Failed to update profile"
	msgFetchStatsFailed     = "Failed to fetch user stats"
	msgAchievementsFailed   = "Failed to fetch achievements"
	msgRankingsFailed       = "Failed to fetch rankings"
	msgAddAddressFailed     = "Failed to add address"
	msgRemoveAddressFailed  = "Failed to remove address"
	msgProximityFailed      = "Failed to fetch restaurants"
	msgRestaurantFailed     = "Failed to fetch restaurant"
	msgListingsFailed       = "Failed to fetch listings"
	msgFavoritesFailed      = "Failed to fetch favorites"
	msgCartFailed           = "Failed to update cart"
	msgFetchCartFailed      = "Failed to fetch cart"
	msgCreateOrderFailed    = "Failed to create order"
	msgActiveOrdersFailed   = "Failed to fetch active orders"
	msgPreviousOrdersFailed = "Failed to fetch previous orders"
	msgOrderDetailFailed    = "Failed to fetch order details"
)

// failureMessage picks the text stored in a rejected slice: the server's own
// message when it sent one, else fallback.
func failureMessage(err error, fallback string) string {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return fallback
	}
	if appErr.Kind() == domainerrors.KindServerRejection && appErr.Message() == domainerrors.ErrServerRejection.Message() {
		return fallback
	}

	return domainerrors.MessageOf(err, fallback)
}
