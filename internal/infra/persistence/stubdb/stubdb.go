// Package stubdb is the persistence layer of the development backend. It keeps
// accounts, restaurants, carts and orders in SQLite through GORM.
package stubdb

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"freshdeal/config"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/domain/service"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/persistence/model"
	"freshdeal/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Backend errors. All of them reach the client as server rejections.
var (
	ErrEmailTaken             = rejection(http.StatusConflict, "EMAIL_TAKEN", "This email is already registered")
	ErrInvalidCredentials     = rejection(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
	ErrUnauthorized           = rejection(http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
	ErrForbidden              = rejection(http.StatusForbidden, "FORBIDDEN", "You are not allowed to do this")
	ErrUserNotFound           = rejection(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrAddressNotFound        = rejection(http.StatusNotFound, "ADDRESS_NOT_FOUND", "Address not found")
	ErrRestaurantNotFound     = rejection(http.StatusNotFound, "RESTAURANT_NOT_FOUND", "Restaurant not found")
	ErrListingNotFound        = rejection(http.StatusNotFound, "LISTING_NOT_FOUND", "Listing not found")
	ErrCartItemNotFound       = rejection(http.StatusNotFound, "CART_ITEM_NOT_FOUND", "Item not found in cart")
	ErrPurchaseNotFound       = rejection(http.StatusNotFound, "PURCHASE_NOT_FOUND", "Purchase not found")
	ErrEmptyCart              = rejection(http.StatusBadRequest, "EMPTY_CART", "Cart is empty")
	ErrInsufficientStock      = rejection(http.StatusBadRequest, "INSUFFICIENT_STOCK", "Not enough stock")
	ErrMixedCart              = rejection(http.StatusBadRequest, "MIXED_CART", "You can only add items from the same restaurant to your cart.")
	ErrPickupUnsupported      = rejection(http.StatusBadRequest, "PICKUP_UNSUPPORTED", "This restaurant does not offer pickup")
	ErrDeliveryUnsupported    = rejection(http.StatusBadRequest, "DELIVERY_UNSUPPORTED", "This restaurant does not deliver")
	ErrOrderNotPending        = rejection(http.StatusConflict, "ORDER_NOT_PENDING", "Order has already been answered")
	ErrAlreadyRated           = rejection(http.StatusConflict, "ALREADY_RATED", "You have already rated this order")
	ErrEmailMismatch          = rejection(http.StatusBadRequest, "EMAIL_MISMATCH", "Current email does not match")
	ErrWrongPassword          = rejection(http.StatusBadRequest, "WRONG_PASSWORD", "Current password is incorrect")
	ErrInvalidAddressID       = rejection(http.StatusBadRequest, "INVALID_ADDRESS_ID", "Invalid address id")
	ErrDeliveryAddressMissing = rejection(http.StatusBadRequest, "DELIVERY_ADDRESS_MISSING", "Delivery address is required")
)

func rejection(httpCode int, code, message string) *domainerrors.BaseError {
	return domainerrors.NewBaseError(domainerrors.KindServerRejection, httpCode, code, message, "")
}

// Models lists every table of the backend, in migration order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.AddressModel{},
		&model.FavoriteModel{},
		&model.RestaurantModel{},
		&model.ListingModel{},
		&model.CommentModel{},
		&model.CartItemModel{},
		&model.PurchaseModel{},
	}
}

// Backend answers every endpoint of the development server.
type Backend struct {
	db     *gorm.DB
	hasher service.CredentialHasher
	now    func() time.Time
}

// New wraps an already migrated database.
func New(db *gorm.DB, hasher service.CredentialHasher) *Backend {
	return &Backend{
		db:     db,
		hasher: hasher,
		now:    time.Now,
	}
}

// Params defines the dependencies of the backend.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Hasher service.CredentialHasher
}

// Open connects the configured database, migrates it and seeds demo data when enabled.
func Open(params Params) (*Backend, error) {
	db, err := sqlite.Connect(params.Config.Stub.DSN, params.Config, params.Logger, Models()...)
	if err != nil {
		return nil, err
	}
	if err := sqlite.Bind(params.Lifecycle, db); err != nil {
		return nil, err
	}

	backend := New(db, params.Hasher)

	if params.Config.Stub.Seed {
		params.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				seeded, err := backend.Seed(ctx)
				if err != nil {
					return err
				}
				if seeded {
					params.Logger.Info("Seeded development backend", slog.String("customer", DemoCustomerEmail), slog.String("owner", DemoOwnerEmail))
				}

				return nil
			},
		})
	}

	return backend, nil
}

func (b *Backend) tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return b.db.WithContext(ctx).Transaction(fn)
}

// notFound maps gorm's missing-row error to target.
func notFound(err error, target error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}

	return errors.Wrap(err, message)
}
