package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "freshdeal/internal/delivery/context"
	"freshdeal/internal/domain/entity"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/errors"
	"freshdeal/internal/store"
	"freshdeal/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	session usecase.SessionUsecase
	repo    repository.CartRepository
	store   *store.Store
	logger  *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	session usecase.SessionUsecase,
	repo repository.CartRepository,
	st *store.Store,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		session: session,
		repo:    repo,
		store:   st,
		logger:  logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) FetchCart(ctx context.Context) ([]entity.CartItem, error) {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.CartRejected{Message: failureMessage(err, msgFetchCartFailed)})

		return nil, err
	}

	srv.store.Dispatch(store.CartPending{})

	items, err := srv.repo.FetchCart(ctx, token)
	if err != nil {
		srv.store.Dispatch(store.CartRejected{Message: failureMessage(err, msgFetchCartFailed)})
		srv.log(ctx).Error("Failed to fetch cart", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch cart")
	}

	srv.store.Dispatch(store.CartFulfilled{Items: items})

	return items, nil
}

// AddToCart adds one unit of the listing.
//
// Stock is checked locally before any call. When the cart belongs to another
// restaurant the confirmer decides: a decline leaves the cart untouched, an
// accept resets the cart and waits for the reset to succeed before adding.
func (srv *cartService) AddToCart(ctx context.Context, input usecase.AddToCartInput) (*entity.CartItem, error) {
	listing := input.Listing

	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.CartRejected{Message: failureMessage(err, msgCartFailed)})

		return nil, err
	}

	cart := srv.store.State().Cart
	current := cart.Count(listing.ID)
	if current+1 > listing.Count {
		return nil, domainerrors.ErrStockExceeded.WithDetails(stockDetails(listing))
	}

	if cartRestaurantID, ok := cart.RestaurantID(); ok && cartRestaurantID != listing.RestaurantID {
		if input.Confirmer == nil || !input.Confirmer.ConfirmCartReplace(ctx, cartRestaurantID, listing.RestaurantID) {
			srv.log(ctx).Info("Cart replacement declined",
				slog.Int64("cart_restaurant_id", cartRestaurantID),
				slog.Int64("restaurant_id", listing.RestaurantID),
			)

			return nil, domainerrors.ErrCartRestaurantConflict
		}

		if err := srv.ResetCart(ctx); err != nil {
			return nil, err
		}
		current = 0
	}

	srv.store.Dispatch(store.CartPending{})

	var item *entity.CartItem
	if current == 0 {
		item, err = srv.repo.AddItem(ctx, token, listing.ID, 1)
	} else {
		item, err = srv.repo.UpdateItem(ctx, token, listing.ID, current+1)
	}
	if err != nil {
		srv.store.Dispatch(store.CartRejected{Message: failureMessage(err, msgCartFailed)})
		srv.log(ctx).Error("Failed to add to cart", slog.Int64("listing_id", listing.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add to cart")
	}

	merged := withListing(*item, listing)
	srv.store.Dispatch(store.CartItemMerged{Item: merged})
	srv.log(ctx).Debug("Cart item added", slog.Int64("listing_id", listing.ID), slog.Int("count", merged.Count))

	return &merged, nil
}

// RemoveFromCart takes one unit away. The last unit deletes the line.
func (srv *cartService) RemoveFromCart(ctx context.Context, listingID int64) error {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.CartRejected{Message: failureMessage(err, msgCartFailed)})

		return err
	}

	current := srv.store.State().Cart.Count(listingID)
	if current == 0 {
		return domainerrors.ErrCartItemNotFound
	}

	srv.store.Dispatch(store.CartPending{})

	if current == 1 {
		if err := srv.repo.RemoveItem(ctx, token, listingID); err != nil {
			return srv.rejected(ctx, err, "failed to remove from cart", listingID)
		}
		srv.store.Dispatch(store.CartItemRemoved{ListingID: listingID})

		return nil
	}

	item, err := srv.repo.UpdateItem(ctx, token, listingID, current-1)
	if err != nil {
		return srv.rejected(ctx, err, "failed to remove from cart", listingID)
	}
	srv.store.Dispatch(store.CartItemMerged{Item: *item})

	return nil
}

// UpdateCartItem sets an explicit count. Zero removes the line.
func (srv *cartService) UpdateCartItem(ctx context.Context, listing entity.Listing, count int) error {
	if count < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("count must not be negative")
	}
	if count > listing.Count {
		return domainerrors.ErrStockExceeded.WithDetails(stockDetails(listing))
	}

	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.CartRejected{Message: failureMessage(err, msgCartFailed)})

		return err
	}

	cart := srv.store.State().Cart
	current := cart.Count(listing.ID)
	if current == 0 {
		if count == 0 {
			return nil
		}
		if cartRestaurantID, ok := cart.RestaurantID(); ok && cartRestaurantID != listing.RestaurantID {
			return domainerrors.ErrCartRestaurantConflict
		}
	}

	srv.store.Dispatch(store.CartPending{})

	var item *entity.CartItem
	switch {
	case count == 0:
		if err := srv.repo.RemoveItem(ctx, token, listing.ID); err != nil {
			return srv.rejected(ctx, err, "failed to update cart", listing.ID)
		}
		srv.store.Dispatch(store.CartItemRemoved{ListingID: listing.ID})

		return nil
	case current == 0:
		item, err = srv.repo.AddItem(ctx, token, listing.ID, count)
	default:
		item, err = srv.repo.UpdateItem(ctx, token, listing.ID, count)
	}
	if err != nil {
		return srv.rejected(ctx, err, "failed to update cart", listing.ID)
	}

	srv.store.Dispatch(store.CartItemMerged{Item: withListing(*item, listing)})

	return nil
}

func (srv *cartService) ResetCart(ctx context.Context) error {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.CartRejected{Message: failureMessage(err, msgCartFailed)})

		return err
	}

	srv.store.Dispatch(store.CartPending{})

	if err := srv.repo.ResetCart(ctx, token); err != nil {
		srv.store.Dispatch(store.CartRejected{Message: failureMessage(err, msgCartFailed)})
		srv.log(ctx).Error("Failed to reset cart", slog.Any("error", err))

		return errors.Wrap(err, "failed to reset cart")
	}

	srv.store.Dispatch(store.CartCleared{})
	srv.log(ctx).Debug("Cart reset")

	return nil
}

func (srv *cartService) rejected(ctx context.Context, err error, message string, listingID int64) error {
	srv.store.Dispatch(store.CartRejected{Message: failureMessage(err, msgCartFailed)})
	srv.log(ctx).Error("Cart update failed", slog.Int64("listing_id", listingID), slog.Any("error", err))

	return errors.Wrap(err, message)
}

// withListing fills the fields the server may omit from a cart line.
func withListing(item entity.CartItem, listing entity.Listing) entity.CartItem {
	if item.ListingID == 0 {
		item.ListingID = listing.ID
	}
	if item.RestaurantID == 0 {
		item.RestaurantID = listing.RestaurantID
	}
	if item.Title == "" {
		item.Title = listing.Title
	}

	return item
}

func stockDetails(listing entity.Listing) string {
	return "only " + strconv.Itoa(listing.Count) + " left of " + listing.Title
}
