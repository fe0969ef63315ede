package impl

import (
	"context"
	"log/slog"

	"freshdeal/config"
	deliverycontext "freshdeal/internal/delivery/context"
	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/errors"
	"freshdeal/internal/store"
	"freshdeal/internal/usecase"
	"freshdeal/internal/util"
	"freshdeal/internal/view"

	"github.com/paulmach/orb"
)

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	session         usecase.SessionUsecase
	restaurants     repository.RestaurantRepository
	users           repository.UserRepository
	store           *store.Store
	staleFetchGuard bool
	logger          *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(
	session usecase.SessionUsecase,
	restaurants repository.RestaurantRepository,
	users repository.UserRepository,
	st *store.Store,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	return &restaurantService{
		session:         session,
		restaurants:     restaurants,
		users:           users,
		store:           st,
		staleFetchGuard: cfg.Store.StaleFetchGuard,
		logger:          logger,
	}
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FetchByProximity replaces the restaurant list wholesale. Distances the server
// did not compute are filled in from the query point.
func (srv *restaurantService) FetchByProximity(ctx context.Context, input usecase.ProximityInput) ([]entity.Restaurant, error) {
	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.ProximityRejected{
			Seq:     srv.store.NextFetchSeq(),
			Message: failureMessage(err, msgProximityFailed),
			Guarded: srv.staleFetchGuard,
		})

		return nil, err
	}

	seq := srv.store.NextFetchSeq()
	srv.store.Dispatch(store.ProximityPending{Seq: seq})

	restaurants, err := srv.restaurants.FetchByProximity(ctx, token, repository.ProximityQuery{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		RadiusKm:  input.RadiusKm,
	})
	if err != nil {
		srv.store.Dispatch(store.ProximityRejected{
			Seq:     seq,
			Message: failureMessage(err, msgProximityFailed),
			Guarded: srv.staleFetchGuard,
		})
		srv.log(ctx).Error("Failed to fetch restaurants by proximity", slog.Uint64("seq", seq), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch restaurants by proximity")
	}

	restaurants = view.WithDistances(restaurants, orb.Point{input.Longitude, input.Latitude})
	srv.store.Dispatch(store.ProximityFulfilled{
		Seq:         seq,
		Restaurants: restaurants,
		Guarded:     srv.staleFetchGuard,
	})
	srv.log(ctx).Debug("Fetched restaurants by proximity",
		slog.Uint64("seq", seq),
		slog.Int("count", len(restaurants)),
		slog.Float64("radius_km", input.RadiusKm),
	)

	return restaurants, nil
}

func (srv *restaurantService) FetchRestaurant(ctx context.Context, restaurantID int64) (*entity.Restaurant, error) {
	srv.store.Dispatch(store.RestaurantDetailPending{RestaurantID: restaurantID})

	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.RestaurantDetailRejected{
			RestaurantID: restaurantID,
			Message:      failureMessage(err, msgRestaurantFailed),
		})

		return nil, err
	}

	restaurant, err := srv.restaurants.FetchRestaurant(ctx, token, restaurantID)
	if err != nil {
		srv.store.Dispatch(store.RestaurantDetailRejected{
			RestaurantID: restaurantID,
			Message:      failureMessage(err, msgRestaurantFailed),
		})
		srv.log(ctx).Error("Failed to fetch restaurant", slog.Int64("restaurant_id", restaurantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch restaurant")
	}

	if selected, ok := srv.store.State().Address.Selected(); ok {
		*restaurant = view.WithDistances([]entity.Restaurant{*restaurant}, selected.Point())[0]
	}
	srv.store.Dispatch(store.RestaurantDetailFulfilled{Restaurant: *restaurant})

	return restaurant, nil
}

func (srv *restaurantService) FetchListings(ctx context.Context, restaurantID int64) ([]entity.Listing, error) {
	srv.store.Dispatch(store.ListingsPending{RestaurantID: restaurantID})

	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.ListingsRejected{
			RestaurantID: restaurantID,
			Message:      failureMessage(err, msgListingsFailed),
		})

		return nil, err
	}

	listings, err := srv.restaurants.FetchListings(ctx, token, restaurantID)
	if err != nil {
		srv.store.Dispatch(store.ListingsRejected{
			RestaurantID: restaurantID,
			Message:      failureMessage(err, msgListingsFailed),
		})
		srv.log(ctx).Error("Failed to fetch listings", slog.Int64("restaurant_id", restaurantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch listings")
	}

	srv.store.Dispatch(store.ListingsFulfilled{RestaurantID: restaurantID, Listings: listings})

	return listings, nil
}

func (srv *restaurantService) FetchFavorites(ctx context.Context) ([]int64, error) {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.FavoritesRejected{Message: failureMessage(err, msgFavoritesFailed)})

		return nil, err
	}

	srv.store.Dispatch(store.FavoritesPending{})

	ids, err := srv.users.FetchFavorites(ctx, token)
	if err != nil {
		srv.store.Dispatch(store.FavoritesRejected{Message: failureMessage(err, msgFavoritesFailed)})
		srv.log(ctx).Error("Failed to fetch favorites", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch favorites")
	}

	srv.store.Dispatch(store.FavoritesFulfilled{RestaurantIDs: ids})

	return ids, nil
}

func (srv *restaurantService) AddFavorite(ctx context.Context, restaurantID int64) error {
	return srv.toggleFavorite(ctx, restaurantID, true)
}

func (srv *restaurantService) RemoveFavorite(ctx context.Context, restaurantID int64) error {
	return srv.toggleFavorite(ctx, restaurantID, false)
}

// toggleFavorite updates the id set only after the server accepted the change.
func (srv *restaurantService) toggleFavorite(ctx context.Context, restaurantID int64, favorite bool) error {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		return err
	}

	if favorite {
		err = srv.users.AddFavorite(ctx, token, restaurantID)
	} else {
		err = srv.users.RemoveFavorite(ctx, token, restaurantID)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to update favorite",
			slog.Int64("restaurant_id", restaurantID),
			slog.Bool("favorite", favorite),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to update favorite")
	}

	srv.store.Dispatch(store.FavoriteToggled{RestaurantID: restaurantID, Favorite: favorite})

	return nil
}

// AddComment reviews a purchase. The rating is rounded by the repository.
func (srv *restaurantService) AddComment(ctx context.Context, restaurantID int64, input usecase.CommentInput) error {
	if err := util.ValidateStruct(input); err != nil {
		return err
	}

	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		return err
	}

	if err := srv.restaurants.AddComment(ctx, token, restaurantID, repository.CommentInput{
		PurchaseID: input.PurchaseID,
		Comment:    input.Comment,
		Rating:     input.Rating,
	}); err != nil {
		srv.log(ctx).Error("Failed to add comment", slog.Int64("restaurant_id", restaurantID), slog.Any("error", err))

		return errors.Wrap(err, "failed to add comment")
	}
	srv.log(ctx).Info("Comment added", slog.Int64("restaurant_id", restaurantID), slog.Int64("purchase_id", input.PurchaseID))

	return nil
}

func (srv *restaurantService) FetchAll(ctx context.Context) ([]entity.Restaurant, error) {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		return nil, err
	}

	restaurants, err := srv.restaurants.FetchAll(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch restaurants")
	}

	return restaurants, nil
}

func (srv *restaurantService) CreateRestaurant(ctx context.Context, form repository.RestaurantForm) (*entity.Restaurant, error) {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		return nil, err
	}

	restaurant, err := srv.restaurants.CreateRestaurant(ctx, token, form)
	if err != nil {
		srv.log(ctx).Error("Failed to create restaurant", slog.String("name", form.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create restaurant")
	}
	srv.log(ctx).Info("Restaurant created", slog.Int64("restaurant_id", restaurant.ID))

	return restaurant, nil
}

func (srv *restaurantService) UpdateRestaurant(ctx context.Context, restaurantID int64, form repository.RestaurantForm) (*entity.Restaurant, error) {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		return nil, err
	}

	restaurant, err := srv.restaurants.UpdateRestaurant(ctx, token, restaurantID, form)
	if err != nil {
		srv.log(ctx).Error("Failed to update restaurant", slog.Int64("restaurant_id", restaurantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update restaurant")
	}
	if srv.store.State().Restaurant.DetailRestaurantID == restaurantID {
		srv.store.Dispatch(store.RestaurantDetailFulfilled{Restaurant: *restaurant})
	}

	return restaurant, nil
}

func (srv *restaurantService) DeleteRestaurant(ctx context.Context, restaurantID int64) error {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		return err
	}

	if err := srv.restaurants.DeleteRestaurant(ctx, token, restaurantID); err != nil {
		srv.log(ctx).Error("Failed to delete restaurant", slog.Int64("restaurant_id", restaurantID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete restaurant")
	}
	srv.log(ctx).Info("Restaurant deleted", slog.Int64("restaurant_id", restaurantID))

	return nil
}

func (srv *restaurantService) SelectListing(listing entity.Listing) {
	srv.store.Dispatch(store.ListingSelected{Listing: listing})
}

func (srv *restaurantService) ClearListing() {
	srv.store.Dispatch(store.ListingCleared{})
}

func (srv *restaurantService) SetFulfillmentMode(mode store.FulfillmentMode) {
	srv.store.Dispatch(store.FulfillmentModeSet{Mode: mode})
}
