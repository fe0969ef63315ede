package stubdb

import (
	"cmp"
	"context"
	"math"
	"slices"
	"strings"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"gorm.io/gorm"
)

// Nearby returns the restaurants within radiusKm of the point, closest first,
// each carrying its distance.
func (b *Backend) Nearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]entity.Restaurant, error) {
	restaurants, err := b.Restaurants(ctx)
	if err != nil {
		return nil, err
	}

	origin := orb.Point{longitude, latitude}
	nearby := make([]entity.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		km := geo.DistanceHaversine(origin, r.Location) / 1000
		if km > radiusKm {
			continue
		}
		r.DistanceKm = &km
		nearby = append(nearby, r)
	}
	slices.SortStableFunc(nearby, func(x, y entity.Restaurant) int {
		return cmp.Compare(*x.DistanceKm, *y.DistanceKm)
	})

	return nearby, nil
}

// Restaurants lists every restaurant without comments.
func (b *Backend) Restaurants(ctx context.Context) ([]entity.Restaurant, error) {
	var models []model.RestaurantModel
	if err := b.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	counts, err := b.listingCounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Restaurant, 0, len(models))
	for i := range models {
		out = append(out, toRestaurantDomain(&models[i], counts[models[i].ID]))
	}

	return out, nil
}

// Restaurant returns one restaurant with its comments.
func (b *Backend) Restaurant(ctx context.Context, restaurantID int64) (*entity.Restaurant, error) {
	var m model.RestaurantModel
	err := b.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		First(&m, restaurantID).Error
	if err != nil {
		return nil, notFound(err, ErrRestaurantNotFound, "failed to find restaurant")
	}

	counts, err := b.listingCounts(ctx)
	if err != nil {
		return nil, err
	}
	restaurant := toRestaurantDomain(&m, counts[m.ID])

	return &restaurant, nil
}

// CreateRestaurant registers a restaurant owned by ownerID.
func (b *Backend) CreateRestaurant(ctx context.Context, ownerID int64, form repository.RestaurantForm) (*entity.Restaurant, error) {
	m := &model.RestaurantModel{OwnerID: ownerID}
	applyForm(m, form)

	if err := b.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create restaurant")
	}

	restaurant := toRestaurantDomain(m, 0)

	return &restaurant, nil
}

// UpdateRestaurant replaces the editable fields of an owned restaurant.
func (b *Backend) UpdateRestaurant(ctx context.Context, ownerID, restaurantID int64, form repository.RestaurantForm) (*entity.Restaurant, error) {
	m, err := b.ownedRestaurant(ctx, b.db, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}
	applyForm(m, form)

	if err := b.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update restaurant")
	}

	return b.Restaurant(ctx, restaurantID)
}

// DeleteRestaurant removes an owned restaurant together with its listings.
func (b *Backend) DeleteRestaurant(ctx context.Context, ownerID, restaurantID int64) error {
	return b.tx(ctx, func(tx *gorm.DB) error {
		if _, err := b.ownedRestaurant(ctx, tx, ownerID, restaurantID); err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", restaurantID).Delete(&model.ListingModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete listings")
		}
		if err := tx.Where("restaurant_id = ?", restaurantID).Delete(&model.CartItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete cart lines")
		}
		if err := tx.Delete(&model.RestaurantModel{}, restaurantID).Error; err != nil {
			return errors.Wrap(err, "failed to delete restaurant")
		}

		return nil
	})
}

// AddComment rates a restaurant. The purchase must belong to the user and the restaurant.
func (b *Backend) AddComment(ctx context.Context, userID, restaurantID int64, input repository.CommentInput) error {
	return b.tx(ctx, func(tx *gorm.DB) error {
		var purchase model.PurchaseModel
		err := tx.Where("id = ? AND user_id = ? AND restaurant_id = ?", input.PurchaseID, userID, restaurantID).
			First(&purchase).Error
		if err != nil {
			return notFound(err, ErrPurchaseNotFound, "failed to find purchase")
		}

		rating := int(math.Round(input.Rating))
		comment := &model.CommentModel{
			RestaurantID: restaurantID,
			UserID:       userID,
			PurchaseID:   input.PurchaseID,
			Comment:      strings.TrimSpace(input.Comment),
			Rating:       rating,
		}
		if err := tx.Create(comment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyRated
			}

			return errors.Wrap(err, "failed to create comment")
		}

		err = tx.Model(&model.RestaurantModel{}).Where("id = ?", restaurantID).Updates(map[string]any{
			"rating_sum":   gorm.Expr("rating_sum + ?", rating),
			"rating_count": gorm.Expr("rating_count + 1"),
		}).Error

		return errors.Wrap(err, "failed to update rating")
	})
}

// Listings returns the listings of a restaurant that still have stock.
func (b *Backend) Listings(ctx context.Context, restaurantID int64) ([]entity.Listing, error) {
	var exists int64
	if err := b.db.WithContext(ctx).Model(&model.RestaurantModel{}).Where("id = ?", restaurantID).Count(&exists).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restaurant")
	}
	if exists == 0 {
		return nil, ErrRestaurantNotFound
	}

	var models []model.ListingModel
	if err := b.db.WithContext(ctx).Where("restaurant_id = ? AND count > 0", restaurantID).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	listings := make([]entity.Listing, 0, len(models))
	for i := range models {
		listings = append(listings, toListingDomain(&models[i]))
	}

	return listings, nil
}

// Favorites returns the favorite restaurant ids of a user, oldest first.
func (b *Backend) Favorites(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	err := b.db.WithContext(ctx).Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Order("created_at").
		Pluck("restaurant_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return ids, nil
}

// AddFavorite marks a restaurant as favorite. Adding twice is a no-op.
func (b *Backend) AddFavorite(ctx context.Context, userID, restaurantID int64) error {
	if _, err := b.Restaurant(ctx, restaurantID); err != nil {
		return err
	}

	err := b.db.WithContext(ctx).
		Where(model.FavoriteModel{UserID: userID, RestaurantID: restaurantID}).
		FirstOrCreate(&model.FavoriteModel{}).Error

	return errors.Wrap(err, "failed to add favorite")
}

func (b *Backend) RemoveFavorite(ctx context.Context, userID, restaurantID int64) error {
	err := b.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&model.FavoriteModel{}).Error

	return errors.Wrap(err, "failed to remove favorite")
}

func (b *Backend) ownedRestaurant(ctx context.Context, db *gorm.DB, ownerID, restaurantID int64) (*model.RestaurantModel, error) {
	var m model.RestaurantModel
	if err := db.WithContext(ctx).First(&m, restaurantID).Error; err != nil {
		return nil, notFound(err, ErrRestaurantNotFound, "failed to find restaurant")
	}
	if m.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	return &m, nil
}

func (b *Backend) listingCounts(ctx context.Context) (map[int64]int, error) {
	var rows []struct {
		RestaurantID int64
		Total        int
	}
	err := b.db.WithContext(ctx).Model(&model.ListingModel{}).
		Select("restaurant_id, COUNT(*) AS total").
		Where("count > 0").
		Group("restaurant_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count listings")
	}

	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.RestaurantID] = row.Total
	}

	return counts, nil
}

func applyForm(m *model.RestaurantModel, form repository.RestaurantForm) {
	m.Name = strings.TrimSpace(form.Name)
	m.Description = form.Description
	m.Category = form.Category
	m.Latitude = form.Latitude
	m.Longitude = form.Longitude
	m.WorkingDays = strings.Join(form.WorkingDays, ",")
	m.WorkingHoursStart = form.WorkingHoursStart
	m.WorkingHoursEnd = form.WorkingHoursEnd
	m.Pickup = form.Pickup
	m.Delivery = form.Delivery
	m.MaxDeliveryDistance = form.MaxDeliveryDistance
	m.DeliveryFee = form.DeliveryFee
	m.MinOrderAmount = form.MinOrderAmount
	if form.Image != nil {
		m.ImageURL = "/images/" + uuid.NewString() + "-" + form.Image.Filename
	}
}
