package stubdb

import (
	"context"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Cart returns the cart lines of a user with their listing titles.
func (b *Backend) Cart(ctx context.Context, userID int64) ([]entity.CartItem, error) {
	var lines []model.CartItemModel
	err := b.db.WithContext(ctx).Preload("Listing").
		Where("user_id = ?", userID).
		Order("updated_at").
		Find(&lines).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}

	items := make([]entity.CartItem, 0, len(lines))
	for i := range lines {
		items = append(items, toCartItemDomain(&lines[i]))
	}

	return items, nil
}

// PutCartItem sets the count of a cart line. With mustExist the line has to be
// in the cart already. A zero count removes the line.
func (b *Backend) PutCartItem(ctx context.Context, userID, listingID int64, count int, mustExist bool) (*entity.CartItem, error) {
	var item *entity.CartItem
	err := b.tx(ctx, func(tx *gorm.DB) error {
		var listing model.ListingModel
		if err := tx.First(&listing, listingID).Error; err != nil {
			return notFound(err, ErrListingNotFound, "failed to find listing")
		}

		var existing model.CartItemModel
		err := tx.Where("user_id = ? AND listing_id = ?", userID, listingID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if mustExist {
				return ErrCartItemNotFound
			}
		case err != nil:
			return errors.Wrap(err, "failed to find cart line")
		}

		if count <= 0 {
			return errors.Wrap(tx.Where("user_id = ? AND listing_id = ?", userID, listingID).
				Delete(&model.CartItemModel{}).Error, "failed to remove cart line")
		}
		if count > listing.Count {
			return ErrInsufficientStock
		}

		var others int64
		if err := tx.Model(&model.CartItemModel{}).
			Where("user_id = ? AND restaurant_id <> ?", userID, listing.RestaurantID).
			Count(&others).Error; err != nil {
			return errors.Wrap(err, "failed to check cart")
		}
		if others > 0 {
			return ErrMixedCart
		}

		line := &model.CartItemModel{
			UserID:       userID,
			ListingID:    listingID,
			RestaurantID: listing.RestaurantID,
			Count:        count,
			UpdatedAt:    b.now(),
		}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "listing_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"count", "updated_at"}),
		}).Create(line).Error
		if err != nil {
			return errors.Wrap(err, "failed to save cart line")
		}

		line.Listing = &listing
		confirmed := toCartItemDomain(line)
		item = &confirmed

		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (b *Backend) RemoveCartItem(ctx context.Context, userID, listingID int64) error {
	result := b.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove cart line")
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// ResetCart empties the cart of a user. An empty cart is not an error.
func (b *Backend) ResetCart(ctx context.Context, userID int64) error {
	err := b.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItemModel{}).Error

	return errors.Wrap(err, "failed to reset cart")
}
