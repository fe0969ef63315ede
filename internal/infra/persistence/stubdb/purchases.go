package stubdb

import (
	"context"
	"strings"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	activeStatuses   = []string{string(entity.PurchasePending), string(entity.PurchaseAccepted)}
	finishedStatuses = []string{string(entity.PurchaseCompleted), string(entity.PurchaseRejected)}
)

// CreateOrder turns the cart of a user into one pending purchase per line,
// takes the stock and empties the cart.
func (b *Backend) CreateOrder(ctx context.Context, userID int64, request repository.OrderRequest) ([]entity.Purchase, error) {
	var created []model.PurchaseModel
	err := b.tx(ctx, func(tx *gorm.DB) error {
		var lines []model.CartItemModel
		if err := tx.Preload("Listing").Where("user_id = ?", userID).Order("updated_at").Find(&lines).Error; err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		var restaurant model.RestaurantModel
		if err := tx.First(&restaurant, lines[0].RestaurantID).Error; err != nil {
			return notFound(err, ErrRestaurantNotFound, "failed to find restaurant")
		}
		switch {
		case request.IsDelivery && !restaurant.Delivery:
			return ErrDeliveryUnsupported
		case !request.IsDelivery && !restaurant.Pickup:
			return ErrPickupUnsupported
		case request.IsDelivery && strings.TrimSpace(request.DeliveryAddress) == "":
			return ErrDeliveryAddressMissing
		}

		now := b.now()
		for _, line := range lines {
			listing := line.Listing
			if listing == nil {
				return ErrListingNotFound
			}
			if listing.Count < line.Count {
				return ErrInsufficientStock
			}

			price := listing.PickupPrice
			if request.IsDelivery {
				price = listing.DeliveryPrice
			}
			quantity := decimal.NewFromInt(int64(line.Count))

			purchase := model.PurchaseModel{
				UserID:       userID,
				RestaurantID: line.RestaurantID,
				ListingID:    line.ListingID,
				ListingTitle: listing.Title,
				Quantity:     line.Count,
				TotalPrice:   price.Mul(quantity),
				SavedAmount:  listing.OriginalPrice.Sub(price).Mul(quantity),
				Status:       string(entity.PurchasePending),
				IsDelivery:   request.IsDelivery,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if request.IsDelivery {
				purchase.DeliveryAddress = request.DeliveryAddress
				purchase.DeliveryNotes = request.DeliveryNotes
			} else {
				purchase.PickupNotes = request.PickupNotes
			}
			if err := tx.Create(&purchase).Error; err != nil {
				return errors.Wrap(err, "failed to create purchase")
			}

			err := tx.Model(&model.ListingModel{}).Where("id = ?", listing.ID).
				Update("count", gorm.Expr("count - ?", line.Count)).Error
			if err != nil {
				return errors.Wrap(err, "failed to take stock")
			}

			created = append(created, purchase)
		}

		return errors.Wrap(tx.Where("user_id = ?", userID).Delete(&model.CartItemModel{}).Error, "failed to clear cart")
	})
	if err != nil {
		return nil, err
	}

	return toPurchases(created), nil
}

// ActivePurchases lists pending and accepted orders the user bought or has to answer as an owner.
func (b *Backend) ActivePurchases(ctx context.Context, userID int64) ([]entity.Purchase, error) {
	var models []model.PurchaseModel
	err := b.visibleTo(ctx, userID).
		Where("status IN ?", activeStatuses).
		Order("created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active purchases")
	}

	return toPurchases(models), nil
}

// PreviousPurchases pages through finished orders, newest first. Pages start at 1.
func (b *Backend) PreviousPurchases(ctx context.Context, userID int64, page, perPage int) (*repository.PurchasePage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	var total int64
	if err := b.visibleTo(ctx, userID).Model(&model.PurchaseModel{}).
		Where("status IN ?", finishedStatuses).
		Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count previous purchases")
	}

	var models []model.PurchaseModel
	err := b.visibleTo(ctx, userID).
		Where("status IN ?", finishedStatuses).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list previous purchases")
	}

	return &repository.PurchasePage{
		Purchases: toPurchases(models),
		Page:      page,
		PerPage:   perPage,
		Total:     int(total),
		HasNext:   int64(page*perPage) < total,
	}, nil
}

// Purchase returns an order visible to the user.
func (b *Backend) Purchase(ctx context.Context, userID, purchaseID int64) (*entity.Purchase, error) {
	var m model.PurchaseModel
	if err := b.visibleTo(ctx, userID).First(&m, purchaseID).Error; err != nil {
		return nil, notFound(err, ErrPurchaseNotFound, "failed to find purchase")
	}

	purchase := toPurchaseDomain(&m)

	return &purchase, nil
}

// Respond records the owner's decision on a pending order. A rejection returns the stock.
func (b *Backend) Respond(ctx context.Context, ownerID, purchaseID int64, decision entity.Decision) (*entity.Purchase, error) {
	var m model.PurchaseModel
	err := b.tx(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&m, purchaseID).Error; err != nil {
			return notFound(err, ErrPurchaseNotFound, "failed to find purchase")
		}
		if _, err := b.ownedRestaurant(ctx, tx, ownerID, m.RestaurantID); err != nil {
			return err
		}
		if m.Status != string(entity.PurchasePending) {
			return ErrOrderNotPending
		}

		m.Status = string(entity.PurchaseAccepted)
		if decision == entity.DecisionReject {
			m.Status = string(entity.PurchaseRejected)
			err := tx.Model(&model.ListingModel{}).Where("id = ?", m.ListingID).
				Update("count", gorm.Expr("count + ?", m.Quantity)).Error
			if err != nil {
				return errors.Wrap(err, "failed to restock listing")
			}
		}
		m.UpdatedAt = b.now()

		return errors.Wrap(tx.Save(&m).Error, "failed to save purchase")
	})
	if err != nil {
		return nil, err
	}

	purchase := toPurchaseDomain(&m)

	return &purchase, nil
}

// HasRating reports whether the buyer already reviewed the order.
func (b *Backend) HasRating(ctx context.Context, userID, purchaseID int64) (bool, error) {
	if _, err := b.Purchase(ctx, userID, purchaseID); err != nil {
		return false, err
	}

	var count int64
	if err := b.db.WithContext(ctx).Model(&model.CommentModel{}).Where("purchase_id = ?", purchaseID).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check rating")
	}

	return count > 0, nil
}

// visibleTo scopes purchases to the buyer or the owner of the restaurant.
func (b *Backend) visibleTo(ctx context.Context, userID int64) *gorm.DB {
	owned := b.db.Model(&model.RestaurantModel{}).Select("id").Where("owner_id = ?", userID)

	return b.db.WithContext(ctx).Where(
		b.db.Where("user_id = ?", userID).Or("restaurant_id IN (?)", owned),
	)
}
