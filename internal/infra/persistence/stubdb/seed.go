package stubdb

import (
	"context"
	"time"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Demo accounts created by Seed.
const (
	DemoCustomerEmail = "demo@freshdeal.local"
	DemoOwnerEmail    = "owner@freshdeal.local"
	DemoPassword      = "freshdeal123"
)

type seedListing struct {
	title                   string
	original, pickup, deliv string
	freshScore              float64
	consumeWithin, count    int
}

type seedRestaurant struct {
	name, category, description string
	lat, lon                    float64
	pickup, delivery            bool
	maxDistance                 float64
	fee, minOrder               string
	listings                    []seedListing
}

var seedRestaurants = []seedRestaurant{
	{
		name: "Moda Bakery", category: "Bakery", description: "Bread and pastries baked this morning",
		lat: 40.9869, lon: 29.0265, pickup: true, delivery: true, maxDistance: 5, fee: "15.00", minOrder: "60.00",
		listings: []seedListing{
			{title: "Pastry Box", original: "180.00", pickup: "70.00", deliv: "85.00", freshScore: 88, consumeWithin: 12, count: 6},
			{title: "Sourdough Loaf", original: "90.00", pickup: "35.00", deliv: "45.00", freshScore: 92, consumeWithin: 24, count: 4},
		},
	},
	{
		name: "Kadıköy Meze", category: "Turkish", description: "Cold starters and salads",
		lat: 40.9903, lon: 29.0291, pickup: true, delivery: false,
		listings: []seedListing{
			{title: "Meze Platter", original: "320.00", pickup: "120.00", deliv: "140.00", freshScore: 75, consumeWithin: 6, count: 3},
		},
	},
	{
		name: "Yeldeğirmeni Greens", category: "Vegan", description: "Bowls and wraps",
		lat: 40.9958, lon: 29.0301, pickup: false, delivery: true, maxDistance: 3, fee: "20.00", minOrder: "80.00",
		listings: []seedListing{
			{title: "Buddha Bowl", original: "210.00", pickup: "90.00", deliv: "100.00", freshScore: 81, consumeWithin: 8, count: 5},
		},
	},
	{
		name: "Fenerbahçe Fish", category: "Seafood", description: "Catch of the day",
		lat: 40.9707, lon: 29.0418, pickup: true, delivery: true, maxDistance: 8, fee: "25.00", minOrder: "150.00",
		listings: []seedListing{
			{title: "Grilled Fish Menu", original: "450.00", pickup: "190.00", deliv: "220.00", freshScore: 70, consumeWithin: 4, count: 2},
		},
	},
}

// Seed fills an empty database with demo accounts, restaurants and a short
// order history. It reports false when data was already present.
func (b *Backend) Seed(ctx context.Context) (bool, error) {
	var users int64
	if err := b.db.WithContext(ctx).Model(&model.UserModel{}).Count(&users).Error; err != nil {
		return false, errors.Wrap(err, "failed to count users")
	}
	if users > 0 {
		return false, nil
	}

	hash, err := b.hasher.HashPassword(DemoPassword)
	if err != nil {
		return false, err
	}

	err = b.tx(ctx, func(tx *gorm.DB) error {
		customer := &model.UserModel{
			Name: "Demo Customer", Email: DemoCustomerEmail, PhoneNumber: "+905550000001",
			Role: entity.RoleCustomer, PasswordHash: hash, EmailVerified: true,
		}
		owner := &model.UserModel{
			Name: "Demo Owner", Email: DemoOwnerEmail, PhoneNumber: "+905550000002",
			Role: entity.RoleRestaurant, PasswordHash: hash, EmailVerified: true,
		}
		if err := tx.Create([]*model.UserModel{customer, owner}).Error; err != nil {
			return errors.Wrap(err, "failed to seed users")
		}

		home := &model.AddressModel{
			UserID: customer.ID, Title: "Home", Street: "Moda Cd. 12", Neighborhood: "Caferağa",
			District: "Kadıköy", Province: "Istanbul", Country: "Turkey", PostalCode: "34710",
			ApartmentNo: "4", DoorNo: "9", Latitude: 40.9862, Longitude: 29.0254,
		}
		if err := tx.Create(home).Error; err != nil {
			return errors.Wrap(err, "failed to seed address")
		}

		var history []model.ListingModel
		for _, sr := range seedRestaurants {
			restaurant := &model.RestaurantModel{
				OwnerID: owner.ID, Name: sr.name, Description: sr.description, Category: sr.category,
				Latitude: sr.lat, Longitude: sr.lon,
				WorkingDays:       "Monday,Tuesday,Wednesday,Thursday,Friday,Saturday",
				WorkingHoursStart: "09:00", WorkingHoursEnd: "22:00",
				Pickup: sr.pickup, Delivery: sr.delivery,
			}
			if sr.delivery {
				maxDistance := sr.maxDistance
				restaurant.MaxDeliveryDistance = &maxDistance
				restaurant.DeliveryFee = decimal.NewNullDecimal(decimal.RequireFromString(sr.fee))
				restaurant.MinOrderAmount = decimal.NewNullDecimal(decimal.RequireFromString(sr.minOrder))
			}
			if err := tx.Create(restaurant).Error; err != nil {
				return errors.Wrap(err, "failed to seed restaurant")
			}

			for _, sl := range sr.listings {
				listing := &model.ListingModel{
					RestaurantID:  restaurant.ID,
					Title:         sl.title,
					OriginalPrice: decimal.RequireFromString(sl.original),
					PickupPrice:   decimal.RequireFromString(sl.pickup),
					DeliveryPrice: decimal.RequireFromString(sl.deliv),
					FreshScore:    sl.freshScore,
					ConsumeWithin: sl.consumeWithin,
					Count:         sl.count,
				}
				if err := tx.Create(listing).Error; err != nil {
					return errors.Wrap(err, "failed to seed listing")
				}
				history = append(history, *listing)
			}
		}

		now := b.now()
		for i, listing := range history[:2] {
			at := now.Add(-time.Duration(i+1) * 48 * time.Hour)
			purchase := &model.PurchaseModel{
				UserID:       customer.ID,
				RestaurantID: listing.RestaurantID,
				ListingID:    listing.ID,
				ListingTitle: listing.Title,
				Quantity:     1,
				TotalPrice:   listing.PickupPrice,
				SavedAmount:  listing.OriginalPrice.Sub(listing.PickupPrice),
				Status:       string(entity.PurchaseCompleted),
				CreatedAt:    at,
				UpdatedAt:    at,
			}
			if err := tx.Create(purchase).Error; err != nil {
				return errors.Wrap(err, "failed to seed purchase")
			}
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
