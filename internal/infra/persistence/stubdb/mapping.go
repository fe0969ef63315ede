package stubdb

import (
	"strconv"
	"strings"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/infra/persistence/model"

	"github.com/paulmach/orb"
)

func toUserDomain(m *model.UserModel) entity.User {
	return entity.User{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		PhoneNumber:   m.PhoneNumber,
		Role:          m.Role,
		EmailVerified: m.EmailVerified,
	}
}

func toAddressDomain(m *model.AddressModel) entity.Address {
	return entity.Address{
		ID:           strconv.FormatInt(m.ID, 10),
		Title:        m.Title,
		Street:       m.Street,
		Neighborhood: m.Neighborhood,
		District:     m.District,
		Province:     m.Province,
		Country:      m.Country,
		PostalCode:   m.PostalCode,
		ApartmentNo:  m.ApartmentNo,
		DoorNo:       m.DoorNo,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		Status:       entity.OptimisticConfirmed,
	}
}

func fromAddressDomain(userID int64, a entity.Address) *model.AddressModel {
	return &model.AddressModel{
		UserID:       userID,
		Title:        a.Title,
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
		District:     a.District,
		Province:     a.Province,
		Country:      a.Country,
		PostalCode:   a.PostalCode,
		ApartmentNo:  a.ApartmentNo,
		DoorNo:       a.DoorNo,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
	}
}

func toRestaurantDomain(m *model.RestaurantModel, listings int) entity.Restaurant {
	out := entity.Restaurant{
		ID:                  m.ID,
		OwnerID:             m.OwnerID,
		Name:                m.Name,
		Description:         m.Description,
		Location:            orb.Point{m.Longitude, m.Latitude},
		Category:            m.Category,
		WorkingDays:         splitDays(m.WorkingDays),
		WorkingHoursStart:   m.WorkingHoursStart,
		WorkingHoursEnd:     m.WorkingHoursEnd,
		ListingCount:        listings,
		RatingCount:         m.RatingCount,
		ImageURL:            m.ImageURL,
		Pickup:              m.Pickup,
		Delivery:            m.Delivery,
		MaxDeliveryDistance: m.MaxDeliveryDistance,
		DeliveryFee:         m.DeliveryFee,
		MinOrderAmount:      m.MinOrderAmount,
	}
	if m.RatingCount > 0 {
		rating := float64(m.RatingSum) / float64(m.RatingCount)
		out.Rating = &rating
	}
	for i := range m.Comments {
		c := &m.Comments[i]
		out.Comments = append(out.Comments, entity.Comment{
			ID:         c.ID,
			UserID:     c.UserID,
			PurchaseID: c.PurchaseID,
			Comment:    c.Comment,
			Rating:     c.Rating,
			Timestamp:  c.CreatedAt,
		})
	}

	return out
}

func toListingDomain(m *model.ListingModel) entity.Listing {
	return entity.Listing{
		ID:            m.ID,
		RestaurantID:  m.RestaurantID,
		Title:         m.Title,
		Description:   m.Description,
		ImageURL:      m.ImageURL,
		OriginalPrice: m.OriginalPrice,
		PickupPrice:   m.PickupPrice,
		DeliveryPrice: m.DeliveryPrice,
		FreshScore:    m.FreshScore,
		ConsumeWithin: m.ConsumeWithin,
		Count:         m.Count,
	}
}

func toCartItemDomain(m *model.CartItemModel) entity.CartItem {
	item := entity.CartItem{
		ListingID:    m.ListingID,
		RestaurantID: m.RestaurantID,
		Count:        m.Count,
	}
	if m.Listing != nil {
		item.Title = m.Listing.Title
	}

	return item
}

func toPurchaseDomain(m *model.PurchaseModel) entity.Purchase {
	return entity.Purchase{
		ID:              m.ID,
		UserID:          m.UserID,
		RestaurantID:    m.RestaurantID,
		ListingID:       m.ListingID,
		ListingTitle:    m.ListingTitle,
		Quantity:        m.Quantity,
		TotalPrice:      m.TotalPrice,
		Status:          entity.PurchaseStatus(m.Status),
		IsDelivery:      m.IsDelivery,
		DeliveryAddress: m.DeliveryAddress,
		DeliveryNotes:   m.DeliveryNotes,
		CompletionImage: m.CompletionImage,
		CreatedAt:       m.CreatedAt,
	}
}

func toPurchases(models []model.PurchaseModel) []entity.Purchase {
	out := make([]entity.Purchase, 0, len(models))
	for i := range models {
		out = append(out, toPurchaseDomain(&models[i]))
	}

	return out
}

func splitDays(days string) []string {
	if days == "" {
		return nil
	}

	return strings.Split(days, ",")
}
