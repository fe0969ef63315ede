package api

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/infra/api/dto"
	"freshdeal/internal/infra/gateway"
)

const restaurantsPath = "/restaurants"

type restaurantRepository struct {
	client Requester
}

// NewRestaurantRepository creates a new restaurant repository.
func NewRestaurantRepository(client Requester) repository.RestaurantRepository {
	return &restaurantRepository{client: client}
}

func (r *restaurantRepository) FetchByProximity(ctx context.Context, token string, query repository.ProximityQuery) ([]entity.Restaurant, error) {
	var resp dto.RestaurantsResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getRestaurantsByProximity",
		Method:    http.MethodPost,
		Path:      restaurantsPath + "/proximity",
		Body: dto.ProximityRequest{
			Latitude:  query.Latitude,
			Longitude: query.Longitude,
			Radius:    query.RadiusKm,
		},
		Token: token,
	}, &resp); err != nil {
		return nil, err
	}

	return dto.ToRestaurants(resp.Restaurants), nil
}

func (r *restaurantRepository) FetchRestaurant(ctx context.Context, token string, restaurantID int64) (*entity.Restaurant, error) {
	var resp dto.Restaurant
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getRestaurant",
		Method:    http.MethodGet,
		Path:      idPath(restaurantsPath, restaurantID),
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	restaurant := resp.ToEntity()

	return &restaurant, nil
}

func (r *restaurantRepository) FetchAll(ctx context.Context, token string) ([]entity.Restaurant, error) {
	var resp []dto.Restaurant
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getAllRestaurants",
		Method:    http.MethodGet,
		Path:      restaurantsPath,
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	return dto.ToRestaurants(resp), nil
}

func (r *restaurantRepository) CreateRestaurant(ctx context.Context, token string, form repository.RestaurantForm) (*entity.Restaurant, error) {
	var resp dto.RestaurantResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "createRestaurant",
		Method:    http.MethodPost,
		Path:      restaurantsPath,
		Form:      restaurantMultipart(form),
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	restaurant := resp.Restaurant.ToEntity()

	return &restaurant, nil
}

func (r *restaurantRepository) UpdateRestaurant(ctx context.Context, token string, restaurantID int64, form repository.RestaurantForm) (*entity.Restaurant, error) {
	var resp dto.RestaurantResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "updateRestaurant",
		Method:    http.MethodPut,
		Path:      idPath(restaurantsPath, restaurantID),
		Form:      restaurantMultipart(form),
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	restaurant := resp.Restaurant.ToEntity()

	return &restaurant, nil
}

func (r *restaurantRepository) DeleteRestaurant(ctx context.Context, token string, restaurantID int64) error {
	return r.client.Do(ctx, gateway.Request{
		Operation: "deleteRestaurant",
		Method:    http.MethodDelete,
		Path:      idPath(restaurantsPath, restaurantID),
		Token:     token,
	}, nil)
}

func (r *restaurantRepository) AddComment(ctx context.Context, token string, restaurantID int64, input repository.CommentInput) error {
	return r.client.Do(ctx, gateway.Request{
		Operation: "addRestaurantComment",
		Method:    http.MethodPost,
		Path:      idPath(restaurantsPath, restaurantID, "comments"),
		Body: dto.CommentRequest{
			Comment:    input.Comment,
			Rating:     int(math.Round(input.Rating)),
			PurchaseID: input.PurchaseID,
		},
		Token: token,
	}, nil)
}

func (r *restaurantRepository) FetchListings(ctx context.Context, token string, restaurantID int64) ([]entity.Listing, error) {
	var resp dto.ListingsResponse
	if err := r.client.Do(ctx, gateway.Request{
		Operation: "getListings",
		Method:    http.MethodGet,
		Path:      idPath(restaurantsPath, restaurantID, "listings"),
		Token:     token,
	}, &resp); err != nil {
		return nil, err
	}

	listings := make([]entity.Listing, 0, len(resp.Listings))
	for _, l := range resp.Listings {
		listings = append(listings, l.ToEntity())
	}

	return listings, nil
}

func restaurantMultipart(form repository.RestaurantForm) *gateway.MultipartForm {
	multipart := &gateway.MultipartForm{}
	multipart.Set("restaurantName", form.Name)
	multipart.Set("restaurantDescription", form.Description)
	multipart.Set("category", form.Category)
	multipart.Set("latitude", strconv.FormatFloat(form.Latitude, 'f', -1, 64))
	multipart.Set("longitude", strconv.FormatFloat(form.Longitude, 'f', -1, 64))
	multipart.Set("workingDays", form.WorkingDays...)
	multipart.Set("workingHoursStart", form.WorkingHoursStart)
	multipart.Set("workingHoursEnd", form.WorkingHoursEnd)
	multipart.Set("pickup", strconv.FormatBool(form.Pickup))
	multipart.Set("delivery", strconv.FormatBool(form.Delivery))
	if form.MaxDeliveryDistance != nil {
		multipart.Set("maxDeliveryDistance", strconv.FormatFloat(*form.MaxDeliveryDistance, 'f', -1, 64))
	}
	if form.DeliveryFee.Valid {
		multipart.Set("deliveryFee", form.DeliveryFee.Decimal.String())
	}
	if form.MinOrderAmount.Valid {
		multipart.Set("minOrderAmount", form.MinOrderAmount.Decimal.String())
	}
	if form.Image != nil {
		multipart.Files = append(multipart.Files, gateway.FilePart{
			Field:    "image",
			Filename: form.Image.Filename,
			Content:  form.Image.Content,
		})
	}

	return multipart
}
