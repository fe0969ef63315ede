package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"freshdeal/internal/delivery/http/response"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/api/dto"
	"freshdeal/internal/infra/persistence/stubdb"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const maxImageSize = 5 << 20

// restaurantForm is the multipart body of restaurant create and update.
type restaurantForm struct {
	Name                string   `form:"restaurantName" json:"restaurantName" validate:"required"`
	Description         string   `form:"restaurantDescription" json:"restaurantDescription"`
	Category            string   `form:"category" json:"category"`
	Latitude            float64  `form:"latitude" json:"latitude" validate:"latitude"`
	Longitude           float64  `form:"longitude" json:"longitude" validate:"longitude"`
	WorkingDays         []string `form:"workingDays" json:"workingDays"`
	WorkingHoursStart   string   `form:"workingHoursStart" json:"workingHoursStart"`
	WorkingHoursEnd     string   `form:"workingHoursEnd" json:"workingHoursEnd"`
	Pickup              bool     `form:"pickup" json:"pickup"`
	Delivery            bool     `form:"delivery" json:"delivery"`
	MaxDeliveryDistance string   `form:"maxDeliveryDistance" json:"maxDeliveryDistance"`
	DeliveryFee         string   `form:"deliveryFee" json:"deliveryFee"`
	MinOrderAmount      string   `form:"minOrderAmount" json:"minOrderAmount"`
}

// RestaurantHandler serves restaurant, listing and comment routes.
type RestaurantHandler struct {
	backend *stubdb.Backend
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(backend *stubdb.Backend) *RestaurantHandler {
	return &RestaurantHandler{backend: backend}
}

// Proximity lists the restaurants around a coordinate, closest first.
func (h *RestaurantHandler) Proximity(c echo.Context) error {
	var req dto.ProximityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	restaurants, err := h.backend.Nearby(c.Request().Context(), req.Latitude, req.Longitude, req.Radius)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]dto.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, dto.FromRestaurant(r))
	}

	return response.OK(c, dto.RestaurantsResponse{Restaurants: out})
}

// List returns every restaurant as a bare array.
func (h *RestaurantHandler) List(c echo.Context) error {
	restaurants, err := h.backend.Restaurants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]dto.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, dto.FromRestaurant(r))
	}

	return response.OK(c, out)
}

// Get returns one restaurant with its comments as a bare object.
func (h *RestaurantHandler) Get(c echo.Context) error {
	restaurantID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	restaurant, err := h.backend.Restaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.FromRestaurant(*restaurant))
}

func (h *RestaurantHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	form, err := readRestaurantForm(c)
	if err != nil {
		return err
	}

	restaurant, err := h.backend.CreateRestaurant(c.Request().Context(), userID, *form)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, dto.RestaurantResponse{Restaurant: dto.FromRestaurant(*restaurant)})
}

func (h *RestaurantHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	restaurantID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	form, err := readRestaurantForm(c)
	if err != nil {
		return err
	}

	restaurant, err := h.backend.UpdateRestaurant(c.Request().Context(), userID, restaurantID, *form)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.RestaurantResponse{Restaurant: dto.FromRestaurant(*restaurant)})
}

func (h *RestaurantHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	restaurantID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.backend.DeleteRestaurant(c.Request().Context(), userID, restaurantID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Restaurant deleted")
}

// AddComment rates a restaurant after a purchase.
func (h *RestaurantHandler) AddComment(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	restaurantID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.backend.AddComment(c.Request().Context(), userID, restaurantID, repository.CommentInput{
		PurchaseID: req.PurchaseID,
		Comment:    req.Comment,
		Rating:     float64(req.Rating),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Comment added")
}

func (h *RestaurantHandler) Listings(c echo.Context) error {
	restaurantID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	listings, err := h.backend.Listings(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]dto.Listing, 0, len(listings))
	for _, l := range listings {
		out = append(out, dto.FromListing(l))
	}

	return response.OK(c, dto.ListingsResponse{Listings: out})
}

// readRestaurantForm decodes and validates the multipart restaurant fields.
func readRestaurantForm(c echo.Context) (*repository.RestaurantForm, error) {
	var req restaurantForm
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}
	if !req.Pickup && !req.Delivery {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Restaurant must offer pickup or delivery")
	}

	form := &repository.RestaurantForm{
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		WorkingDays:       req.WorkingDays,
		WorkingHoursStart: req.WorkingHoursStart,
		WorkingHoursEnd:   req.WorkingHoursEnd,
		Pickup:            req.Pickup,
		Delivery:          req.Delivery,
	}

	if v := strings.TrimSpace(req.MaxDeliveryDistance); v != "" {
		distance, err := strconv.ParseFloat(v, 64)
		if err != nil || distance < 0 {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid maxDeliveryDistance")
		}
		form.MaxDeliveryDistance = &distance
	}

	var err error
	if form.DeliveryFee, err = parseAmount(req.DeliveryFee); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid deliveryFee")
	}
	if form.MinOrderAmount, err = parseAmount(req.MinOrderAmount); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid minOrderAmount")
	}

	if form.Image, err = readImage(c); err != nil {
		return nil, err
	}

	return form, nil
}

func parseAmount(v string) (decimal.NullDecimal, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.NullDecimal{}, nil
	}

	amount, err := decimal.NewFromString(v)
	if err != nil || amount.IsNegative() {
		return decimal.NullDecimal{}, errors.Errorf("invalid amount %q", v)
	}

	return decimal.NewNullDecimal(amount), nil
}

// readImage returns the optional "image" file part.
func readImage(c echo.Context) (*repository.Image, error) {
	header, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid image")
	}
	if header.Size > maxImageSize {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Image is too large")
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image")
	}

	return &repository.Image{Filename: header.Filename, Content: content}, nil
}
