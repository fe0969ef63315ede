package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"freshdeal/config"
	deliveryhttp "freshdeal/internal/delivery/http"
	"freshdeal/internal/delivery/http/middleware"
	"freshdeal/internal/delivery/http/router/handler"
	"freshdeal/internal/domain/entity"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/domain/service"
	"freshdeal/internal/infra/api"
	"freshdeal/internal/infra/auth"
	"freshdeal/internal/infra/gateway"
	"freshdeal/internal/infra/persistence/stubdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

type backendClient struct {
	users       repository.UserRepository
	addresses   repository.AddressRepository
	restaurants repository.RestaurantRepository
	carts       repository.CartRepository
	purchases   repository.PurchaseRepository
}

func startBackend(t *testing.T) (*backendClient, http.Handler) {
	t.Helper()

	cfg := &config.Config{
		Stub: &config.StubConfig{
			Secret: "test-secret",
			DSN:    filepath.Join(t.TempDir(), "stub.db"),
			Seed:   true,
		},
	}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var server *deliveryhttp.Server
	app := fxtest.New(t,
		fx.Supply(cfg, logger),
		fx.Provide(
			func() service.CredentialHasher { return auth.NewBcryptHasherWithCost(bcrypt.MinCost) },
			auth.NewJWTService,
			stubdb.Open,
			middleware.NewAuthMiddleware,
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewRestaurantHandler,
			handler.NewCartHandler,
			handler.NewPurchaseHandler,
			deliveryhttp.NewServer,
		),
		fx.Populate(&server),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	client := gateway.NewClient(ts.URL, logger)

	return &backendClient{
		users:       api.NewUserRepository(client),
		addresses:   api.NewAddressRepository(client),
		restaurants: api.NewRestaurantRepository(client),
		carts:       api.NewCartRepository(client),
		purchases:   api.NewPurchaseRepository(client),
	}, server.Handler()
}

func (b *backendClient) login(t *testing.T, email string) string {
	t.Helper()

	token, err := b.users.Login(context.Background(), repository.Credentials{Email: email, Password: stubdb.DemoPassword})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	return token
}

func requireRejection(t *testing.T, err error, status int, message string) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.KindServerRejection, appErr.Kind())
	assert.Equal(t, status, appErr.HTTPCode())
	if message != "" {
		assert.Contains(t, appErr.Message(), message)
	}
}

func TestServer_Health(t *testing.T) {
	_, handler := startBackend(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_Login(t *testing.T) {
	b, _ := startBackend(t)
	ctx := context.Background()

	_, err := b.users.Login(ctx, repository.Credentials{Email: stubdb.DemoCustomerEmail, Password: "wrong"})
	requireRejection(t, err, http.StatusUnauthorized, "Invalid credentials")

	token, err := b.users.Login(ctx, repository.Credentials{PhoneNumber: "+905550000001", Password: stubdb.DemoPassword})
	require.NoError(t, err)

	profile, err := b.users.FetchProfile(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, stubdb.DemoCustomerEmail, profile.User.Email)
	require.Len(t, profile.Addresses, 1)
	assert.Equal(t, entity.OptimisticConfirmed, profile.Addresses[0].Status)
}

func TestServer_RegisterValidation(t *testing.T) {
	b, _ := startBackend(t)
	ctx := context.Background()

	err := b.users.Register(ctx, repository.Registration{Name: "New", Email: "new@freshdeal.local", Password: "123"})
	requireRejection(t, err, http.StatusBadRequest, "password must be at least 6")

	require.NoError(t, b.users.Register(ctx, repository.Registration{Name: "New", Email: "new@freshdeal.local", Password: "123456"}))

	err = b.users.Register(ctx, repository.Registration{Name: "Again", Email: "new@freshdeal.local", Password: "123456"})
	requireRejection(t, err, http.StatusConflict, "already registered")

	_, err = b.users.Login(ctx, repository.Credentials{Email: "new@freshdeal.local", Password: "123456"})
	require.NoError(t, err)
}

func TestServer_RequiresToken(t *testing.T) {
	b, _ := startBackend(t)

	_, err := b.carts.FetchCart(context.Background(), "")
	requireRejection(t, err, http.StatusUnauthorized, "Authorization header is missing")

	_, err = b.carts.FetchCart(context.Background(), "not-a-jwt")
	requireRejection(t, err, http.StatusUnauthorized, "Invalid or expired token")
}

func TestServer_OrderFlow(t *testing.T) {
	b, _ := startBackend(t)
	ctx := context.Background()
	customer := b.login(t, stubdb.DemoCustomerEmail)
	owner := b.login(t, stubdb.DemoOwnerEmail)

	nearby, err := b.restaurants.FetchByProximity(ctx, customer, repository.ProximityQuery{Latitude: 40.9869, Longitude: 29.0265, RadiusKm: 1})
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	require.NotNil(t, nearby[0].DistanceKm)

	listings, err := b.restaurants.FetchListings(ctx, customer, nearby[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, listings)
	listing := listings[0]

	item, err := b.carts.AddItem(ctx, customer, listing.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, nearby[0].ID, item.RestaurantID)

	otherListings, err := b.restaurants.FetchListings(ctx, customer, nearby[1].ID)
	require.NoError(t, err)
	_, err = b.carts.AddItem(ctx, customer, otherListings[0].ID, 1)
	requireRejection(t, err, http.StatusBadRequest, "same restaurant")

	purchases, err := b.purchases.CreateOrder(ctx, customer, repository.OrderRequest{PickupNotes: "after six"})
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, entity.PurchasePending, purchases[0].Status)
	assert.True(t, purchases[0].TotalPrice.Equal(listing.PickupPrice.Mul(decimal.NewFromInt(2))))

	cart, err := b.carts.FetchCart(ctx, customer)
	require.NoError(t, err)
	assert.Empty(t, cart)

	_, err = b.purchases.Respond(ctx, customer, purchases[0].ID, entity.DecisionAccept)
	requireRejection(t, err, http.StatusForbidden, "restaurant")

	active, err := b.purchases.FetchActive(ctx, owner)
	require.NoError(t, err)
	require.Len(t, active, 1)

	accepted, err := b.purchases.Respond(ctx, owner, purchases[0].ID, entity.DecisionAccept)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseAccepted, accepted.Status)

	detail, err := b.purchases.FetchDetail(ctx, customer, purchases[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseAccepted, detail.Status)

	page, err := b.purchases.FetchPrevious(ctx, customer, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.True(t, page.HasNext)
}

func TestServer_RestaurantManagement(t *testing.T) {
	b, _ := startBackend(t)
	ctx := context.Background()
	customer := b.login(t, stubdb.DemoCustomerEmail)
	owner := b.login(t, stubdb.DemoOwnerEmail)

	form := repository.RestaurantForm{
		Name:        "Üsküdar Börek",
		Category:    "Bakery",
		Latitude:    41.0226,
		Longitude:   29.0150,
		WorkingDays: []string{"Monday", "Tuesday"},
		Pickup:      true,
		Image:       &repository.Image{Filename: "borek.jpg", Content: []byte("jpeg")},
	}

	_, err := b.restaurants.CreateRestaurant(ctx, customer, form)
	requireRejection(t, err, http.StatusForbidden, "")

	created, err := b.restaurants.CreateRestaurant(ctx, owner, form)
	require.NoError(t, err)
	assert.Equal(t, "Üsküdar Börek", created.Name)
	assert.Equal(t, []string{"Monday", "Tuesday"}, created.WorkingDays)
	assert.Contains(t, created.ImageURL, "borek.jpg")

	fetched, err := b.restaurants.FetchRestaurant(ctx, customer, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	require.NoError(t, b.restaurants.DeleteRestaurant(ctx, owner, created.ID))
	_, err = b.restaurants.FetchRestaurant(ctx, customer, created.ID)
	requireRejection(t, err, http.StatusNotFound, "Restaurant not found")
}

func TestServer_AddressesAndFavorites(t *testing.T) {
	b, _ := startBackend(t)
	ctx := context.Background()
	customer := b.login(t, stubdb.DemoCustomerEmail)

	added, err := b.addresses.AddAddress(ctx, customer, entity.Address{
		ID: entity.NewTempAddressID(), Title: "Office", Street: "Bahariye Cd. 3", Latitude: 40.99, Longitude: 29.03,
	})
	require.NoError(t, err)
	assert.False(t, entity.IsTemporary(added.ID))
	require.NoError(t, b.addresses.RemoveAddress(ctx, customer, added.ID))

	require.NoError(t, b.users.AddFavorite(ctx, customer, 1))
	favorites, err := b.users.FetchFavorites(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, favorites)
	require.NoError(t, b.users.RemoveFavorite(ctx, customer, 1))

	stats, err := b.users.FetchStats(ctx, customer)
	require.NoError(t, err)
	assert.True(t, stats.MoneySaved.IsPositive())

	ranks, own, err := b.users.FetchRankings(ctx, customer)
	require.NoError(t, err)
	assert.Len(t, ranks, 1)
	require.NotNil(t, own)
	assert.Equal(t, 1, own.Rank)
}
