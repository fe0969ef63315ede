package stubdb

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"freshdeal/config"
	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/infra/auth"
	"freshdeal/internal/infra/persistence/model"
	"freshdeal/internal/infra/persistence/sqlite"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newSeededBackend(t *testing.T) *Backend {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := sqlite.Connect(filepath.Join(t.TempDir(), "stub.db"), cfg, logger, Models()...)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	backend := New(db, auth.NewBcryptHasherWithCost(bcrypt.MinCost))
	seeded, err := backend.Seed(context.Background())
	require.NoError(t, err)
	require.True(t, seeded)

	return backend
}

func login(t *testing.T, b *Backend, email string) entity.User {
	t.Helper()

	user, err := b.Authenticate(context.Background(), repository.Credentials{Email: email, Password: DemoPassword})
	require.NoError(t, err)

	return user
}

func TestSeed_OnlyOnce(t *testing.T) {
	b := newSeededBackend(t)

	seeded, err := b.Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestAccounts(t *testing.T) {
	ctx := context.Background()
	b := newSeededBackend(t)

	t.Run("register normalizes email and role", func(t *testing.T) {
		user, err := b.Register(ctx, repository.Registration{
			Name: " Ayşe ", Email: " Ayse@Example.COM ", Password: "secret123", Role: "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, "ayse@example.com", user.Email)
		assert.Equal(t, "Ayşe", user.Name)
		assert.Equal(t, entity.RoleCustomer, user.Role)

		_, err = b.Register(ctx, repository.Registration{Name: "Other", Email: "ayse@example.com", Password: "x"})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("authenticate by phone", func(t *testing.T) {
		user, err := b.Authenticate(ctx, repository.Credentials{PhoneNumber: "+905550000002", Password: DemoPassword})
		require.NoError(t, err)
		assert.Equal(t, DemoOwnerEmail, user.Email)
		assert.Equal(t, entity.RoleRestaurant, user.Role)
	})

	t.Run("wrong password and unknown user look the same", func(t *testing.T) {
		_, err := b.Authenticate(ctx, repository.Credentials{Email: DemoCustomerEmail, Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = b.Authenticate(ctx, repository.Credentials{Email: "ghost@freshdeal.local", Password: DemoPassword})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("profile update flow", func(t *testing.T) {
		user := login(t, b, DemoCustomerEmail)

		require.NoError(t, b.UpdateUsername(ctx, user.ID, "Renamed"))
		assert.ErrorIs(t, b.UpdateEmail(ctx, user.ID, "wrong@freshdeal.local", "new@freshdeal.local"), ErrEmailMismatch)
		assert.ErrorIs(t, b.UpdateEmail(ctx, user.ID, DemoCustomerEmail, DemoOwnerEmail), ErrEmailTaken)
		require.NoError(t, b.UpdateEmail(ctx, user.ID, DemoCustomerEmail, "new@freshdeal.local"))
		assert.ErrorIs(t, b.UpdatePassword(ctx, user.ID, "bad", "next"), ErrWrongPassword)

		profile, err := b.Profile(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", profile.User.Name)
		assert.Equal(t, "new@freshdeal.local", profile.User.Email)
		assert.False(t, profile.User.EmailVerified)
		require.Len(t, profile.Addresses, 1)
		assert.Equal(t, "Home", profile.Addresses[0].Title)
	})
}

func TestAuthenticate_UpgradesWeakHash(t *testing.T) {
	ctx := context.Background()
	seeded := newSeededBackend(t)
	b := New(seeded.db, auth.NewBcryptHasherWithCost(bcrypt.MinCost+1))

	storedCost := func() int {
		var user model.UserModel
		require.NoError(t, b.db.WithContext(ctx).Where("email = ?", DemoCustomerEmail).First(&user).Error)
		cost, err := bcrypt.Cost([]byte(user.PasswordHash))
		require.NoError(t, err)

		return cost
	}
	require.Equal(t, bcrypt.MinCost, storedCost())

	_, err := b.Authenticate(ctx, repository.Credentials{Email: DemoCustomerEmail, Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, bcrypt.MinCost, storedCost())

	login(t, b, DemoCustomerEmail)
	assert.Equal(t, bcrypt.MinCost+1, storedCost())

	login(t, b, DemoCustomerEmail)
}

func TestAddresses(t *testing.T) {
	ctx := context.Background()
	b := newSeededBackend(t)
	user := login(t, b, DemoCustomerEmail)

	added, err := b.AddAddress(ctx, user.ID, entity.Address{ID: "temp-1", Title: "Office", Street: "Bahariye Cd. 3", Latitude: 40.99, Longitude: 29.03})
	require.NoError(t, err)
	assert.False(t, entity.IsTemporary(added.ID))
	assert.Equal(t, entity.OptimisticConfirmed, added.Status)

	require.NoError(t, b.RemoveAddress(ctx, user.ID, added.ID))
	assert.ErrorIs(t, b.RemoveAddress(ctx, user.ID, added.ID), ErrAddressNotFound)
	assert.ErrorIs(t, b.RemoveAddress(ctx, user.ID, "temp-1"), ErrInvalidAddressID)
}

func TestNearby(t *testing.T) {
	b := newSeededBackend(t)

	restaurants, err := b.Nearby(context.Background(), 40.9869, 29.0265, 1)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "Moda Bakery", restaurants[0].Name)
	assert.Equal(t, "Kadıköy Meze", restaurants[1].Name)
	require.NotNil(t, restaurants[0].DistanceKm)
	assert.InDelta(t, 0, *restaurants[0].DistanceKm, 0.001)
	assert.Less(t, *restaurants[0].DistanceKm, *restaurants[1].DistanceKm)
	assert.Equal(t, 2, restaurants[0].ListingCount)

	all, err := b.Nearby(context.Background(), 40.9869, 29.0265, 10)
	require.NoError(t, err)
	assert.Len(t, all, len(seedRestaurants))
}

func TestRestaurantOwnership(t *testing.T) {
	ctx := context.Background()
	b := newSeededBackend(t)
	owner := login(t, b, DemoOwnerEmail)
	customer := login(t, b, DemoCustomerEmail)

	form := repository.RestaurantForm{
		Name: "Test Kitchen", Latitude: 41, Longitude: 29, WorkingDays: []string{"Monday", "Friday"},
		Pickup: true, Image: &repository.Image{Filename: "front.png", Content: []byte{1}},
	}
	created, err := b.CreateRestaurant(ctx, owner.ID, form)
	require.NoError(t, err)
	assert.Equal(t, []string{"Monday", "Friday"}, created.WorkingDays)
	assert.Contains(t, created.ImageURL, "front.png")

	form.Name = "Hijacked"
	_, err = b.UpdateRestaurant(ctx, customer.ID, created.ID, form)
	assert.ErrorIs(t, err, ErrForbidden)

	form.Name = "Renamed Kitchen"
	updated, err := b.UpdateRestaurant(ctx, owner.ID, created.ID, form)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Kitchen", updated.Name)

	assert.ErrorIs(t, b.DeleteRestaurant(ctx, customer.ID, created.ID), ErrForbidden)
	require.NoError(t, b.DeleteRestaurant(ctx, owner.ID, created.ID))
	_, err = b.Restaurant(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestCart(t *testing.T) {
	ctx := context.Background()
	b := newSeededBackend(t)
	user := login(t, b, DemoCustomerEmail)

	// listings 1 and 2 belong to the first restaurant, 3 to the second
	item, err := b.PutCartItem(ctx, user.ID, 1, 2, false)
	require.NoError(t, err)
	assert.Equal(t, "Pastry Box", item.Title)

	_, err = b.PutCartItem(ctx, user.ID, 3, 1, false)
	assert.ErrorIs(t, err, ErrMixedCart)

	_, err = b.PutCartItem(ctx, user.ID, 2, 99, false)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	_, err = b.PutCartItem(ctx, user.ID, 2, 1, true)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	_, err = b.PutCartItem(ctx, user.ID, 1, 3, true)
	require.NoError(t, err)

	cart, err := b.Cart(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Count)

	_, err = b.PutCartItem(ctx, user.ID, 1, 0, true)
	require.NoError(t, err)
	cart, err = b.Cart(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart)

	assert.ErrorIs(t, b.RemoveCartItem(ctx, user.ID, 1), ErrCartItemNotFound)
	require.NoError(t, b.ResetCart(ctx, user.ID))
}

func TestOrderLifecycle(t *testing.T) {
	ctx := context.Background()
	b := newSeededBackend(t)
	customer := login(t, b, DemoCustomerEmail)
	owner := login(t, b, DemoOwnerEmail)

	_, err := b.CreateOrder(ctx, customer.ID, repository.OrderRequest{})
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = b.PutCartItem(ctx, customer.ID, 1, 2, false)
	require.NoError(t, err)

	_, err = b.CreateOrder(ctx, customer.ID, repository.OrderRequest{IsDelivery: true})
	assert.ErrorIs(t, err, ErrDeliveryAddressMissing)

	purchases, err := b.CreateOrder(ctx, customer.ID, repository.OrderRequest{
		IsDelivery: true, DeliveryAddress: "Moda Cd. 12 Turkey", DeliveryNotes: "ring twice",
	})
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	order := purchases[0]
	assert.Equal(t, entity.PurchasePending, order.Status)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("170")))
	assert.Equal(t, "ring twice", order.DeliveryNotes)

	cart, err := b.Cart(ctx, customer.ID)
	require.NoError(t, err)
	assert.Empty(t, cart)

	listings, err := b.Listings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, listings[0].Count)

	active, err := b.ActivePurchases(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, order.ID, active[0].ID)

	_, err = b.Respond(ctx, customer.ID, order.ID, entity.DecisionAccept)
	assert.ErrorIs(t, err, ErrForbidden)

	rejected, err := b.Respond(ctx, owner.ID, order.ID, entity.DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseRejected, rejected.Status)

	_, err = b.Respond(ctx, owner.ID, order.ID, entity.DecisionAccept)
	assert.ErrorIs(t, err, ErrOrderNotPending)

	listings, err = b.Listings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, listings[0].Count)
}

func TestOrder_FulfillmentSupport(t *testing.T) {
	ctx := context.Background()
	b := newSeededBackend(t)
	customer := login(t, b, DemoCustomerEmail)

	// listing 4 belongs to a delivery-only restaurant
	_, err := b.PutCartItem(ctx, customer.ID, 4, 1, false)
	require.NoError(t, err)

	_, err = b.CreateOrder(ctx, customer.ID, repository.OrderRequest{})
	assert.ErrorIs(t, err, ErrPickupUnsupported)
}

func TestPreviousPurchases_Paging(t *testing.T) {
	b := newSeededBackend(t)
	customer := login(t, b, DemoCustomerEmail)

	first, err := b.PreviousPurchases(context.Background(), customer.ID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Total)
	assert.True(t, first.HasNext)
	require.Len(t, first.Purchases, 1)
	assert.Equal(t, "Pastry Box", first.Purchases[0].ListingTitle)

	second, err := b.PreviousPurchases(context.Background(), customer.ID, 2, 1)
	require.NoError(t, err)
	assert.False(t, second.HasNext)
	assert.Equal(t, "Sourdough Loaf", second.Purchases[0].ListingTitle)
}

func TestComments(t *testing.T) {
	ctx := context.Background()
	b := newSeededBackend(t)
	customer := login(t, b, DemoCustomerEmail)

	page, err := b.PreviousPurchases(ctx, customer.ID, 1, 10)
	require.NoError(t, err)
	purchase := page.Purchases[0]

	rated, err := b.HasRating(ctx, customer.ID, purchase.ID)
	require.NoError(t, err)
	assert.False(t, rated)

	input := repository.CommentInput{PurchaseID: purchase.ID, Comment: "great", Rating: 4.6}
	require.NoError(t, b.AddComment(ctx, customer.ID, purchase.RestaurantID, input))
	assert.ErrorIs(t, b.AddComment(ctx, customer.ID, purchase.RestaurantID, input), ErrAlreadyRated)

	rated, err = b.HasRating(ctx, customer.ID, purchase.ID)
	require.NoError(t, err)
	assert.True(t, rated)

	restaurant, err := b.Restaurant(ctx, purchase.RestaurantID)
	require.NoError(t, err)
	require.NotNil(t, restaurant.Rating)
	assert.InDelta(t, 5, *restaurant.Rating, 0.001)
	require.Len(t, restaurant.Comments, 1)
	assert.Equal(t, "great", restaurant.Comments[0].Comment)
}

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	b := newSeededBackend(t)
	customer := login(t, b, DemoCustomerEmail)

	require.NoError(t, b.AddFavorite(ctx, customer.ID, 2))
	require.NoError(t, b.AddFavorite(ctx, customer.ID, 2))
	assert.ErrorIs(t, b.AddFavorite(ctx, customer.ID, 404), ErrRestaurantNotFound)

	ids, err := b.Favorites(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	require.NoError(t, b.RemoveFavorite(ctx, customer.ID, 2))
	ids, err = b.Favorites(ctx, customer.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestGamification(t *testing.T) {
	ctx := context.Background()
	b := newSeededBackend(t)
	customer := login(t, b, DemoCustomerEmail)
	owner := login(t, b, DemoOwnerEmail)

	stats, err := b.Stats(ctx, customer.ID)
	require.NoError(t, err)
	assert.True(t, stats.MoneySaved.Equal(decimal.NewFromInt(165)), stats.MoneySaved.String())
	assert.True(t, stats.FoodSaved.Equal(decimal.RequireFromString("0.8")), stats.FoodSaved.String())

	achievements, err := b.Achievements(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, achievements, len(achievementCatalog))
	assert.True(t, achievements[0].Unlocked)
	assert.NotNil(t, achievements[0].EarnedAt)
	assert.False(t, achievements[1].Unlocked)

	ranks, own, err := b.Rankings(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, ranks, 1)
	require.NotNil(t, own)
	assert.Equal(t, 1, own.Rank)

	_, own, err = b.Rankings(ctx, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, own)
}
