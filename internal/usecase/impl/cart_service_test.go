package impl

import (
	"context"
	"testing"

	"freshdeal/internal/domain/entity"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/errors"
	mockRepo "freshdeal/internal/mocks/repository"
	"freshdeal/internal/store"
	"freshdeal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// echoCartRepo makes the mock confirm every write with the requested count.
func echoCartRepo(repo *mockRepo.MockCartRepository, restaurantID int64) {
	repo.EXPECT().AddItem(mock.Anything, testToken, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, listingID int64, count int) (*entity.CartItem, error) {
			return &entity.CartItem{ListingID: listingID, RestaurantID: restaurantID, Count: count}, nil
		}).Maybe()
	repo.EXPECT().UpdateItem(mock.Anything, testToken, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, listingID int64, count int) (*entity.CartItem, error) {
			return &entity.CartItem{ListingID: listingID, RestaurantID: restaurantID, Count: count}, nil
		}).Maybe()
	repo.EXPECT().RemoveItem(mock.Anything, testToken, mock.Anything).Return(nil).Maybe()
}

func TestCartService_NetCountsForOneRestaurant(t *testing.T) {
	repo := mockRepo.NewMockCartRepository(t)
	echoCartRepo(repo, 1)
	st := newTestStore()
	srv := NewCartService(newSession(t, testToken), repo, st, discardLogger())
	ctx := context.Background()

	a := entity.Listing{ID: 10, RestaurantID: 1, Count: 10, Title: "Bagel"}
	b := entity.Listing{ID: 11, RestaurantID: 1, Count: 10, Title: "Soup"}

	type step struct {
		listing entity.Listing
		add     bool
	}
	steps := []step{
		{a, true}, {a, true}, {b, true}, {a, true}, {a, false},
		{b, false}, {b, false}, {a, true}, {b, true},
	}

	net := map[int64]int{}
	for _, s := range steps {
		if s.add {
			_, err := srv.AddToCart(ctx, usecase.AddToCartInput{Listing: s.listing})
			require.NoError(t, err)
			net[s.listing.ID]++

			continue
		}

		err := srv.RemoveFromCart(ctx, s.listing.ID)
		if net[s.listing.ID] == 0 {
			assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))

			continue
		}
		require.NoError(t, err)
		net[s.listing.ID]--
	}

	cart := st.State().Cart
	assert.Equal(t, 3, cart.Count(a.ID))
	assert.Equal(t, 1, cart.Count(b.ID))
	assert.Equal(t, net[a.ID], cart.Count(a.ID))
	assert.Equal(t, net[b.ID], cart.Count(b.ID))
	assert.Len(t, cart.Items.Data, 2)
	assert.False(t, cart.Items.Loading)
	assert.Equal(t, store.StatusSucceeded, cart.Items.Status)
}

func TestCartService_LastUnitRemovesLine(t *testing.T) {
	repo := mockRepo.NewMockCartRepository(t)
	echoCartRepo(repo, 1)
	st := newTestStore()
	srv := NewCartService(newSession(t, testToken), repo, st, discardLogger())
	ctx := context.Background()

	listing := entity.Listing{ID: 10, RestaurantID: 1, Count: 5}
	_, err := srv.AddToCart(ctx, usecase.AddToCartInput{Listing: listing})
	require.NoError(t, err)
	require.NoError(t, srv.RemoveFromCart(ctx, listing.ID))

	assert.Empty(t, st.State().Cart.Items.Data)
	repo.AssertCalled(t, "RemoveItem", mock.Anything, testToken, int64(10))
}

func TestCartService_AddToCart_ConflictDeclined(t *testing.T) {
	repo := mockRepo.NewMockCartRepository(t)
	st := newTestStore()
	st.Dispatch(store.CartFulfilled{Items: []entity.CartItem{{ListingID: 1, RestaurantID: 100, Count: 2}}})
	before := st.State().Cart
	srv := NewCartService(newSession(t, testToken), repo, st, discardLogger())

	asked := 0
	_, err := srv.AddToCart(context.Background(), usecase.AddToCartInput{
		Listing: entity.Listing{ID: 2, RestaurantID: 200, Count: 5},
		Confirmer: usecase.ConfirmFunc(func(_ context.Context, current, next int64) bool {
			asked++
			assert.Equal(t, int64(100), current)
			assert.Equal(t, int64(200), next)

			return false
		}),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartRestaurantConflict))
	assert.Equal(t, domainerrors.KindValidationFailure, domainerrors.KindOf(err))
	assert.Equal(t, 1, asked)
	assert.Equal(t, before, st.State().Cart)
}

func TestCartService_AddToCart_ConflictWithoutConfirmerDeclines(t *testing.T) {
	repo := mockRepo.NewMockCartRepository(t)
	st := newTestStore()
	st.Dispatch(store.CartFulfilled{Items: []entity.CartItem{{ListingID: 1, RestaurantID: 100, Count: 1}}})
	srv := NewCartService(newSession(t, testToken), repo, st, discardLogger())

	_, err := srv.AddToCart(context.Background(), usecase.AddToCartInput{
		Listing: entity.Listing{ID: 2, RestaurantID: 200, Count: 5},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrCartRestaurantConflict))
	assert.Equal(t, 1, st.State().Cart.Count(1))
}

func TestCartService_AddToCart_ConflictConfirmedResetsFirst(t *testing.T) {
	repo := mockRepo.NewMockCartRepository(t)
	st := newTestStore()
	st.Dispatch(store.CartFulfilled{Items: []entity.CartItem{
		{ListingID: 1, RestaurantID: 100, Count: 2},
		{ListingID: 3, RestaurantID: 100, Count: 1},
	}})
	srv := NewCartService(newSession(t, testToken), repo, st, discardLogger())

	var calls []string
	repo.EXPECT().ResetCart(mock.Anything, testToken).
		RunAndReturn(func(context.Context, string) error {
			calls = append(calls, "reset")

			return nil
		}).Once()
	repo.EXPECT().AddItem(mock.Anything, testToken, int64(2), 1).
		RunAndReturn(func(_ context.Context, _ string, listingID int64, count int) (*entity.CartItem, error) {
			calls = append(calls, "add")
			assert.Empty(t, st.State().Cart.Items.Data, "reset must settle before the add")

			return &entity.CartItem{ListingID: listingID, Count: count}, nil
		}).Once()

	item, err := srv.AddToCart(context.Background(), usecase.AddToCartInput{
		Listing: entity.Listing{ID: 2, RestaurantID: 200, Count: 5, Title: "Pide"},
		Confirmer: usecase.ConfirmFunc(func(context.Context, int64, int64) bool {
			assert.Len(t, st.State().Cart.Items.Data, 2, "cart must not change before confirmation")

			return true
		}),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"reset", "add"}, calls)
	assert.Equal(t, int64(200), item.RestaurantID)
	assert.Equal(t, []entity.CartItem{{ListingID: 2, RestaurantID: 200, Count: 1, Title: "Pide"}}, st.State().Cart.Items.Data)
}

func TestCartService_AddToCart_ResetFailureSkipsAdd(t *testing.T) {
	repo := mockRepo.NewMockCartRepository(t)
	st := newTestStore()
	st.Dispatch(store.CartFulfilled{Items: []entity.CartItem{{ListingID: 1, RestaurantID: 100, Count: 1}}})
	srv := NewCartService(newSession(t, testToken), repo, st, discardLogger())

	repo.EXPECT().ResetCart(mock.Anything, testToken).Return(domainerrors.ErrNetworkFailure).Once()

	_, err := srv.AddToCart(context.Background(), usecase.AddToCartInput{
		Listing:   entity.Listing{ID: 2, RestaurantID: 200, Count: 5},
		Confirmer: usecase.ConfirmFunc(func(context.Context, int64, int64) bool { return true }),
	})

	require.Error(t, err)
	cart := st.State().Cart
	assert.Equal(t, 1, cart.Count(1))
	assert.Equal(t, store.StatusFailed, cart.Items.Status)
	assert.False(t, cart.Items.Loading)
	repo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_AddToCart_StockExceeded(t *testing.T) {
	repo := mockRepo.NewMockCartRepository(t)
	st := newTestStore()
	st.Dispatch(store.CartFulfilled{Items: []entity.CartItem{{ListingID: 1, RestaurantID: 100, Count: 2}}})
	srv := NewCartService(newSession(t, testToken), repo, st, discardLogger())

	_, err := srv.AddToCart(context.Background(), usecase.AddToCartInput{
		Listing: entity.Listing{ID: 1, RestaurantID: 100, Count: 2},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrStockExceeded))
	assert.Equal(t, 2, st.State().Cart.Count(1))
}

func TestCartService_AddToCart_ServerRejection(t *testing.T) {
	repo := mockRepo.NewMockCartRepository(t)
	st := newTestStore()
	srv := NewCartService(newSession(t, testToken), repo, st, discardLogger())

	repo.EXPECT().AddItem(mock.Anything, testToken, int64(1), 1).
		Return(nil, domainerrors.ErrServerRejection.WithHTTPCode(400).WithMessage("Listing is no longer available")).Once()

	_, err := srv.AddToCart(context.Background(), usecase.AddToCartInput{
		Listing: entity.Listing{ID: 1, RestaurantID: 100, Count: 2},
	})

	require.Error(t, err)
	cart := st.State().Cart
	assert.Empty(t, cart.Items.Data)
	assert.Equal(t, "Listing is no longer available", cart.Items.Error)
	assert.False(t, cart.Items.Loading)
}

func TestCartService_UpdateCartItem(t *testing.T) {
	repo := mockRepo.NewMockCartRepository(t)
	echoCartRepo(repo, 1)
	st := newTestStore()
	srv := NewCartService(newSession(t, testToken), repo, st, discardLogger())
	ctx := context.Background()
	listing := entity.Listing{ID: 10, RestaurantID: 1, Count: 4}

	require.NoError(t, srv.UpdateCartItem(ctx, listing, 3))
	assert.Equal(t, 3, st.State().Cart.Count(10))

	require.NoError(t, srv.UpdateCartItem(ctx, listing, 1))
	assert.Equal(t, 1, st.State().Cart.Count(10))

	err := srv.UpdateCartItem(ctx, listing, 5)
	assert.True(t, errors.Is(err, domainerrors.ErrStockExceeded))

	require.NoError(t, srv.UpdateCartItem(ctx, listing, 0))
	assert.Empty(t, st.State().Cart.Items.Data)
}

func TestCartService_FetchCart_NoToken(t *testing.T) {
	repo := mockRepo.NewMockCartRepository(t)
	st := newTestStore()
	srv := NewCartService(newSession(t, ""), repo, st, discardLogger())

	_, err := srv.FetchCart(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrAuthMissing))
	items := st.State().Cart.Items
	assert.Equal(t, store.StatusFailed, items.Status)
	assert.Equal(t, domainerrors.ErrAuthMissing.Message(), items.Error)
}

func TestCartService_MutationsFailWithoutToken(t *testing.T) {
	listing := entity.Listing{ID: 1, RestaurantID: 100, Count: 5}

	tests := []struct {
		name string
		call func(ctx context.Context, srv usecase.CartUsecase) error
	}{
		{
			name: "add",
			call: func(ctx context.Context, srv usecase.CartUsecase) error {
				_, err := srv.AddToCart(ctx, usecase.AddToCartInput{Listing: listing})
				return err
			},
		},
		{
			name: "update",
			call: func(ctx context.Context, srv usecase.CartUsecase) error {
				return srv.UpdateCartItem(ctx, listing, 2)
			},
		},
		{
			name: "remove",
			call: func(ctx context.Context, srv usecase.CartUsecase) error {
				return srv.RemoveFromCart(ctx, listing.ID)
			},
		},
		{
			name: "reset",
			call: func(ctx context.Context, srv usecase.CartUsecase) error {
				return srv.ResetCart(ctx)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore()
			srv := NewCartService(newSession(t, ""), mockRepo.NewMockCartRepository(t), st, discardLogger())

			err := tt.call(context.Background(), srv)

			assert.True(t, errors.Is(err, domainerrors.ErrAuthMissing))
			items := st.State().Cart.Items
			assert.Equal(t, store.StatusFailed, items.Status)
			assert.Equal(t, domainerrors.ErrAuthMissing.Message(), items.Error)
		})
	}
}

func TestCartService_ResetCart(t *testing.T) {
	repo := mockRepo.NewMockCartRepository(t)
	st := newTestStore()
	st.Dispatch(store.CartFulfilled{Items: []entity.CartItem{{ListingID: 1, RestaurantID: 100, Count: 2}}})
	srv := NewCartService(newSession(t, testToken), repo, st, discardLogger())

	repo.EXPECT().ResetCart(mock.Anything, testToken).Return(nil).Once()

	require.NoError(t, srv.ResetCart(context.Background()))
	assert.Empty(t, st.State().Cart.Items.Data)
}
