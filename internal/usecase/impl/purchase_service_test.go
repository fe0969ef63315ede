package impl

import (
	"context"
	"testing"

	"freshdeal/internal/domain/entity"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/qrcode"
	mockRepo "freshdeal/internal/mocks/repository"
	"freshdeal/internal/store"
	"freshdeal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPurchaseFixture(t *testing.T, token string) (*mockRepo.MockPurchaseRepository, *store.Store, usecase.PurchaseUsecase) {
	t.Helper()

	repo := mockRepo.NewMockPurchaseRepository(t)
	st := newTestStore()
	srv := NewPurchaseService(newSession(t, token), repo, qrcode.NewQRCodeService(128, "M"), st, testConfig(), discardLogger())

	return repo, st, srv
}

func TestSerializeDeliveryAddress(t *testing.T) {
	tests := []struct {
		name    string
		address entity.Address
		want    string
	}{
		{
			name:    "full",
			address: entity.Address{Street: "Moda Cd. 12", Neighborhood: "Moda", District: "Kadikoy", Country: "Turkey", ApartmentNo: "4", DoorNo: "9"},
			want:    "Moda Cd. 12 Moda Turkey Apt: 4 Door: 9",
		},
		{
			name:    "missing parts",
			address: entity.Address{Street: "Moda Cd. 12", Country: "Turkey"},
			want:    "Moda Cd. 12 Turkey",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SerializeDeliveryAddress(tt.address))
		})
	}
}

func TestPurchaseService_CreateOrder_DeliveryNeedsAddress(t *testing.T) {
	_, st, srv := newPurchaseFixture(t, testToken)

	_, err := srv.CreateOrder(context.Background(), usecase.CreateOrderInput{IsDelivery: true})

	assert.True(t, errors.Is(err, domainerrors.ErrSelectedAddressMissing))
	assert.Equal(t, store.StatusIdle, st.State().Purchase.Order.Status)
}

func TestPurchaseService_CreateOrder_Delivery(t *testing.T) {
	repo, st, srv := newPurchaseFixture(t, testToken)
	st.Dispatch(store.ProfileFulfilled{Addresses: []entity.Address{{ID: "1", Street: "Moda Cd.", Country: "Turkey", DoorNo: "3"}}})
	st.Dispatch(store.CartFulfilled{Items: []entity.CartItem{{ListingID: 5, RestaurantID: 2, Count: 2}}})

	repo.EXPECT().CreateOrder(mock.Anything, testToken, repository.OrderRequest{
		IsDelivery:      true,
		DeliveryAddress: "Moda Cd. Turkey Door: 3",
		DeliveryNotes:   "ring twice",
	}).Return([]entity.Purchase{{ID: 77, ListingID: 5, Quantity: 2, Status: entity.PurchasePending}}, nil).Once()

	purchases, err := srv.CreateOrder(context.Background(), usecase.CreateOrderInput{IsDelivery: true, Notes: "ring twice"})

	require.NoError(t, err)
	require.Len(t, purchases, 1)
	state := st.State()
	assert.Empty(t, state.Cart.Items.Data)
	assert.Equal(t, store.StatusSucceeded, state.Purchase.Order.Status)
	assert.Len(t, state.Purchase.Active.Data, 1)
}

func TestPurchaseService_CreateOrder_Rejected(t *testing.T) {
	repo, st, srv := newPurchaseFixture(t, testToken)
	st.Dispatch(store.CartFulfilled{Items: []entity.CartItem{{ListingID: 5, RestaurantID: 2, Count: 2}}})

	repo.EXPECT().CreateOrder(mock.Anything, testToken, repository.OrderRequest{PickupNotes: "at 6"}).
		Return(nil, domainerrors.ErrServerRejection.WithMessage("Restaurant is closed")).Once()

	_, err := srv.CreateOrder(context.Background(), usecase.CreateOrderInput{Notes: "at 6"})

	require.Error(t, err)
	state := st.State()
	assert.Len(t, state.Cart.Items.Data, 1)
	assert.Equal(t, "Restaurant is closed", state.Purchase.Order.Error)
}

func TestPurchaseService_FetchPreviousOrders_Pages(t *testing.T) {
	repo, st, srv := newPurchaseFixture(t, testToken)

	repo.EXPECT().FetchPrevious(mock.Anything, testToken, 1, 10).
		Return(&repository.PurchasePage{Purchases: []entity.Purchase{{ID: 1}, {ID: 2}}, Page: 1, HasNext: true}, nil).Once()
	repo.EXPECT().FetchPrevious(mock.Anything, testToken, 2, 10).
		Return(&repository.PurchasePage{Purchases: []entity.Purchase{{ID: 3}}, Page: 2}, nil).Once()

	_, err := srv.FetchPreviousOrders(context.Background(), 0)
	require.NoError(t, err)
	assert.True(t, st.State().Purchase.PreviousHasNext)

	_, err = srv.FetchPreviousOrders(context.Background(), 2)
	require.NoError(t, err)

	previous := st.State().Purchase
	assert.Len(t, previous.Previous.Data, 3)
	assert.Equal(t, 2, previous.PreviousPage)
	assert.False(t, previous.PreviousHasNext)
}

func TestPurchaseService_ActiveOrders_Failure(t *testing.T) {
	repo, st, srv := newPurchaseFixture(t, testToken)

	repo.EXPECT().FetchActive(mock.Anything, testToken).Return(nil, domainerrors.ErrServerRejection).Once()

	_, err := srv.FetchActiveOrders(context.Background())

	require.Error(t, err)
	active := st.State().Purchase.Active
	assert.Equal(t, msgActiveOrdersFailed, active.Error)
	assert.False(t, active.Loading)
}

func TestPurchaseService_RespondToOrder(t *testing.T) {
	repo, st, srv := newPurchaseFixture(t, testToken)
	st.Dispatch(store.ActiveOrdersFulfilled{Purchases: []entity.Purchase{{ID: 1, Status: entity.PurchasePending}, {ID: 2, Status: entity.PurchasePending}}})

	repo.EXPECT().Respond(mock.Anything, testToken, int64(1), entity.DecisionReject).
		Return(&entity.Purchase{ID: 1, Status: entity.PurchaseRejected}, nil).Once()

	_, err := srv.RespondToOrder(context.Background(), 1, entity.DecisionReject)
	require.NoError(t, err)

	active := st.State().Purchase.Active.Data
	require.Len(t, active, 1)
	assert.Equal(t, int64(2), active[0].ID)

	_, err = srv.RespondToOrder(context.Background(), 2, entity.Decision("maybe"))
	assert.Equal(t, domainerrors.KindValidationFailure, domainerrors.KindOf(err))
}

func TestPurchaseService_PickupCode(t *testing.T) {
	repo, _, srv := newPurchaseFixture(t, testToken)

	repo.EXPECT().FetchDetail(mock.Anything, testToken, int64(1)).
		Return(&entity.Purchase{ID: 1, Status: entity.PurchaseAccepted}, nil).Once()
	repo.EXPECT().FetchDetail(mock.Anything, testToken, int64(2)).
		Return(&entity.Purchase{ID: 2, Status: entity.PurchaseAccepted, IsDelivery: true}, nil).Once()

	png, err := srv.PickupCode(context.Background(), 1)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = srv.PickupCode(context.Background(), 2)
	assert.True(t, errors.Is(err, domainerrors.ErrPickupCodeUnavailable))
}

func TestPurchaseService_NoToken(t *testing.T) {
	_, st, srv := newPurchaseFixture(t, "")
	ctx := context.Background()

	_, err := srv.FetchActiveOrders(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthMissing))

	_, err = srv.FetchPreviousOrders(ctx, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthMissing))

	_, err = srv.FetchOrderDetail(ctx, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthMissing))

	_, err = srv.CreateOrder(ctx, usecase.CreateOrderInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrAuthMissing))

	want := domainerrors.ErrAuthMissing.Message()
	state := st.State().Purchase
	for name, progress := range map[string]store.Progress{
		"active":   state.Active.Progress,
		"previous": state.Previous.Progress,
		"detail":   state.Detail.Progress,
		"order":    state.Order,
	} {
		assert.Equal(t, store.StatusFailed, progress.Status, name)
		assert.Equal(t, want, progress.Error, name)
	}
}
