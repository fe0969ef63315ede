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

func seededAddresses(st *store.Store) {
	st.Dispatch(store.ProfileFulfilled{
		User: entity.User{ID: 1, Name: "Ayse"},
		Addresses: []entity.Address{
			{ID: "11", Title: "Home", Street: "Bagdat Cd.", Latitude: 40.97, Longitude: 29.06},
			{ID: "12", Title: "Office", Street: "Buyukdere Cd.", Latitude: 41.08, Longitude: 29.01},
		},
	})
	st.Dispatch(store.AddressSelected{ID: "12"})
}

func newAddressInput() usecase.AddAddressInput {
	return usecase.AddAddressInput{
		Title:        "Gym",
		Street:       "Moda Cd.",
		Neighborhood: "Moda",
		Country:      "Turkey",
		Latitude:     40.98,
		Longitude:    29.02,
	}
}

func TestAddressService_AddAddress_RollbackRestoresList(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	st := newTestStore()
	seededAddresses(st)
	before := st.State().Address
	srv := NewAddressService(newSession(t, testToken), repo, st, discardLogger())

	repo.EXPECT().AddAddress(mock.Anything, testToken, mock.AnythingOfType("entity.Address")).
		RunAndReturn(func(_ context.Context, _ string, address entity.Address) (*entity.Address, error) {
			during := st.State().Address
			assert.Len(t, during.Addresses, 3, "tentative address must be visible while the call is in flight")
			assert.True(t, entity.IsTemporary(address.ID))
			assert.Equal(t, entity.OptimisticPending, during.Addresses[2].Status)

			return nil, domainerrors.ErrNetworkFailure
		}).Once()

	_, err := srv.AddAddress(context.Background(), newAddressInput())

	require.Error(t, err)
	after := st.State().Address
	assert.Equal(t, before.Addresses, after.Addresses)
	assert.Equal(t, before.SelectedAddressID, after.SelectedAddressID)
	assert.Equal(t, store.StatusFailed, after.Mutation.Status)
	assert.Equal(t, domainerrors.ErrNetworkFailure.Message(), after.Mutation.Error)
	assert.False(t, after.Mutation.Loading)
}

func TestAddressService_AddAddress_FallbackMessage(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	st := newTestStore()
	srv := NewAddressService(newSession(t, testToken), repo, st, discardLogger())

	repo.EXPECT().AddAddress(mock.Anything, testToken, mock.Anything).
		Return(nil, domainerrors.ErrServerRejection.WithHTTPCode(500)).Once()

	_, err := srv.AddAddress(context.Background(), newAddressInput())

	require.Error(t, err)
	assert.Empty(t, st.State().Address.Addresses)
	assert.Equal(t, msgAddAddressFailed, st.State().Address.Mutation.Error)
}

func TestAddressService_AddAddress_ConfirmReplacesInPlace(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	st := newTestStore()
	seededAddresses(st)
	srv := NewAddressService(newSession(t, testToken), repo, st, discardLogger())

	repo.EXPECT().AddAddress(mock.Anything, testToken, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, address entity.Address) (*entity.Address, error) {
			confirmed := address
			confirmed.ID = "99"

			return &confirmed, nil
		}).Once()

	added, err := srv.AddAddress(context.Background(), newAddressInput())

	require.NoError(t, err)
	assert.Equal(t, "99", added.ID)
	state := st.State().Address
	require.Len(t, state.Addresses, 3)
	assert.Equal(t, []string{"11", "12", "99"}, []string{state.Addresses[0].ID, state.Addresses[1].ID, state.Addresses[2].ID})
	assert.Equal(t, entity.OptimisticConfirmed, state.Addresses[2].Status)
	assert.Equal(t, "99", state.SelectedAddressID)
	assert.Equal(t, store.StatusSucceeded, state.Mutation.Status)
}

func TestAddressService_AddAddress_Validation(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	st := newTestStore()
	srv := NewAddressService(newSession(t, testToken), repo, st, discardLogger())

	input := newAddressInput()
	input.Street = ""
	input.Latitude = 123

	_, err := srv.AddAddress(context.Background(), input)

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindValidationFailure, domainerrors.KindOf(err))
	assert.Empty(t, st.State().Address.Addresses)
}

func TestAddressService_AddAddress_NoToken(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	st := newTestStore()
	srv := NewAddressService(newSession(t, ""), repo, st, discardLogger())

	_, err := srv.AddAddress(context.Background(), newAddressInput())

	assert.True(t, errors.Is(err, domainerrors.ErrAuthMissing))
	assert.Empty(t, st.State().Address.Addresses)
	assert.Equal(t, store.StatusFailed, st.State().Address.Mutation.Status)
	assert.Equal(t, domainerrors.ErrAuthMissing.Message(), st.State().Address.Mutation.Error)
}

func TestAddressService_RemoveAddress_SelectionFallsBack(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	st := newTestStore()
	seededAddresses(st)
	srv := NewAddressService(newSession(t, testToken), repo, st, discardLogger())

	repo.EXPECT().RemoveAddress(mock.Anything, testToken, "12").Return(nil).Once()

	require.NoError(t, srv.RemoveAddress(context.Background(), "12"))

	state := st.State().Address
	require.Len(t, state.Addresses, 1)
	assert.Equal(t, "11", state.SelectedAddressID)
}

func TestAddressService_RemoveAddress_Unknown(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	srv := NewAddressService(newSession(t, testToken), repo, newTestStore(), discardLogger())

	err := srv.RemoveAddress(context.Background(), "404")

	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_SelectAndRadius(t *testing.T) {
	st := newTestStore()
	seededAddresses(st)
	srv := NewAddressService(newSession(t, testToken), mockRepo.NewMockAddressRepository(t), st, discardLogger())

	require.NoError(t, srv.SelectAddress("11"))
	assert.Equal(t, "11", st.State().Address.SelectedAddressID)

	assert.True(t, errors.Is(srv.SelectAddress("nope"), domainerrors.ErrAddressNotFound))
	assert.Equal(t, "11", st.State().Address.SelectedAddressID)

	require.NoError(t, srv.SetSearchRadius(5))
	assert.Equal(t, 5.0, st.State().Address.SearchRadiusKm)
	assert.Error(t, srv.SetSearchRadius(0))
}
