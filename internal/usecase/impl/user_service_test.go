package impl

import (
	"context"
	"testing"
	"time"

	"freshdeal/internal/domain/entity"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/domain/service"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/session"
	mockRepo "freshdeal/internal/mocks/repository"
	"freshdeal/internal/store"
	"freshdeal/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	repo    *mockRepo.MockUserRepository
	tokens  service.TokenStore
	store   *store.Store
	service usecase.UserUsecase
}

func newUserFixture(t *testing.T, token string) *userFixture {
	t.Helper()

	f := &userFixture{
		repo:   mockRepo.NewMockUserRepository(t),
		tokens: session.NewMemoryStore(),
		store:  newTestStore(),
	}
	if token != "" {
		require.NoError(t, f.tokens.Set(context.Background(), token))
	}
	f.service = NewUserService(UserServiceParams{
		Session: NewSessionService(f.tokens, discardLogger()),
		Repo:    f.repo,
		Store:   f.store,
		Logger:  discardLogger(),
	})

	return f
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	return token
}

func TestUserService_Login_Success(t *testing.T) {
	f := newUserFixture(t, "")

	f.repo.EXPECT().Login(mock.Anything, repository.Credentials{Email: "a@b.com", Password: "secret1"}).
		Return("issued", nil).Once()

	err := f.service.Login(context.Background(), usecase.LoginInput{Email: " a@b.com ", Password: "secret1"})

	require.NoError(t, err)
	stored, _ := f.tokens.Get(context.Background())
	assert.Equal(t, "issued", stored)
	assert.Equal(t, "issued", f.store.State().User.Token)
	assert.Equal(t, store.StatusSucceeded, f.store.State().User.Auth.Status)
}

func TestUserService_Login_Rejected(t *testing.T) {
	f := newUserFixture(t, "")

	f.repo.EXPECT().Login(mock.Anything, mock.Anything).
		Return("", domainerrors.ErrServerRejection.WithHTTPCode(401).WithMessage("Invalid credentials")).Once()

	err := f.service.Login(context.Background(), usecase.LoginInput{PhoneNumber: "5551112233", Password: "x"})

	require.Error(t, err)
	auth := f.store.State().User.Auth
	assert.Equal(t, store.StatusFailed, auth.Status)
	assert.Equal(t, "Invalid credentials", auth.Error)
	assert.False(t, auth.Loading)
	assert.Empty(t, f.store.State().User.Token)
}

func TestUserService_Login_RequiresEmailOrPhone(t *testing.T) {
	f := newUserFixture(t, "")

	err := f.service.Login(context.Background(), usecase.LoginInput{Password: "x"})

	assert.Equal(t, domainerrors.KindValidationFailure, domainerrors.KindOf(err))
	assert.Equal(t, store.StatusIdle, f.store.State().User.Auth.Status)
}

func TestUserService_Logout_ResetsEverySlice(t *testing.T) {
	f := newUserFixture(t, testToken)
	st := f.store

	st.Dispatch(store.LoginFulfilled{Token: testToken})
	st.Dispatch(store.ProfileFulfilled{
		User:      entity.User{ID: 1, Name: "Ayse"},
		Addresses: []entity.Address{{ID: "1", Title: "Home"}},
	})
	st.Dispatch(store.ProximityFulfilled{Restaurants: []entity.Restaurant{{ID: 1}}})
	st.Dispatch(store.FulfillmentModeSet{Mode: store.ModeDelivery})
	st.Dispatch(store.CartFulfilled{Items: []entity.CartItem{{ListingID: 1, RestaurantID: 1, Count: 1}}})
	st.Dispatch(store.ActiveOrdersFulfilled{Purchases: []entity.Purchase{{ID: 1}}})

	logouts := 0
	unsubscribe := st.Subscribe(func(_, _ store.State, action store.Action) {
		if _, ok := action.(store.Logout); ok {
			logouts++
		}
	})
	defer unsubscribe()

	require.NoError(t, f.service.Logout(context.Background()))

	assert.Equal(t, store.InitialState(), st.State())
	assert.Equal(t, 1, logouts)
	stored, err := f.tokens.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestUserService_RestoreSession(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		token := signedToken(t, time.Now().Add(time.Hour))
		f := newUserFixture(t, token)

		restored, err := f.service.RestoreSession(context.Background())

		require.NoError(t, err)
		assert.True(t, restored)
		assert.Equal(t, token, f.store.State().User.Token)
	})

	t.Run("expired token is cleared", func(t *testing.T) {
		f := newUserFixture(t, signedToken(t, time.Now().Add(-time.Minute)))

		restored, err := f.service.RestoreSession(context.Background())

		require.NoError(t, err)
		assert.False(t, restored)
		stored, _ := f.tokens.Get(context.Background())
		assert.Empty(t, stored)
	})

	t.Run("no token", func(t *testing.T) {
		f := newUserFixture(t, "")

		restored, err := f.service.RestoreSession(context.Background())

		require.NoError(t, err)
		assert.False(t, restored)
	})
}

func TestUserService_ExpiredTokenRejectsReads(t *testing.T) {
	f := newUserFixture(t, signedToken(t, time.Now().Add(-time.Minute)))

	_, err := f.service.FetchAchievements(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrAuthMissing))

	_, err = f.service.FetchRankings(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrAuthMissing))

	_, err = f.service.FetchStats(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrAuthMissing))

	_, err = f.service.FetchUserData(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrAuthMissing))

	err = f.service.UpdateUsername(context.Background(), "deniz")
	assert.True(t, errors.Is(err, domainerrors.ErrAuthMissing))

	want := domainerrors.ErrAuthMissing.Message()
	state := f.store.State().User
	for name, progress := range map[string]store.Progress{
		"achievements": state.Achievements.Progress,
		"rankings":     state.Rankings.Progress,
		"stats":        state.Stats.Progress,
		"profile":      state.Profile.Progress,
		"update":       state.Update,
	} {
		assert.Equal(t, store.StatusFailed, progress.Status, name)
		assert.Equal(t, want, progress.Error, name)
	}
}

func TestUserService_FetchUserData(t *testing.T) {
	f := newUserFixture(t, testToken)

	f.repo.EXPECT().FetchProfile(mock.Anything, testToken).Return(&repository.Profile{
		User:      entity.User{ID: 3, Name: "Deniz", Email: "d@x.com"},
		Addresses: []entity.Address{{ID: "5", Title: "Home"}, {ID: "6", Title: "Work"}},
	}, nil).Once()

	user, err := f.service.FetchUserData(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Deniz", user.Name)
	state := f.store.State()
	require.NotNil(t, state.User.Profile.Data)
	assert.Equal(t, int64(3), state.User.Profile.Data.ID)
	assert.Len(t, state.Address.Addresses, 2)
	assert.Equal(t, "5", state.Address.SelectedAddressID)
}

func TestUserService_UpdateEmail(t *testing.T) {
	f := newUserFixture(t, testToken)
	f.store.Dispatch(store.ProfileFulfilled{User: entity.User{ID: 3, Email: "old@x.com", EmailVerified: true}})

	f.repo.EXPECT().UpdateEmail(mock.Anything, testToken, "old@x.com", "new@x.com").Return(nil).Once()

	require.NoError(t, f.service.UpdateEmail(context.Background(), usecase.UpdateEmailInput{OldEmail: "old@x.com", NewEmail: "new@x.com"}))

	user := f.store.State().User.Profile.Data
	assert.Equal(t, "new@x.com", user.Email)
	assert.False(t, user.EmailVerified)

	err := f.service.UpdateEmail(context.Background(), usecase.UpdateEmailInput{OldEmail: "a@x.com", NewEmail: "a@x.com"})
	assert.Equal(t, domainerrors.KindValidationFailure, domainerrors.KindOf(err))
}

func TestUserService_UpdateUsername_Failure(t *testing.T) {
	f := newUserFixture(t, testToken)

	f.repo.EXPECT().UpdateUsername(mock.Anything, testToken, "Can").Return(domainerrors.ErrServerRejection).Once()

	require.Error(t, f.service.UpdateUsername(context.Background(), " Can "))

	update := f.store.State().User.Update
	assert.Equal(t, store.StatusFailed, update.Status)
	assert.Equal(t, msgUpdateProfileFailed, update.Error)
}

func TestUserService_Gamification(t *testing.T) {
	f := newUserFixture(t, testToken)
	own := &entity.Rank{UserID: 3, Rank: 7}

	f.repo.EXPECT().FetchAchievements(mock.Anything, testToken).
		Return([]entity.Achievement{{ID: 1, Name: "First Save", Unlocked: true}}, nil).Once()
	f.repo.EXPECT().FetchRankings(mock.Anything, testToken).
		Return([]entity.Rank{{UserID: 1, Rank: 1}}, own, nil).Once()
	f.repo.EXPECT().FetchStats(mock.Anything, testToken).
		Return(&entity.Stats{MoneySaved: decimal.NewFromInt(120)}, nil).Once()

	_, err := f.service.FetchAchievements(context.Background())
	require.NoError(t, err)
	_, err = f.service.FetchRankings(context.Background())
	require.NoError(t, err)
	_, err = f.service.FetchStats(context.Background())
	require.NoError(t, err)

	user := f.store.State().User
	assert.Len(t, user.Achievements.Data, 1)
	assert.Len(t, user.Rankings.Data, 1)
	assert.Equal(t, own, user.OwnRank)
	assert.True(t, user.Stats.Data.MoneySaved.Equal(decimal.NewFromInt(120)))
}
