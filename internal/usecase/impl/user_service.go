package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "freshdeal/internal/delivery/context"
	"freshdeal/internal/domain/entity"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/errors"
	"freshdeal/internal/store"
	"freshdeal/internal/usecase"
	"freshdeal/internal/util"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	session usecase.SessionUsecase
	repo    repository.UserRepository
	store   *store.Store
	logger  *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Session usecase.SessionUsecase
	Repo    repository.UserRepository
	Store   *store.Store
	Logger  *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		session: params.Session,
		repo:    params.Repo,
		store:   params.Store,
		logger:  params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges the credentials for a token and starts the session.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) error {
	if err := util.ValidateStruct(input); err != nil {
		return err
	}

	srv.store.Dispatch(store.LoginPending{})

	token, err := srv.repo.Login(ctx, repository.Credentials{
		Email:       strings.TrimSpace(input.Email),
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		Password:    input.Password,
	})
	if err != nil {
		srv.store.Dispatch(store.LoginRejected{Message: failureMessage(err, msgLoginFailed)})
		srv.log(ctx).Warn("Login failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to login")
	}

	if err := srv.session.Begin(ctx, token); err != nil {
		srv.store.Dispatch(store.LoginRejected{Message: failureMessage(err, msgLoginFailed)})

		return errors.Wrap(err, "failed to start session")
	}

	srv.store.Dispatch(store.LoginFulfilled{Token: token})
	srv.log(ctx).Info("User logged in")

	return nil
}

func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) error {
	if err := util.ValidateStruct(input); err != nil {
		return err
	}

	srv.store.Dispatch(store.RegisterPending{})

	if err := srv.repo.Register(ctx, repository.Registration{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		Password:    input.Password,
		Role:        input.Role,
	}); err != nil {
		srv.store.Dispatch(store.RegisterRejected{Message: failureMessage(err, msgRegisterFailed)})
		srv.log(ctx).Warn("Registration failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to register")
	}

	srv.store.Dispatch(store.RegisterFulfilled{})
	srv.log(ctx).Info("User registered")

	return nil
}

// Logout clears the token once and resets every slice, even when clearing fails.
func (srv *userService) Logout(ctx context.Context) error {
	err := srv.session.End(ctx)
	srv.store.Dispatch(store.Logout{})

	if err != nil {
		srv.log(ctx).Error("Failed to clear token on logout", slog.Any("error", err))

		return errors.Wrap(err, "failed to logout")
	}
	srv.log(ctx).Info("User logged out")

	return nil
}

// RestoreSession loads a previously stored token. Expired tokens are cleared.
func (srv *userService) RestoreSession(ctx context.Context) (bool, error) {
	stored, err := srv.session.Token(ctx)
	if err != nil {
		return false, err
	}
	if stored == "" {
		return false, nil
	}

	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.log(ctx).Info("Discarding stored session", slog.Any("reason", err))
		if endErr := srv.session.End(ctx); endErr != nil {
			return false, errors.Wrap(endErr, "failed to clear stale token")
		}

		return false, nil
	}

	srv.store.Dispatch(store.TokenRestored{Token: token})

	return true, nil
}

// FetchUserData loads the profile together with the saved addresses.
func (srv *userService) FetchUserData(ctx context.Context) (*entity.User, error) {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.ProfileRejected{Message: failureMessage(err, msgFetchUserFailed)})

		return nil, err
	}

	srv.store.Dispatch(store.ProfilePending{})

	profile, err := srv.repo.FetchProfile(ctx, token)
	if err != nil {
		srv.store.Dispatch(store.ProfileRejected{Message: failureMessage(err, msgFetchUserFailed)})
		srv.log(ctx).Error("Failed to fetch user data", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch user data")
	}

	srv.store.Dispatch(store.ProfileFulfilled{User: profile.User, Addresses: profile.Addresses})

	return &profile.User, nil
}

func (srv *userService) UpdateUsername(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return domainerrors.ErrValidationFailed.WithDetails("username is required")
	}

	return srv.update(ctx, "username", func(token string) error {
		return srv.repo.UpdateUsername(ctx, token, username)
	}, store.UsernameUpdated{Name: username})
}

func (srv *userService) UpdateEmail(ctx context.Context, input usecase.UpdateEmailInput) error {
	if err := util.ValidateStruct(input); err != nil {
		return err
	}

	return srv.update(ctx, "email", func(token string) error {
		return srv.repo.UpdateEmail(ctx, token, input.OldEmail, input.NewEmail)
	}, store.EmailUpdated{Email: input.NewEmail})
}

func (srv *userService) UpdatePassword(ctx context.Context, input usecase.UpdatePasswordInput) error {
	if err := util.ValidateStruct(input); err != nil {
		return err
	}

	return srv.update(ctx, "password", func(token string) error {
		return srv.repo.UpdatePassword(ctx, token, input.OldPassword, input.NewPassword)
	}, store.PasswordUpdated{})
}

// update runs one profile mutation through the pending/settled cycle.
func (srv *userService) update(ctx context.Context, field string, call func(token string) error, settled store.Action) error {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.ProfileUpdateRejected{Message: failureMessage(err, msgUpdateProfileFailed)})

		return err
	}

	srv.store.Dispatch(store.ProfileUpdatePending{})

	if err := call(token); err != nil {
		srv.store.Dispatch(store.ProfileUpdateRejected{Message: failureMessage(err, msgUpdateProfileFailed)})
		srv.log(ctx).Error("Failed to update profile", slog.String("field", field), slog.Any("error", err))

		return errors.Wrapf(err, "failed to update %s", field)
	}

	srv.store.Dispatch(settled)
	srv.log(ctx).Info("Profile updated", slog.String("field", field))

	return nil
}

func (srv *userService) FetchAchievements(ctx context.Context) ([]entity.Achievement, error) {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.AchievementsRejected{Message: failureMessage(err, msgAchievementsFailed)})

		return nil, err
	}

	srv.store.Dispatch(store.AchievementsPending{})

	achievements, err := srv.repo.FetchAchievements(ctx, token)
	if err != nil {
		srv.store.Dispatch(store.AchievementsRejected{Message: failureMessage(err, msgAchievementsFailed)})
		srv.log(ctx).Error("Failed to fetch achievements", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch achievements")
	}

	srv.store.Dispatch(store.AchievementsFulfilled{Achievements: achievements})

	return achievements, nil
}

func (srv *userService) FetchRankings(ctx context.Context) ([]entity.Rank, error) {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.RankingsRejected{Message: failureMessage(err, msgRankingsFailed)})

		return nil, err
	}

	srv.store.Dispatch(store.RankingsPending{})

	rankings, own, err := srv.repo.FetchRankings(ctx, token)
	if err != nil {
		srv.store.Dispatch(store.RankingsRejected{Message: failureMessage(err, msgRankingsFailed)})
		srv.log(ctx).Error("Failed to fetch rankings", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch rankings")
	}

	srv.store.Dispatch(store.RankingsFulfilled{Rankings: rankings, Own: own})

	return rankings, nil
}

func (srv *userService) FetchStats(ctx context.Context) (*entity.Stats, error) {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.StatsRejected{Message: failureMessage(err, msgFetchStatsFailed)})

		return nil, err
	}

	srv.store.Dispatch(store.StatsPending{})

	stats, err := srv.repo.FetchStats(ctx, token)
	if err != nil {
		srv.store.Dispatch(store.StatsRejected{Message: failureMessage(err, msgFetchStatsFailed)})
		srv.log(ctx).Error("Failed to fetch stats", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch stats")
	}

	srv.store.Dispatch(store.StatsFulfilled{Stats: *stats})

	return stats, nil
}
