package store

import (
	"slices"

	"freshdeal/internal/domain/entity"
)

// UserState owns the account, the session token and the gamification data.
// An empty Token means unauthenticated.
type UserState struct {
	Token        string
	Auth         Progress
	Profile      Remote[*entity.User]
	Update       Progress
	Stats        Remote[entity.Stats]
	Achievements Remote[[]entity.Achievement]
	Rankings     Remote[[]entity.Rank]
	OwnRank      *entity.Rank
}

func initialUserState() UserState {
	return UserState{
		Auth:         idle(),
		Profile:      idleRemote[*entity.User](nil),
		Update:       idle(),
		Stats:        idleRemote(entity.Stats{}),
		Achievements: idleRemote[[]entity.Achievement](nil),
		Rankings:     idleRemote[[]entity.Rank](nil),
	}
}

func (s UserState) withUser(update func(*entity.User)) UserState {
	if s.Profile.Data == nil {
		return s
	}
	user := *s.Profile.Data
	update(&user)
	s.Profile.Data = &user

	return s
}

func reduceUser(s UserState, action Action) UserState {
	switch a := action.(type) {
	case Logout:
		return initialUserState()

	case LoginPending, RegisterPending:
		s.Auth = s.Auth.pending()

		return s

	case LoginFulfilled:
		s.Token = a.Token
		s.Auth = s.Auth.succeeded()

		return s

	case RegisterFulfilled:
		s.Auth = s.Auth.succeeded()

		return s

	case LoginRejected:
		s.Auth = s.Auth.failed(a.Message)

		return s

	case RegisterRejected:
		s.Auth = s.Auth.failed(a.Message)

		return s

	case TokenRestored:
		s.Token = a.Token

		return s

	case ProfilePending:
		s.Profile = s.Profile.pending()

		return s

	case ProfileFulfilled:
		user := a.User
		s.Profile = s.Profile.fulfilled(&user)

		return s

	case ProfileRejected:
		s.Profile = s.Profile.rejected(a.Message)

		return s

	case ProfileUpdatePending:
		s.Update = s.Update.pending()

		return s

	case ProfileUpdateRejected:
		s.Update = s.Update.failed(a.Message)

		return s

	case UsernameUpdated:
		s = s.withUser(func(u *entity.User) { u.Name = a.Name })
		s.Update = s.Update.succeeded()

		return s

	case EmailUpdated:
		s = s.withUser(func(u *entity.User) {
			u.Email = a.Email
			u.EmailVerified = false
		})
		s.Update = s.Update.succeeded()

		return s

	case PasswordUpdated:
		s.Update = s.Update.succeeded()

		return s

	case StatsPending:
		s.Stats = s.Stats.pending()

		return s

	case StatsFulfilled:
		s.Stats = s.Stats.fulfilled(a.Stats)

		return s

	case StatsRejected:
		s.Stats = s.Stats.rejected(a.Message)

		return s

	case AchievementsPending:
		s.Achievements = s.Achievements.pending()

		return s

	case AchievementsFulfilled:
		s.Achievements = s.Achievements.fulfilled(slices.Clone(a.Achievements))

		return s

	case AchievementsRejected:
		s.Achievements = s.Achievements.rejected(a.Message)

		return s

	case RankingsPending:
		s.Rankings = s.Rankings.pending()

		return s

	case RankingsFulfilled:
		s.Rankings = s.Rankings.fulfilled(slices.Clone(a.Rankings))
		s.OwnRank = a.Own

		return s

	case RankingsRejected:
		s.Rankings = s.Rankings.rejected(a.Message)

		return s

	default:
		return s
	}
}
