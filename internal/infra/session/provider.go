package session

import (
	"log/slog"

	"freshdeal/config"
	"freshdeal/internal/domain/service"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
)

// Params defines the dependencies of the configured token store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns the token store selected by session.driver.
func New(params Params) (service.TokenStore, error) {
	switch params.Config.Session.Driver {
	case config.SessionDriverMemory, "":
		return NewMemoryStore(), nil
	case config.SessionDriverSQLite:
		db, err := sqlite.Open(params.Lifecycle, params.Config, params.Logger)
		if err != nil {
			return nil, err
		}

		return NewGormStore(db), nil
	default:
		return nil, errors.Errorf("unknown session driver %q", params.Config.Session.Driver)
	}
}
