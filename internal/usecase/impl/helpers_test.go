package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"freshdeal/config"
	"freshdeal/internal/infra/session"
	"freshdeal/internal/store"
	"freshdeal/internal/usecase"

	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.API = &config.APIConfig{BaseURL: "http://localhost"}
	cfg.ApplyDefaults()

	return cfg
}

func newTestStore() *store.Store {
	return store.New(store.Params{Logger: discardLogger()})
}

// newSession returns a session holding token; an empty token means logged out.
func newSession(t *testing.T, token string) usecase.SessionUsecase {
	t.Helper()

	tokens := session.NewMemoryStore()
	if token != "" {
		require.NoError(t, tokens.Set(context.Background(), token))
	}

	return NewSessionService(tokens, discardLogger())
}
