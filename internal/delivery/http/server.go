// Package http serves the development backend the client is exercised against.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"freshdeal/config"
	"freshdeal/internal/delivery"
	"freshdeal/internal/delivery/http/middleware"
	"freshdeal/internal/delivery/http/router"
	"freshdeal/internal/delivery/http/validator"
	sharedmiddleware "freshdeal/internal/delivery/middleware"
	"freshdeal/internal/domain/lifecycle"
	"freshdeal/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const maxRequestBodySize = "10M"

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// Server is the development backend. It implements delivery.Delivery.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

var _ delivery.Delivery = (*Server)(nil)

func NewServer(params HTTPParams) *Server {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID before the logger so log lines carry it
	echoServer.Use(sharedmiddleware.NewRequestIDMiddleware(params.Logger).Process)

	// 3. Access log
	echoServer.Use(sharedmiddleware.NewLoggerMiddleware(params.Logger, params.Config, "/health").Handle)

	// 4. CORS middleware
	echoServer.Use(echomiddleware.CORS())

	// 5. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(maxRequestBodySize))

	echoServer.HTTPErrorHandler = middleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	echoServer.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	srv := &Server{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv
}

// Handler exposes the routes, mainly for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.server
}

// Serve listens on stub.port with h2c enabled and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Stub.Port))
	s.logger.Info("Starting development backend", slog.String("host_port", hostPort))

	if err := s.server.StartH2CServer(hostPort, &http2.Server{}); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down development backend")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
