package middleware

import (
	"log/slog"
	"time"

	"freshdeal/config"
	deliverycontext "freshdeal/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request. Successful requests
// are logged at debug level unless env.debug is on; failures always are.
type LoggerMiddleware struct {
	logger  *slog.Logger
	verbose bool
	skip    map[string]bool
}

// NewLoggerMiddleware creates the access logger. Requests to skipPaths are never logged.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config, skipPaths ...string) *LoggerMiddleware {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return &LoggerMiddleware{
		logger:  logger,
		verbose: cfg.Env.Debug,
		skip:    skip,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.skip[c.Request().URL.Path] {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// let echo write the error response so the status is final
			c.Error(err)
		}
		m.log(c, time.Since(start), err)

		return nil
	}
}

func (m *LoggerMiddleware) log(c echo.Context, latency time.Duration, err error) {
	req := c.Request()
	res := c.Response()

	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.Int64("bytes_out", res.Size),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if userID, ok := deliverycontext.GetUserID(c); ok {
		attrs = append(attrs, slog.Int64("user_id", userID))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelDebug
	switch {
	case res.Status >= 500:
		level = slog.LevelError
	case res.Status >= 400:
		level = slog.LevelWarn
	case m.verbose:
		level = slog.LevelInfo
	}

	m.logger.LogAttrs(req.Context(), level, "HTTP request", attrs...)
}
