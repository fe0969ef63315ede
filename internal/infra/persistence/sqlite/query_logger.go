package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"freshdeal/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// SQLite runs in process, so anything past this is worth a look.
	slowQueryThreshold = 50 * time.Millisecond

	// Seed inserts batch many rows into one statement.
	maxLoggedSQL = 512
)

// queryLogger sends GORM output to slog, tagged with the database it serves.
type queryLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
	slow   time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config, dsn string) logger.Interface {
	if base == nil {
		base = slog.Default()
	}
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &queryLogger{
		logger: base.With(slog.String("database", databaseName(dsn))),
		level:  level,
		slow:   slowQueryThreshold,
	}
}

// databaseName names dsn in logs without its query parameters.
func databaseName(dsn string) string {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return "memory"
	}
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")

	return filepath.Base(path)
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) printf(ctx context.Context, need logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < need {
		return
	}
	l.logger.LogAttrs(ctx, level, "SQLite", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs one statement. Missing rows are an expected lookup result and
// only show up at debug.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.LogAttrs(ctx, slog.LevelDebug, "SQLite row not found", statementAttrs(fc, elapsed)...)
	case err != nil && l.level >= logger.Error:
		attrs := append(statementAttrs(fc, elapsed), slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "SQLite statement failed", attrs...)
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		attrs := append(statementAttrs(fc, elapsed), slog.Duration("threshold", l.slow))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "SQLite slow statement", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "SQLite statement", statementAttrs(fc, elapsed)...)
	}
}

func statementAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()
	if len(sql) > maxLoggedSQL {
		sql = sql[:maxLoggedSQL] + "..."
	}

	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Duration("elapsed", elapsed),
	}
	// GORM reports -1 when the driver gave no row count.
	if rows >= 0 {
		attrs = append(attrs, slog.Int64("rows", rows))
	}

	return attrs
}
