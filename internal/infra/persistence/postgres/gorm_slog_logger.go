package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes GORM output through slog. Statements are logged at debug
// in debug mode, slow statements at warn and failures at error. Missing rows
// are an expected outcome for lookups and never logged.
type queryLogger struct {
	base  *slog.Logger
	level gormlogger.LogLevel
	slow  time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	ql := &queryLogger{base: base, level: gormlogger.Warn, slow: slowQueryThreshold}
	if cfg != nil && cfg.Env.Debug {
		ql.level = gormlogger.Info
	}

	return ql
}

func (q *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *q
	next.level = level

	return &next
}

func (q *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	q.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (q *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	q.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (q *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	q.printf(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (q *queryLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if q.base == nil || q.level < threshold {
		return
	}

	q.from(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (q *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if q.base == nil || q.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	switch {
	case failed && q.level >= gormlogger.Error:
		q.from(ctx).LogAttrs(ctx, slog.LevelError, "Query failed",
			append(statementAttrs(fc, elapsed), slog.String("error", err.Error()))...)
	case q.slow > 0 && elapsed > q.slow && q.level >= gormlogger.Warn:
		q.from(ctx).LogAttrs(ctx, slog.LevelWarn, "Slow query",
			append(statementAttrs(fc, elapsed), slog.Duration("threshold", q.slow))...)
	case q.level >= gormlogger.Info:
		q.from(ctx).LogAttrs(ctx, slog.LevelDebug, "Query", statementAttrs(fc, elapsed)...)
	}
}

// from prefers the request-scoped logger so statements carry the request ID.
func (q *queryLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, q.base)
}

func statementAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
		slog.String("caller", utils.FileWithLineNum()),
	}
}
