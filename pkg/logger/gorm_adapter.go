package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog/pkg/metrics"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// GormLoggerConfig tunes how SQL traces are reported.
type GormLoggerConfig struct {
	SlowThreshold             time.Duration
	IgnoreRecordNotFoundError bool
	AddCaller                 bool
	// RecordMetrics observes every traced statement in pkg/metrics.
	RecordMetrics bool
}

func DefaultGormLoggerConfig() *GormLoggerConfig {
	return &GormLoggerConfig{
		SlowThreshold:             200 * time.Millisecond,
		IgnoreRecordNotFoundError: true,
		AddCaller:                 true,
		RecordMetrics:             true,
	}
}

// GormLoggerAdapter sends GORM's logs and SQL traces to zap.
type GormLoggerAdapter struct {
	level  gormlogger.LogLevel
	logger *zap.Logger
	config *GormLoggerConfig
}

func NewGormLoggerAdapter(level gormlogger.LogLevel) *GormLoggerAdapter {
	return NewGormLoggerAdapterWithConfig(level, DefaultGormLoggerConfig())
}

func NewGormLoggerAdapterWithConfig(level gormlogger.LogLevel, config *GormLoggerConfig) *GormLoggerAdapter {
	if config == nil {
		config = DefaultGormLoggerConfig()
	}
	return &GormLoggerAdapter{level: level, logger: Get().Named("gorm"), config: config}
}

// ParseGormLevel maps a config string to a GORM level. Unknown values mean warn.
func ParseGormLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug", "info":
		return gormlogger.Info
	case "error":
		return gormlogger.Error
	case "silent":
		return gormlogger.Silent
	default:
		return gormlogger.Warn
	}
}

func (l *GormLoggerAdapter) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &GormLoggerAdapter{level: level, logger: l.logger, config: l.config}
}

func (l *GormLoggerAdapter) loggerFor(ctx context.Context) *zap.Logger {
	lg := l.logger
	if id := RequestIDFromContext(ctx); id != "" {
		lg = lg.With(zap.String("request_id", id))
	}
	if l.config.AddCaller {
		lg = lg.WithOptions(zap.AddCaller())
	}
	return lg
}

func (l *GormLoggerAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.loggerFor(ctx).Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLoggerAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.loggerFor(ctx).Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLoggerAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.loggerFor(ctx).Error(fmt.Sprintf(msg, args...))
	}
}

// Trace runs once per statement. Metrics are recorded even when the level
// silences logging.
func (l *GormLoggerAdapter) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	elapsed := time.Since(begin)
	notFound := errors.Is(err, gormlogger.ErrRecordNotFound)
	slow := l.config.SlowThreshold > 0 && elapsed > l.config.SlowThreshold

	if !l.config.RecordMetrics && l.level <= gormlogger.Silent {
		return
	}
	sql, rows := fc()

	if l.config.RecordMetrics {
		outcome := metrics.OutcomeOK
		switch {
		case notFound:
			outcome = metrics.OutcomeNotFound
		case err != nil:
			outcome = metrics.OutcomeError
		}
		metrics.ObserveQuery(sql, elapsed, outcome)
		if slow {
			metrics.ObserveSlowQuery(sql)
		}
	}

	if l.level <= gormlogger.Silent {
		return
	}

	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
	}
	lg := l.loggerFor(ctx)

	switch {
	case err != nil && l.level >= gormlogger.Error && !(notFound && l.config.IgnoreRecordNotFoundError):
		lg.Error("Database operation failed", append(fields, zap.Error(err))...)
	case slow && l.level >= gormlogger.Warn:
		lg.Warn("Slow SQL query", append(fields, zap.Duration("threshold", l.config.SlowThreshold))...)
	case l.level >= gormlogger.Info:
		lg.Info("SQL query executed", fields...)
	}
}

var _ gormlogger.Interface = (*GormLoggerAdapter)(nil)
