// Package gorm routes gorm's SQL logging through zerolog.
package gorm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultSlowThreshold marks queries slower than this as warnings.
const DefaultSlowThreshold = 200 * time.Millisecond

// Logger implements gormlogger.Interface on top of a zerolog logger.
type Logger struct {
	zl            zerolog.Logger
	level         gormlogger.LogLevel
	SlowThreshold time.Duration
}

var _ gormlogger.Interface = (*Logger)(nil)

// New returns a gorm logger writing to the global zerolog logger.
func New() *Logger {
	return NewWithLogger(log.Logger)
}

// NewWithLogger returns a gorm logger writing to zl.
func NewWithLogger(zl zerolog.Logger) *Logger {
	return &Logger{
		zl:            zl.With().Str("component", "gorm").Logger(),
		level:         gormlogger.Warn,
		SlowThreshold: DefaultSlowThreshold,
	}
}

// LogMode returns a copy of the logger with the given level.
func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	nl := *l
	nl.level = level

	return &nl
}

// Info logs at info level.
func (l *Logger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.zl.Info().Msg(fmt.Sprintf(msg, args...))
	}
}

// Warn logs at warn level.
func (l *Logger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.zl.Warn().Msg(fmt.Sprintf(msg, args...))
	}
}

// Error logs at error level.
func (l *Logger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.zl.Error().Msg(fmt.Sprintf(msg, args...))
	}
}

// Trace logs a finished SQL statement. Record-not-found is not an error here.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		sql, rows := fc()
		l.zl.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query failed")
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.zl.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("slow query")
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.zl.Debug().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query")
	}
}
