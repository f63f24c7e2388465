package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level), logs
}

func traceQuery(l *GormLogger, ctx context.Context, begin time.Time, err error) {
	l.Trace(ctx, begin, func() (string, int64) {
		return "SELECT * FROM commissions WHERE client_id = $1", 3
	}, err)
}

func TestGormLoggerTrace(t *testing.T) {
	t.Run("logs the statement with timing and rows", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Info)

		traceQuery(l, context.Background(), time.Now(), nil)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "query", entry.Message)
		fields := entry.ContextMap()
		assert.Equal(t, int64(3), fields["rows"])
		assert.Contains(t, fields["sql"], "commissions")
	})

	t.Run("carries the request id from the context", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Info)
		ctx := WithRequestID(context.Background(), "req-7")

		traceQuery(l, ctx, time.Now(), nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "req-7", logs.All()[0].ContextMap()["request_id"])
	})

	t.Run("failed statements log at error", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Error)

		traceQuery(l, context.Background(), time.Now(), errors.New("connection reset"))

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "query failed", entry.Message)
		assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	})

	t.Run("record-not-found is silenced", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Error)

		traceQuery(l, context.Background(), time.Now(), gormlogger.ErrRecordNotFound)

		assert.Zero(t, logs.Len())
	})

	t.Run("slow statements warn", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Warn)

		traceQuery(l, context.Background(), time.Now().Add(-time.Second), nil)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "slow query", entry.Message)
		assert.Equal(t, zapcore.WarnLevel, entry.Level)
	})

	t.Run("silent level drops everything", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Silent)

		traceQuery(l, context.Background(), time.Now(), errors.New("ignored"))

		assert.Zero(t, logs.Len())
	})
}

func TestGormLoggerLogMode(t *testing.T) {
	l, logs := newObservedGormLogger(gormlogger.Info)

	silenced := l.LogMode(gormlogger.Silent)
	traceQuery(silenced.(*GormLogger), context.Background(), time.Now(), nil)
	assert.Zero(t, logs.Len())

	// The original keeps its level
	traceQuery(l, context.Background(), time.Now(), nil)
	assert.Equal(t, 1, logs.Len())
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("info"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("verbose"))
}
