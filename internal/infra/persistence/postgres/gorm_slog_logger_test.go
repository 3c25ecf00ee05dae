package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"authproxy/config"
	deliverycontext "authproxy/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return "SELECT * FROM users", 1
}

func TestGormSlogLogger_TraceUsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("requestId", "req-1")))
	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, base.String())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(scoped.Bytes(), &entry))
	assert.Equal(t, "Database query failed", entry["msg"])
	assert.Equal(t, "req-1", entry["requestId"])
	assert.Equal(t, "boom", entry["error"])
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "Database slow query")
}

func TestGormSlogLogger_InfoOnlyInDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	cfg := &config.Config{}
	cfg.Env.Debug = true
	debugLogger := newGormSlogLogger(newBufferLogger(&buf), cfg)
	debugLogger.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "Database query")

	buf.Reset()
	debugLogger.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Empty(t, buf.String())
}
