package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"rently/config"
	deliverycontext "rently/internal/delivery/context"
	"rently/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), &buf
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "users"`, 1
}

func TestGormSlogLogger_LogsFailedQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LogsSlowQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	quiet, quietBuf := newBufferedGormLogger(false)
	quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newBufferedGormLogger(true)
	verbose.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, verboseBuf.String(), "GORM query")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, base := newBufferedGormLogger(false)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, reqBuf.String(), "request_id=req-1")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	l, buf := newBufferedGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
}
