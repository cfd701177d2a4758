package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"shop/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferedQueryLogger(debug bool) (gormlogger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newQueryLogger(base, cfg), buf
}

func statement() (string, int64) {
	return "SELECT 1", 1
}

func TestQueryLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantLog bool
	}{
		{name: "failure is logged", begin: time.Now(), err: errors.New("boom"), want: "Query failed", wantLog: true},
		{name: "record not found is silent", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "slow query warns", begin: time.Now().Add(-time.Second), want: "Slow query", wantLog: true},
		{name: "fast query silent outside debug", begin: time.Now()},
		{name: "fast query logged in debug", debug: true, begin: time.Now(), want: `"msg":"Query"`, wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ql, buf := newBufferedQueryLogger(tt.debug)

			ql.Trace(context.Background(), tt.begin, statement, tt.err)

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "SELECT 1")
		})
	}
}

func TestQueryLogger_LogModeSilences(t *testing.T) {
	ql, buf := newBufferedQueryLogger(true)

	ql.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), statement, errors.New("boom"))
	ql.LogMode(gormlogger.Silent).Error(context.Background(), "oops %d", 1)

	assert.Empty(t, buf.String())
}
