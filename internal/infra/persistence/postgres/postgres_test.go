package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWatcher_Report(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur sql.DBStats
		want      string
	}{
		{
			name: "no new waits",
			prev: sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:  sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
		},
		{
			name: "short waits are debug",
			cur:  sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond},
			want: `"level":"DEBUG"`,
		},
		{
			name: "long waits warn",
			cur:  sql.DBStats{WaitCount: 1, WaitDuration: time.Second, InUse: 10, MaxOpenConnections: 10},
			want: `"level":"WARN"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := &poolWatcher{
				logger: slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
			}

			w.report(context.Background(), tt.prev, tt.cur)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "Postgres pool contention")
		})
	}
}
