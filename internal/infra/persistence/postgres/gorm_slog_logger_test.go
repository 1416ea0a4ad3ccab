package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"editorradar/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestRedactNumericLiterals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{
			in:   "WHERE l.latitude BETWEEN 18.85 AND -19.3 AND srid IN (4326)",
			want: "WHERE l.latitude BETWEEN ? AND ? AND srid IN (?)",
		},
		{
			in:   "SELECT * FROM t2 WHERE id = $1",
			want: "SELECT * FROM t2 WHERE id = $1",
		},
		{
			in:   "ST_MakePoint(72.877,19.076)",
			want: "ST_MakePoint(?,?)",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, redactNumericLiterals(tt.in))
	}
}

func TestGormSlogLogger_TraceRedactsOutsideDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	l := newGormSlogLogger(base, &config.Config{})
	slow := time.Now().Add(-time.Second)
	l.Trace(context.Background(), slow, func() (string, int64) {
		return "SELECT 1 FROM editor_locations WHERE latitude = 19.076", 1
	}, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
	assert.NotContains(t, buf.String(), "19.076")

	buf.Reset()
	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	debug := newGormSlogLogger(base, debugCfg).LogMode(logger.Info)
	debug.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1 FROM editor_locations WHERE latitude = 19.076", 1
	}, nil)

	assert.Contains(t, buf.String(), "19.076")
}
