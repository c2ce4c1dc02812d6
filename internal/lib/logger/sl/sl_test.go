package sl_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promocodeapi/internal/lib/logger/sl"
)

func TestErr(t *testing.T) {
	attr := sl.Err(errors.New("boom"))

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, sl.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, sl.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, sl.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, sl.ParseLevel("nonsense"))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := sl.New(&buf, "info", time.UTC)

	log.Debug("hidden")
	log.Info("db_migration_skip", slog.String("component", "database"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "db_migration_skip", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "database", entry["component"])
	assert.NotEmpty(t, entry["ts"])
	assert.NotContains(t, entry, "time")
}
