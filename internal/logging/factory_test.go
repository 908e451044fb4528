package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uap-go/uaparser/internal/logging"
)

func TestNew_DefaultsToJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logging.New(logging.WithOutput(buf))
	log.Info("hello", logging.Component("loader"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "loader", entry["component"])
}

func TestNew_TextFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logging.New(logging.WithOutput(buf), logging.WithFormat(logging.FormatText))
	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_LevelFiltersBelowThreshold(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logging.New(logging.WithOutput(buf), logging.WithLevel(slog.LevelWarn))
	log.Info("suppressed")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_StaticAttrsAppearOnEveryRecord(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logging.New(logging.WithOutput(buf), logging.WithAttrs(slog.String("service", "uaparser")))
	log.Info("hello")
	assert.Contains(t, buf.String(), `"service":"uaparser"`)
}

func TestCacheEvent(t *testing.T) {
	assert.Equal(t, slog.String("cache_event", "hit"), logging.CacheEvent(true))
	assert.Equal(t, slog.String("cache_event", "miss"), logging.CacheEvent(false))
}

func TestError_NilReturnsEmptyAttr(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logging.Error(nil))
}
