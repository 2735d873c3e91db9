package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"hyperlocal/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, logging.ParseLevel(in), in)
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Run("should write json records at or above the level", func(t *testing.T) {
		var buf bytes.Buffer
		l := logging.NewWithWriter(&buf, "warn", "json")

		l.Info("dropped")
		l.Warn("kept", "order_id", "42")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "kept", rec["msg"])
		assert.Equal(t, "42", rec["order_id"])
	})

	t.Run("should write text records when asked", func(t *testing.T) {
		var buf bytes.Buffer
		logging.NewWithWriter(&buf, "info", "text").Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})
}

func TestContext(t *testing.T) {
	t.Run("should return stored logger", func(t *testing.T) {
		l := logging.Discard()
		ctx := logging.IntoContext(context.Background(), l)
		assert.Same(t, l, logging.FromContext(ctx))
	})

	t.Run("should fall back to default logger", func(t *testing.T) {
		assert.Same(t, slog.Default(), logging.FromContext(context.Background()))
	})
}
