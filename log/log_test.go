package log

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForComponent(t *testing.T) {
	t.Cleanup(func() { To(nil) })

	// Created before a sink is installed
	sut := ForComponent("test").With(slog.String("foo", "bar"))

	t.Run("Discards Without Sink", func(t *testing.T) {
		To(nil)
		assert.False(t, sut.Handler().Enabled(t.Context(), slog.LevelError))
	})

	t.Run("Keeps Attributes", func(t *testing.T) {
		var buf bytes.Buffer
		To(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		sut.With(Error(errors.New("dummy"))).Debug("hello")

		out := buf.String()
		require.NotEmpty(t, out)
		assert.Contains(t, out, "component=test")
		assert.Contains(t, out, "foo=bar")
		assert.Contains(t, out, "error=dummy")
		assert.Contains(t, out, "msg=hello")
	})

	t.Run("Groups", func(t *testing.T) {
		var buf bytes.Buffer
		To(slog.NewTextHandler(&buf, nil))

		sut.WithGroup("g").Info("grouped", slog.Int("n", 1))
		assert.Contains(t, buf.String(), "g.n=1")
	})
}
