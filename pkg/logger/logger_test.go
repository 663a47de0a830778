package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hofware/pkg/logger"
)

type traceKey struct{}

func TestNew_JSONWithExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.Config{Output: &buf, Component: "forms"},
		logger.ContextValue("trace_id", traceKey{}),
		nil,
	)

	ctx := context.WithValue(context.Background(), traceKey{}, "abc")
	log.InfoContext(ctx, "hello", slog.Int("step", 2))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "forms", rec["component"])
	require.Equal(t, "abc", rec["trace_id"])
	require.EqualValues(t, 2, rec["step"])
}

func TestNew_LevelAndFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.Config{Output: &buf, Level: "warn", Format: "text"})

	log.Info("dropped")
	require.Empty(t, buf.String())

	log.Warn("kept")
	require.Contains(t, buf.String(), "msg=kept")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestDecorator_KeepsExtractorsAcrossWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), logger.ContextValue("trace_id", traceKey{}))
	log := slog.New(h).With("a", 1).WithGroup("g")

	ctx := context.WithValue(context.Background(), traceKey{}, "xyz")
	log.InfoContext(ctx, "grouped")
	require.Contains(t, buf.String(), `"trace_id":"xyz"`)
}

func TestNewNope(t *testing.T) {
	t.Parallel()
	require.NotPanics(t, func() { logger.NewNope().Error("nothing") })
}
