package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagkit/flagkit/pkg/logger"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden")
	log.Info("visible", "k", "v")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "v", record["k"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelDebug),
	)

	log.Debug("detail")
	assert.Contains(t, buf.String(), "msg=detail")
}

func TestInvalidFormatPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
}

func TestStaticAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithService("flag-sync"),
		logger.WithAttr(logger.Namespace("checkout")),
	)
	log.Info("loaded")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "flag-sync", record["service"])
	assert.Equal(t, "checkout", record["namespace"])
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))

	assert.Equal(t, "feature", logger.Feature("redesign").Key)
	assert.Equal(t, "decision", logger.Decision("rule_matched").Key)
	assert.Equal(t, "config_version", logger.ConfigVersion("v42").Key)

	elapsed := logger.Elapsed(250 * time.Millisecond)
	require.Equal(t, "elapsed", elapsed.Key)
	assert.InDelta(t, 0.25, elapsed.Value.Float64(), 1e-9)
}

func TestNilOutputIgnored(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(nil), logger.WithOutput(&buf))
	log.Info("kept")
	assert.True(t, strings.Contains(buf.String(), "kept"))
}
