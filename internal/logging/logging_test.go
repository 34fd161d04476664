package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFiltersBelowConfiguredLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, "info")

	logger.Debug("hidden")
	logger.Info("probe succeeded")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "probe succeeded")
	assert.Contains(t, buf.String(), "INFO")
}

func TestNewUnknownLevelFallsBackToWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, "chatty")

	logger.Info("hidden")
	logger.Warn("connection lost")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "connection lost")
}
