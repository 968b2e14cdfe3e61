package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"resume-wizard/internal/config"
)

func TestInteractiveWithoutFileIsSilent(t *testing.T) {
	l, err := New(config.LoggingConfig{Level: "debug"}, Interactive)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestOffIsSilent(t *testing.T) {
	l, err := New(config.LoggingConfig{Level: "off", File: "ignored.log"}, Batch)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestInteractiveWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wizard.log")
	l, err := New(config.LoggingConfig{Level: "info", File: path}, Interactive)
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	l.Info("step advanced")
	_ = l.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"step advanced"`)
}

func TestBadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud"}, Batch)
	assert.Error(t, err)
}
