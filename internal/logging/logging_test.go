package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "folio.log")
	logger, err := New(Options{Path: path, Level: "info"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hello")
	_ = logger.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
	assert.NotContains(t, string(b), "hidden")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")
	logger, err := New(Options{Path: path, Level: "warn", Verbose: true})
	require.NoError(t, err)
	logger.Debug("detail")
	_ = logger.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "detail")
}

func TestNew_OffIsNop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")
	logger, err := New(Options{Path: path, Level: "off"})
	require.NoError(t, err)
	logger.Info("nothing")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNew_BadLevel(t *testing.T) {
	logger, err := New(Options{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
	assert.NotNil(t, logger)
}
