package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	quiet, err := New(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, quiet.Core().Enabled(zapcore.WarnLevel))

	verbose, err := New(true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))
}

func TestBuild_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deflake.log")

	logger, err := build(true, []string{path})
	require.NoError(t, err)

	logger.Info("class stabilized", zap.String("class", "pkg.ErrorTest0"), zap.Int("iterations", 2))
	require.NoError(t, logger.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(raw))), &entry))

	assert.Equal(t, "class stabilized", entry["msg"])
	assert.Equal(t, "pkg.ErrorTest0", entry["class"])
	assert.EqualValues(t, 2, entry["iterations"])
	assert.Contains(t, entry, "time")
}
