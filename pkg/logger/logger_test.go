package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitWritesJSONToFile(t *testing.T) {
	restore := Replace(Logger)
	defer restore()

	path := filepath.Join(t.TempDir(), "logs", "catalog.log")
	require.NoError(t, Init("debug", "json", "file", path, zap.String("service", "catalog")))

	Info("Video created", zap.String("video_id", "v1"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.Contains(t, line, `"msg":"Video created"`)
	assert.Contains(t, line, `"service":"catalog"`)
	assert.Contains(t, line, `"video_id":"v1"`)
}

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	restore := Replace(Logger)
	defer restore()

	require.NoError(t, Init("verbose", "console", "stdout", ""))
	assert.False(t, Logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, Logger.Core().Enabled(zap.InfoLevel))
}

func TestReplace(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	restore := Replace(zap.New(core))

	Info("dropped")
	Warn("Orphan delete failed", zap.String("path", "a/thumb.png"))
	restore()
	Warn("after restore")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Orphan delete failed", entry.Message)
	assert.Equal(t, "a/thumb.png", entry.ContextMap()["path"])
}
