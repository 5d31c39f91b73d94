package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuild_BadLevelFallsBackToInfo(t *testing.T) {
	l, cleanup := Build(Options{Level: "loud", JSON: true})
	defer cleanup()

	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewWithRotate_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.log")
	l, cleanup := NewWithRotate("info", true, FileRotate{Enable: true, Filename: path, MaxSizeMB: 1})

	l.Info("seeding completed", zap.Int64("total", 36))
	cleanup()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"seeding completed"`)
	assert.Contains(t, string(b), `"total":36`)
}

func TestToStdLogger(t *testing.T) {
	l, cleanup := New("debug", true)
	defer cleanup()

	std, err := ToStdLogger(l, zapcore.DebugLevel)
	require.NoError(t, err)
	require.NotNil(t, std)
	std.Printf("%s", "hello")
}
