package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Astemirdum/book-catalogue/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Sink(t *testing.T) {
	sink := filepath.Join(t.TempDir(), "catalogue.log")
	log := logger.NewLogger(logger.Log{LogLevel: zapcore.InfoLevel, Sink: sink}, "test")

	log.Debug("hidden")
	log.Info("visible")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(sink)
	require.NoError(t, err)
	require.Contains(t, string(data), "visible")
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), `"logger":"test"`)
}
