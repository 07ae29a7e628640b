package util

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"student-management-api/config"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger(config.LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger(config.LogConfig{Level: "loud"})
	require.Error(t, err)
}
