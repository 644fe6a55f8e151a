package logger

import (
	"testing"

	"rangeiq/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGet_BeforeInitialize(t *testing.T) {
	log = nil
	assert.NotNil(t, Get())
	assert.NoError(t, Sync())
}

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(config.LoggerConfig{Level: "debug", Env: "production"}))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize(config.LoggerConfig{Level: "warn", Env: "development"}))
	assert.False(t, Get().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Get().Core().Enabled(zapcore.WarnLevel))

	assert.Error(t, Initialize(config.LoggerConfig{Level: "chatty"}))
}
