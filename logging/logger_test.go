package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitFallsBackToInfo(t *testing.T) {
	l, err := Init("loud", "dev")
	require.NoError(t, err)
	defer l.Closer()
	assert.Equal(t, zapcore.InfoLevel, l.Level.Level())
}

func TestInitParsesLevel(t *testing.T) {
	l, err := Init("WARN", "prod")
	require.NoError(t, err)
	defer l.Closer()
	assert.Equal(t, zapcore.WarnLevel, l.Level.Level())
	assert.False(t, l.Base.Core().Enabled(zapcore.InfoLevel))
}
