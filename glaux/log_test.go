package glaux

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LogConfig{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.ErrorLevel))

	_, err = NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	s, logger, err := Setup(strings.NewReader("log:\n  level: debug\n"))
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
	assert.Equal(t, DefaultSettings().Window, s.Window)

	_, _, err = Setup(strings.NewReader("log:\n  level: nope\n"))
	assert.Error(t, err)
}
