package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewZapLogger_Level(t *testing.T) {
	assert.True(t, NewZapLogger("debug", "development").Core().Enabled(zap.DebugLevel))
	assert.False(t, NewZapLogger("warn", "production").Core().Enabled(zap.InfoLevel))
	assert.True(t, NewZapLogger("bogus", "production").Core().Enabled(zap.InfoLevel))
}
