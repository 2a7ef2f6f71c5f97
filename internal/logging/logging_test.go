package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		log, err := New(lvl, "console")
		require.NoError(t, err, lvl)
		want, _ := zapcore.ParseLevel(lvl)
		assert.True(t, log.Core().Enabled(want), lvl)
		assert.False(t, log.Core().Enabled(want-1), "%s should filter lower levels", lvl)
	}
}

func TestNew_JSON(t *testing.T) {
	log, err := New("info", "json")
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNew_Rejects(t *testing.T) {
	_, err := New("loud", "console")
	assert.Error(t, err)
	_, err = New("info", "xml")
	assert.Error(t, err)
}
