package logging

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		level   zapcore.Level
	}{
		{"default", DefaultConfig(), false, zapcore.InfoLevel},
		{"development", DevelopmentConfig(), false, zapcore.DebugLevel},
		{"warn", Config{Level: "warn"}, false, zapcore.WarnLevel},
		{"invalid level", Config{Level: "loud"}, true, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.level))
			if tt.level > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.level-1))
			}
		})
	}
}

func TestFallbacks(t *testing.T) {
	assert.NotNil(t, NewDefault())
	assert.NotNil(t, NewDevelopment())
	assert.False(t, NewNop().Core().Enabled(zapcore.ErrorLevel))
}

func TestConfigs(t *testing.T) {
	assert.Equal(t, "info", DefaultConfig().Level)
	assert.False(t, DefaultConfig().Development)
	assert.Equal(t, "debug", DevelopmentConfig().Level)
	assert.True(t, DevelopmentConfig().Development)
	assert.Equal(t, "json", encodingFormat(false))
	assert.Equal(t, "console", encodingFormat(true))
}

func TestRequestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	logger.Debug("request finished",
		Verb("GET"),
		URL("foo/bar?x=1"),
		Status(404),
		Duration(5*time.Millisecond),
		RequestID(),
	)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "GET", fields["verb"])
	assert.Equal(t, "foo/bar?x=1", fields["url"])
	assert.Equal(t, int64(404), fields["status"])
	assert.Equal(t, 5*time.Millisecond, fields["duration"])

	id, ok := fields["request_id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestIDIsUnique(t *testing.T) {
	assert.NotEqual(t, RequestID().String, RequestID().String)
}
