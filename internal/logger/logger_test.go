package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			log, err := NewLogger(format, level)
			require.NoError(t, err, "%s/%s", format, level)

			want, err := zapcore.ParseLevel(level)
			require.NoError(t, err)
			require.True(t, log.Core().Enabled(want))
			require.False(t, log.Core().Enabled(want-1))
		}
	}
}

func TestNewLoggerNone(t *testing.T) {
	log, err := NewLogger("text", "none")
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNewLoggerErrors(t *testing.T) {
	_, err := NewLogger("text", "verbose")
	require.EqualError(t, err, "unknown log level: verbose")

	_, err = NewLogger("xml", "info")
	require.EqualError(t, err, "unknown log format: xml")
}
