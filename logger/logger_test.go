//go:build unit
// +build unit

package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuildConfigByEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		env              string
		wantLevel        zapcore.Level
		wantDisableStack bool
		wantCaller       bool
		wantCallerKey    string
	}{
		{name: "development", env: "development", wantLevel: zap.DebugLevel, wantDisableStack: true, wantCallerKey: zapcore.OmitKey},
		{name: "debug", env: " DEBUG ", wantLevel: zap.DebugLevel, wantCaller: true, wantCallerKey: "caller"},
		{name: "production", env: "production", wantLevel: zap.InfoLevel, wantDisableStack: true, wantCallerKey: zapcore.OmitKey},
		{name: "fallback", env: "unknown", wantLevel: zap.InfoLevel, wantDisableStack: true, wantCallerKey: zapcore.OmitKey},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, withCaller := buildConfig(tc.env)

			require.Equal(t, tc.wantLevel, cfg.Level.Level())
			require.Equal(t, tc.wantDisableStack, cfg.DisableStacktrace)
			require.Equal(t, tc.wantCaller, withCaller)
			require.Equal(t, tc.wantCallerKey, cfg.EncoderConfig.CallerKey)
			require.Equal(t, "timestamp", cfg.EncoderConfig.TimeKey)
			require.Equal(t, []string{"stdout"}, cfg.OutputPaths)
		})
	}
}

func TestWithOutputPaths(t *testing.T) {
	cfg, _ := buildConfig("production")
	WithOutputPaths("stderr")(&cfg)
	require.Equal(t, []string{"stderr"}, cfg.OutputPaths)

	WithOutputPaths()(&cfg)
	require.Equal(t, []string{"stderr"}, cfg.OutputPaths)
}

func TestNewAndNop(t *testing.T) {
	l, err := New("brmask", "production", WithOutputPaths("stderr"))
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Infow("startup", "component", "logger")
	l.SafeSync()

	var _ LoggerInterface = Nop()
	var _ LoggerInterface = Nop().With("k", "v")
	Nop().Debugw("dropped", "k", "v")
}

func TestIsIgnorableSyncError(t *testing.T) {
	require.False(t, isIgnorableSyncError(nil))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stdout: invalid argument")))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: inappropriate ioctl for device")))
	require.False(t, isIgnorableSyncError(errors.New("disk write failed")))
}
