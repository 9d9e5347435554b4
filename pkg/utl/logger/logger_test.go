package logger

import (
	stderrors "errors"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return FromZap(zap.New(core)), logs
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"debug", "info", "", "WARN", "warning", "error"} {
		l, err := New(level)
		require.NoError(t, err, level)
		assert.True(t, l.Enabled())
	}

	_, err := New("verbose")
	assert.EqualError(t, err, `unknown log level "verbose" (expected debug, info, warn, or error)`)

	var traced interface{ StackTrace() errors.StackTrace }
	assert.ErrorAs(t, err, &traced)
}

func TestLogger_SkipsNil(t *testing.T) {
	t.Parallel()

	l, logs := observed()
	var nilMap map[string]int
	l.Info("a", nil, nilMap, "b")
	l.Debug("c")
	l.Log("d")

	require.Equal(t, 4, logs.Len())
	entries := logs.AllUntimed()
	assert.Equal(t, "a", entries[0].Message)
	assert.Equal(t, "b", entries[1].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[3].Level)
}

func TestLogger_Disabled(t *testing.T) {
	t.Parallel()

	l, logs := observed()
	l.SetEnabled(false)
	assert.False(t, l.Enabled())

	l.Info("hidden")
	l.Debug("hidden")
	l.Log("hidden")
	l.Warn("shown")
	l.Error(errors.New("shown"))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.AllUntimed()[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, logs.AllUntimed()[1].Level)

	l.SetEnabled(true)
	l.Info("back")
	assert.Equal(t, 1, logs.FilterMessage("back").Len())
}

func TestLogger_ErrorStack(t *testing.T) {
	t.Parallel()

	l, logs := observed()
	l.Error(errors.New("traced"), nil, "plain", errors.WithStack(errors.New("wrapped")))

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Contains(t, entries[0].Message, "traced")
	assert.Contains(t, entries[0].Message, "TestLogger_ErrorStack")
	assert.Equal(t, "plain", entries[1].Message)
	assert.Contains(t, entries[2].Message, "wrapped")
}

func TestLogger_ErrorJoined(t *testing.T) {
	t.Parallel()

	l, logs := observed()
	l.Error(stderrors.Join(errors.New("first"), stderrors.New("second")))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Message, "first")
	assert.Contains(t, entries[0].Message, "TestLogger_ErrorJoined")
	assert.Equal(t, "second", entries[1].Message)
}

func TestDefault(t *testing.T) {
	l := Default()
	require.NotNil(t, l)
	assert.Same(t, l, Default())

	replacement, _ := observed()
	SetDefault(replacement)
	assert.Same(t, replacement, Default())

	SetDefault(nil)
	assert.Same(t, replacement, Default())
}
