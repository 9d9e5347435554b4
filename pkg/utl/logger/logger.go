package logger

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/utilitarian/pkg/utl"
)

type Logger struct {
	enabled atomic.Bool
	sugar   *zap.SugaredLogger
}

var (
	defaultOnce   sync.Once
	defaultLogger atomic.Pointer[Logger]
)

// New builds a logger writing at level: debug, info, warn or error.
func New(level string) (*Logger, error) {
	lower := strings.ToLower(level)
	cfg := zap.NewProductionConfig()
	var zapLevel zapcore.Level
	switch lower {
	case "debug":
		cfg = zap.NewDevelopmentConfig()
		zapLevel = zapcore.DebugLevel
	case "info", "":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, errors.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, errors.Wrap(err, "build zap logger")
	}
	return FromZap(z), nil
}

// FromZap wraps an existing zap logger. The result starts enabled.
func FromZap(z *zap.Logger) *Logger {
	l := &Logger{sugar: z.Sugar()}
	l.enabled.Store(true)
	return l
}

// Default returns the shared logger, an info level production logger unless
// replaced with SetDefault.
func Default() *Logger {
	defaultOnce.Do(func() {
		if defaultLogger.Load() != nil {
			return
		}
		l, err := New("info")
		if err != nil {
			l = FromZap(zap.NewNop())
		}
		defaultLogger.CompareAndSwap(nil, l)
	})
	return defaultLogger.Load()
}

func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

func (l *Logger) SetEnabled(enabled bool) {
	l.enabled.Store(enabled)
}

func (l *Logger) Enabled() bool {
	return l.enabled.Load()
}

func (l *Logger) Log(messages ...any) {
	l.emit(true, l.sugar.Info, messages)
}

func (l *Logger) Debug(messages ...any) {
	l.emit(true, l.sugar.Debug, messages)
}

func (l *Logger) Info(messages ...any) {
	l.emit(true, l.sugar.Info, messages)
}

func (l *Logger) Warn(warnings ...any) {
	l.emit(false, l.sugar.Warn, warnings)
}

// Error writes each error with its stack trace when it carries one. Joined
// errors are written one entry per error.
func (l *Logger) Error(errs ...any) {
	for _, e := range errs {
		if utl.IsNil(e) {
			continue
		}
		err, ok := e.(error)
		if !ok {
			l.sugar.Error(e)
			continue
		}
		for _, one := range utl.GetErrors(err) {
			if _, traced := one.(interface{ StackTrace() errors.StackTrace }); traced {
				l.sugar.Errorf("%+v", one)
				continue
			}
			l.sugar.Error(one.Error())
		}
	}
}

func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

func (l *Logger) emit(gated bool, write func(args ...any), messages []any) {
	if gated && !l.enabled.Load() {
		return
	}
	for _, m := range messages {
		if !utl.IsNil(m) {
			write(m)
		}
	}
}
