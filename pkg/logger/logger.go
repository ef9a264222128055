package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nikmy/menuseed/pkg/environment"
	"github.com/nikmy/menuseed/pkg/errors"
)

type Logger interface {
	With(label string) Logger

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	Debug(err error)
	Info(err error)
	Warn(err error)
	Error(err error)
}

func New(env environment.Env) (Logger, error) {
	var logger *zap.Logger
	var err error

	switch env {
	case environment.Production:
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, errors.WrapFail(err, "init logger")
	}

	return FromZap(logger), nil
}

// FromZap wraps an already configured zap logger.
func FromZap(l *zap.Logger) Logger {
	return &wrapper{base: l.Sugar()}
}

type wrapper struct {
	base *zap.SugaredLogger
}

func (w *wrapper) With(label string) Logger {
	return &wrapper{w.base.Named(label)}
}

func (w *wrapper) logf(lvl zapcore.Level, format string, args ...any) {
	if !w.base.Desugar().Core().Enabled(lvl) {
		return
	}

	switch lvl {
	case zapcore.DebugLevel:
		w.base.Debugf(format, args...)
	case zapcore.InfoLevel:
		w.base.Infof(format, args...)
	case zapcore.WarnLevel:
		w.base.Warnf(format, args...)
	default:
		w.base.Errorf(format, args...)
	}
	_ = w.base.Sync()
}

func (w *wrapper) Debug(err error) { w.logf(zapcore.DebugLevel, "%s", err) }
func (w *wrapper) Info(err error)  { w.logf(zapcore.InfoLevel, "%s", err) }
func (w *wrapper) Warn(err error)  { w.logf(zapcore.WarnLevel, "%s", err) }
func (w *wrapper) Error(err error) { w.logf(zapcore.ErrorLevel, "%s", err) }

func (w *wrapper) Debugf(format string, args ...any) { w.logf(zapcore.DebugLevel, format, args...) }
func (w *wrapper) Infof(format string, args ...any)  { w.logf(zapcore.InfoLevel, format, args...) }
func (w *wrapper) Warnf(format string, args ...any)  { w.logf(zapcore.WarnLevel, format, args...) }
func (w *wrapper) Errorf(format string, args ...any) { w.logf(zapcore.ErrorLevel, format, args...) }
