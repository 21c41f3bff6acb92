package core

import (
	"go.uber.org/zap"
)

// Logger is the minimal logging sink the renderer depends on, kept
// printf-shaped so any existing *log.Logger (or a caller's own adapter)
// satisfies it without wrapping.
type Logger interface {
	Printf(format string, args ...interface{})
}

// ZapLogger adapts a zap.SugaredLogger to the Logger interface, the default
// sink wired into the render driver and CLI.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a production zap logger (JSON encoding, info level)
// wrapped as a core.Logger, applying any extra zap.Options the caller
// supplies (e.g. zap.AddCaller()).
func NewZapLogger(opts ...zap.Option) (*ZapLogger, error) {
	base, err := zap.NewProduction(opts...)
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: base.Sugar()}, nil
}

// Printf implements Logger by routing through zap's Infof.
func (l *ZapLogger) Printf(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Sugar exposes the underlying *zap.SugaredLogger for structured calls
// (With, Infow, Errorw) beyond the printf-shaped Logger contract.
func (l *ZapLogger) Sugar() *zap.SugaredLogger { return l.sugar }

// Sync flushes any buffered log entries; callers should defer this in main.
func (l *ZapLogger) Sync() error { return l.sugar.Sync() }

// NopLogger discards everything, useful in tests.
type NopLogger struct{}

// Printf implements Logger by doing nothing.
func (NopLogger) Printf(format string, args ...interface{}) {}
