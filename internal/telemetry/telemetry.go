// Package telemetry provides the structured logger bytellmap uses for
// invariant-violation warnings and growth/relocation traces: a
// runtime-configurable logger, so a caller can turn on tracing in
// production without a rebuild.
package telemetry

import "go.uber.org/zap"

// Logger is the minimal leveled-logging surface bytellmap depends on.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

// Nop discards every log line. It is the default Logger for a Map
// constructed without WithLogger.
type Nop struct{}

func (Nop) Debugw(string, ...interface{}) {}
func (Nop) Warnw(string, ...interface{})  {}
func (Nop) Errorw(string, ...interface{}) {}

// Zap wraps a *zap.SugaredLogger.
type Zap struct {
	S *zap.SugaredLogger
}

// NewZap wraps an existing *zap.Logger for use as a bytellmap Logger.
func NewZap(l *zap.Logger) Zap {
	return Zap{S: l.Sugar()}
}

func (z Zap) Debugw(msg string, keysAndValues ...interface{}) {
	z.S.Debugw(msg, keysAndValues...)
}

func (z Zap) Warnw(msg string, keysAndValues ...interface{}) {
	z.S.Warnw(msg, keysAndValues...)
}

func (z Zap) Errorw(msg string, keysAndValues ...interface{}) {
	z.S.Errorw(msg, keysAndValues...)
}
