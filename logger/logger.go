// Package logger provides the pluggable logging facade used by
// frametool and other callers of this codec. The codec itself never
// logs; this package exists for the tooling built on top of it.
package logger

import "go.uber.org/zap"

// Level is the severity threshold below which log calls are dropped.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is the facade every caller in this module logs through.
type Logger interface {
	IsDebugEnabled() bool
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

var current Logger = newZapLogger(LevelInfo)

// SetLevel adjusts the severity threshold of the default logger.
func SetLevel(level Level) {
	if z, ok := current.(*zapLogger); ok {
		z.lvl = level
	}
}

// SetLogger replaces the default logger wholesale, for callers that
// want to route through their own zap.Logger or a different backend
// entirely.
func SetLogger(l Logger) {
	current = l
}

// Debugf logs at debug level through the current default logger.
func Debugf(format string, v ...interface{}) { current.Debugf(format, v...) }

// Infof logs at info level through the current default logger.
func Infof(format string, v ...interface{}) { current.Infof(format, v...) }

// Warnf logs at warn level through the current default logger.
func Warnf(format string, v ...interface{}) { current.Warnf(format, v...) }

// Errorf logs at error level through the current default logger.
func Errorf(format string, v ...interface{}) { current.Errorf(format, v...) }

// IsDebugEnabled reports whether the current default logger would
// emit a debug-level record.
func IsDebugEnabled() bool { return current.IsDebugEnabled() }

type zapLogger struct {
	lvl Level
	sl  *zap.SugaredLogger
}

func newZapLogger(lvl Level) *zapLogger {
	// The zap core accepts every level; lvl alone decides what is dropped.
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	z, err := cfg.Build()
	if err != nil {
		z = zap.NewNop()
	}
	return &zapLogger{lvl: lvl, sl: z.Sugar()}
}

func (p *zapLogger) IsDebugEnabled() bool {
	return p.lvl <= LevelDebug
}

func (p *zapLogger) Debugf(format string, v ...interface{}) {
	if p.lvl > LevelDebug {
		return
	}
	p.sl.Debugf(format, v...)
}

func (p *zapLogger) Infof(format string, v ...interface{}) {
	if p.lvl > LevelInfo {
		return
	}
	p.sl.Infof(format, v...)
}

func (p *zapLogger) Warnf(format string, v ...interface{}) {
	if p.lvl > LevelWarn {
		return
	}
	p.sl.Warnf(format, v...)
}

func (p *zapLogger) Errorf(format string, v ...interface{}) {
	p.sl.Errorf(format, v...)
}
