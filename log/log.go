//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

// Package log provides the zap-backed logger of trpc-rouge-go.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log level names accepted by SetLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelFatal = "fatal"
)

var levels = map[string]zapcore.Level{
	LevelDebug: zapcore.DebugLevel,
	LevelInfo:  zapcore.InfoLevel,
	LevelWarn:  zapcore.WarnLevel,
	LevelError: zapcore.ErrorLevel,
	LevelFatal: zapcore.FatalLevel,
}

var zapLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// Default is used by the package level functions. Entries go to stderr so
// that stdout stays free for command output.
var Default Logger = New(zapcore.Lock(os.Stderr))

// Logger is the logging interface used throughout trpc-rouge-go.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	// With returns a Logger that adds the key/value pairs to every entry.
	With(keysAndValues ...any) Logger
}

type sugared struct {
	*zap.SugaredLogger
}

func (s sugared) With(keysAndValues ...any) Logger {
	return sugared{s.SugaredLogger.With(keysAndValues...)}
}

// New builds a Logger writing console-encoded entries to ws. Every logger
// shares the level controlled by SetLevel.
func New(ws zapcore.WriteSyncer) Logger {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), ws, zapLevel)
	return sugared{zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()}
}

// SetLevel sets the level of every logger. Unknown names select info.
func SetLevel(level string) {
	l, ok := levels[level]
	if !ok {
		l = zapcore.InfoLevel
	}
	zapLevel.SetLevel(l)
}

// ValidLevel reports whether SetLevel knows level.
func ValidLevel(level string) bool {
	_, ok := levels[level]
	return ok
}

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "lvl",
	CallerKey:      "caller",
	MessageKey:     "message",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// Debugf logs at debug level in the manner of fmt.Printf.
func Debugf(format string, args ...any) { Default.Debugf(format, args...) }

// Infof logs at info level in the manner of fmt.Printf.
func Infof(format string, args ...any) { Default.Infof(format, args...) }

// Warnf logs at warn level in the manner of fmt.Printf.
func Warnf(format string, args ...any) { Default.Warnf(format, args...) }

// Errorf logs at error level in the manner of fmt.Printf.
func Errorf(format string, args ...any) { Default.Errorf(format, args...) }

// With returns Default with the key/value pairs attached.
func With(keysAndValues ...any) Logger { return Default.With(keysAndValues...) }
