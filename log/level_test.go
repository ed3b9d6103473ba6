//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

package log

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

// TestSetLevel verifies that SetLevel correctly updates the
// underlying zap atomic level according to the provided level
// string.
func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel(LevelInfo) })
	cases := []struct {
		in       string
		expected zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{LevelInfo, zapcore.InfoLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{LevelFatal, zapcore.FatalLevel},
		{"unknown", zapcore.InfoLevel}, // default branch
	}

	for _, c := range cases {
		SetLevel(c.in)
		if got := zapLevel.Level(); got != c.expected {
			t.Fatalf("SetLevel(%q) = %v; want %v", c.in, got, c.expected)
		}
	}
}

func TestValidLevel(t *testing.T) {
	for _, l := range []string{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal} {
		if !ValidLevel(l) {
			t.Fatalf("ValidLevel(%q) = false", l)
		}
	}
	if ValidLevel("verbose") {
		t.Fatalf("ValidLevel(%q) = true", "verbose")
	}
}
