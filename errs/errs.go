//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

// Package errs defines the error kinds surfaced by scoring runs.
//
// Every error returned by this module wraps exactly one of the sentinels
// below, so callers can branch with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig reports a problem with the requested run: an unknown
	// metric, a missing option, mismatched inputs or nothing to aggregate.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrIO reports an input that cannot be read or a pattern without matches.
	ErrIO = errors.New("io error")
)

// InvalidConfigf formats a message and wraps it with ErrInvalidConfig.
func InvalidConfigf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// IOError carries the offending path of an ErrIO failure.
type IOError struct {
	Path string
	Err  error
}

// NewIOError wraps err for path.
func NewIOError(path string, err error) *IOError {
	return &IOError{Path: path, Err: err}
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrIO, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", ErrIO, e.Path, e.Err)
}

// Unwrap exposes both ErrIO and the underlying cause.
func (e *IOError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrIO}
	}
	return []error{ErrIO, e.Err}
}
