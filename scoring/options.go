//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

package scoring

import (
	"math/rand/v2"
	"time"
)

const (
	// DefaultSamples is the number of bootstrap resamples per metric.
	DefaultSamples = 1000
	// DefaultConfidence reports the 5th and 95th percentiles as low and high.
	DefaultConfidence = 0.90
)

// ProgressFunc receives the number of finished resamples for one metric.
type ProgressFunc func(metric string, done, total int)

// options holds configuration for a BootstrapAggregator.
type options struct {
	seed     [2]uint64
	source   func() rand.Source
	progress ProgressFunc
	// progressEvery is the resample interval between progress calls.
	progressEvery int
}

// Option configures a BootstrapAggregator.
type Option func(*options)

// WithSeed fixes the random source. Aggregators with the same seed and the
// same added scores produce identical intervals.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = [2]uint64{seed, seed ^ 0x9e3779b97f4a7c15}
	}
}

// WithSource makes every Aggregate call draw from a source returned by
// newSource. It takes precedence over WithSeed. Returning a fresh, equally
// seeded source on each call keeps Aggregate idempotent.
func WithSource(newSource func() rand.Source) Option {
	return func(o *options) {
		o.source = newSource
	}
}

// WithProgress reports resampling progress every interval resamples and once
// more when a metric completes. Non-positive intervals report only completion.
func WithProgress(fn ProgressFunc, interval int) Option {
	return func(o *options) {
		o.progress = fn
		o.progressEvery = interval
	}
}

func newOptions(opt ...Option) *options {
	now := uint64(time.Now().UnixNano())
	opts := &options{seed: [2]uint64{now, now ^ 0x9e3779b97f4a7c15}}
	for _, o := range opt {
		o(opts)
	}
	return opts
}
