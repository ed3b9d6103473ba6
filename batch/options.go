//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

package batch

import (
	"runtime"

	"trpc.group/trpc-go/trpc-rouge-go/telemetry/metric"
)

type options struct {
	parallelism int
	aggregator  Aggregator
	metrics     *metric.Metrics
}

// Option configures a Driver.
type Option func(*options)

// WithParallelism sets the number of workers. It defaults to the number of CPUs.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithAggregator folds every Score-set of a run into agg instead of
// returning them.
func WithAggregator(agg Aggregator) Option {
	return func(o *options) {
		o.aggregator = agg
	}
}

// WithMetrics records run statistics into m.
func WithMetrics(m *metric.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func newOptions(opt ...Option) *options {
	opts := &options{parallelism: runtime.NumCPU()}
	for _, o := range opt {
		o(opts)
	}
	return opts
}
