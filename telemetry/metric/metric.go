//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

// Package metric defines the Prometheus collectors of a scoring run.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rouge"

// Metrics holds the collectors of a scoring run on its own registry.
type Metrics struct {
	Registry *prometheus.Registry

	RecordsTotal        prometheus.Counter
	RecordFailuresTotal prometheus.Counter
	RecordDuration      prometheus.Histogram
	RunsTotal           *prometheus.CounterVec
	AggregateDuration   prometheus.Histogram
	BootstrapSamples    *prometheus.CounterVec
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RecordsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_scored_total",
				Help:      "Total number of target/prediction pairs scored.",
			},
		),
		RecordFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "record_failures_total",
				Help:      "Total number of pairs that failed to score.",
			},
		),
		RecordDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "record_duration_seconds",
				Help:      "Time spent scoring one pair.",
				Buckets:   []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total batch runs by outcome (ok, error).",
			},
			[]string{"outcome"},
		),
		AggregateDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "aggregate_duration_seconds",
				Help:      "Time spent on bootstrap aggregation.",
				Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		BootstrapSamples: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bootstrap_samples_total",
				Help:      "Total bootstrap resamples drawn by metric.",
			},
			[]string{"rouge_type"},
		),
	}

	m.Registry.MustRegister(
		m.RecordsTotal,
		m.RecordFailuresTotal,
		m.RecordDuration,
		m.RunsTotal,
		m.AggregateDuration,
		m.BootstrapSamples,
	)
	return m
}

// WriteTextfile writes the current values to path in the Prometheus text
// format, as read by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
