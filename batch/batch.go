//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

// Package batch scores aligned target and prediction lists in parallel.
package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"

	"trpc.group/trpc-go/trpc-rouge-go/errs"
	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
	"trpc.group/trpc-go/trpc-rouge-go/scoring"
	"trpc.group/trpc-go/trpc-rouge-go/telemetry/metric"
	"trpc.group/trpc-go/trpc-rouge-go/telemetry/trace"
)

// Scorer scores one target/prediction pair.
type Scorer interface {
	Score(target, prediction string) (rouge.Scores, error)
}

// typedScorer is a Scorer that reports its metric types, as *rouge.Scorer does.
type typedScorer interface {
	Types() []rouge.Type
}

// Aggregator accumulates Score-sets and summarizes them.
type Aggregator interface {
	Add(scores rouge.Scores)
	Aggregate(samples int, confidence float64) (map[string]scoring.AggregateScore, error)
}

// Result is the outcome of a Run.
type Result struct {
	// RunID identifies the run in logs and traces.
	RunID string
	// Records is the number of pairs scored.
	Records int
	// Scores holds one Score-set per pair in input order. It is nil when
	// the driver has an aggregator.
	Scores []rouge.Scores
	// Duration is the wall time of scoring, excluding aggregation.
	Duration time.Duration
}

type slot struct {
	scores rouge.Scores
	err    error
}

// Driver scores batches on a bounded worker pool.
type Driver struct {
	scorer      Scorer
	pool        *ants.PoolWithFunc
	parallelism int
	aggregator  Aggregator
	metrics     *metric.Metrics
}

// New creates a Driver. Close releases its workers.
func New(scorer Scorer, opt ...Option) (*Driver, error) {
	if scorer == nil {
		return nil, errs.InvalidConfigf("scorer is nil")
	}
	opts := newOptions(opt...)
	if opts.parallelism <= 0 {
		return nil, errs.InvalidConfigf("parallelism must be positive, got %d", opts.parallelism)
	}
	pool, err := createScorePool(opts.parallelism)
	if err != nil {
		return nil, err
	}
	return &Driver{
		scorer:      scorer,
		pool:        pool,
		parallelism: opts.parallelism,
		aggregator:  opts.aggregator,
		metrics:     opts.metrics,
	}, nil
}

// Close releases the worker pool.
func (d *Driver) Close() {
	if d.pool != nil {
		d.pool.Release()
	}
}

// Run scores targets[i] against predictions[i] for every i. Score-sets are
// kept in input order; with an aggregator they are added to it in that
// order once every pair has been scored. The first failing pair, by index,
// fails the run and nothing is added to the aggregator.
func (d *Driver) Run(ctx context.Context, targets, predictions []string) (res *Result, err error) {
	if len(targets) != len(predictions) {
		return nil, errs.InvalidConfigf("got %d targets but %d predictions", len(targets), len(predictions))
	}
	runID := uuid.NewString()
	attrs := []attribute.KeyValue{
		trace.KeyRunID.String(runID),
		trace.KeyRecords.Int(len(targets)),
		trace.KeyParallelism.Int(d.parallelism),
	}
	if typed, ok := d.scorer.(typedScorer); ok {
		attrs = append(attrs, trace.KeyRougeTypes.StringSlice(typeIDs(typed.Types())))
	}
	ctx, span := trace.Start(ctx, trace.SpanBatchRun, attrs...)
	start := time.Now()
	defer func() {
		trace.End(span, err)
		d.observeRun(err)
	}()

	logger := log.With("run_id", runID)
	logger.Infof("scoring %d pairs with %d workers", len(targets), d.parallelism)
	j := newJob(ctx, d, targets, predictions)
	for i := range targets {
		if ctx.Err() != nil {
			break
		}
		j.submit(d.pool, i)
	}
	j.wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores := make([]rouge.Scores, len(j.slots))
	for i, s := range j.slots {
		if s.err != nil {
			return nil, fmt.Errorf("score pair %d: %w", i, s.err)
		}
		scores[i] = s.scores
	}

	res = &Result{RunID: runID, Records: len(scores), Duration: time.Since(start)}
	if d.aggregator != nil {
		for _, s := range scores {
			d.aggregator.Add(s)
		}
	} else {
		res.Scores = scores
	}
	logger.Infof("scored %d pairs in %s", res.Records, res.Duration)
	return res, nil
}

// Aggregate summarizes everything added to the driver's aggregator.
func (d *Driver) Aggregate(ctx context.Context, samples int, confidence float64) (agg map[string]scoring.AggregateScore, err error) {
	if d.aggregator == nil {
		return nil, errors.New("driver has no aggregator")
	}
	_, span := trace.Start(ctx, trace.SpanAggregate, trace.KeySamples.Int(samples))
	defer func() { trace.End(span, err) }()

	start := time.Now()
	agg, err = d.aggregator.Aggregate(samples, confidence)
	if err != nil {
		return nil, err
	}
	if d.metrics != nil {
		d.metrics.AggregateDuration.Observe(time.Since(start).Seconds())
		for id := range agg {
			d.metrics.BootstrapSamples.WithLabelValues(id).Add(float64(samples))
		}
	}
	return agg, nil
}

func (d *Driver) scoreOne(ctx context.Context, target, prediction string) slot {
	if err := ctx.Err(); err != nil {
		return slot{err: err}
	}
	start := time.Now()
	scores, err := d.scorer.Score(target, prediction)
	if d.metrics != nil {
		d.metrics.RecordDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			d.metrics.RecordFailuresTotal.Inc()
		} else {
			d.metrics.RecordsTotal.Inc()
		}
	}
	return slot{scores: scores, err: err}
}

func typeIDs(types []rouge.Type) []string {
	ids := make([]string, len(types))
	for i, t := range types {
		ids[i] = t.String()
	}
	return ids
}

func (d *Driver) observeRun(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		log.Errorf("batch run failed: %v", err)
	}
	if d.metrics != nil {
		d.metrics.RunsTotal.WithLabelValues(outcome).Inc()
	}
}
