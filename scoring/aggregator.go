//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

// Package scoring aggregates per-example ROUGE scores into corpus-level
// confidence intervals by bootstrap resampling.
package scoring

import (
	"math/rand/v2"
	"slices"
	"sort"
	"sync"

	"trpc.group/trpc-go/trpc-rouge-go/errs"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
)

// AggregateScore is the confidence interval of one metric. Each bound is a
// Score whose components are percentiles of the resampled component means.
type AggregateScore struct {
	Low  rouge.Score `json:"low"`
	Mid  rouge.Score `json:"mid"`
	High rouge.Score `json:"high"`
}

// BootstrapAggregator accumulates per-example Scores and estimates
// confidence intervals for every metric it has seen.
//
// Add may be called from several goroutines. Aggregate only reads the
// accumulated scores and re-seeds its random source on every call, so it is
// idempotent for a fixed seed.
type BootstrapAggregator struct {
	mu     sync.Mutex
	scores map[string][]rouge.Score
	added  int
	opts   *options
}

// NewBootstrapAggregator creates an empty aggregator. Without WithSeed the
// seed is taken from the clock once, at construction.
func NewBootstrapAggregator(opt ...Option) *BootstrapAggregator {
	return &BootstrapAggregator{
		scores: make(map[string][]rouge.Score),
		opts:   newOptions(opt...),
	}
}

// Add appends the Scores of one example.
func (a *BootstrapAggregator) Add(scores rouge.Scores) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for id, s := range scores {
		a.scores[id] = append(a.scores[id], s)
	}
	a.added++
}

// Len returns the number of added examples.
func (a *BootstrapAggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.added
}

// Reset drops every added example.
func (a *BootstrapAggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scores = make(map[string][]rouge.Score)
	a.added = 0
}

// Aggregate estimates, for every metric, the interval covering the given
// confidence mass of the bootstrap distribution of the mean Score. Metrics
// are resampled in identifier order from a generator seeded afresh per call.
func (a *BootstrapAggregator) Aggregate(samples int, confidence float64) (map[string]AggregateScore, error) {
	if samples <= 0 {
		return nil, errs.InvalidConfigf("bootstrap samples must be positive, got %d", samples)
	}
	if !(confidence > 0 && confidence < 1) {
		return nil, errs.InvalidConfigf("confidence must be in (0, 1), got %v", confidence)
	}

	ids, snapshot, err := a.snapshot()
	if err != nil {
		return nil, err
	}

	rng := a.newRand()
	lowPct := (1 - confidence) / 2
	highPct := 1 - lowPct
	result := make(map[string]AggregateScore, len(ids))
	for _, id := range ids {
		p, r, f := a.resample(id, snapshot[id], samples, rng)
		result[id] = AggregateScore{
			Low:  rouge.Score{Precision: percentile(p, lowPct), Recall: percentile(r, lowPct), FMeasure: percentile(f, lowPct)},
			Mid:  rouge.Score{Precision: percentile(p, 0.5), Recall: percentile(r, 0.5), FMeasure: percentile(f, 0.5)},
			High: rouge.Score{Precision: percentile(p, highPct), Recall: percentile(r, highPct), FMeasure: percentile(f, highPct)},
		}
	}
	return result, nil
}

// snapshot copies the added scores so resampling runs without holding the
// lock. Progress callbacks and concurrent Add calls never wait on it.
func (a *BootstrapAggregator) snapshot() ([]string, map[string][]rouge.Score, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.added == 0 {
		return nil, nil, errs.InvalidConfigf("no scores to aggregate")
	}
	ids := make([]string, 0, len(a.scores))
	scores := make(map[string][]rouge.Score, len(a.scores))
	for id, s := range a.scores {
		ids = append(ids, id)
		scores[id] = slices.Clone(s)
	}
	sort.Strings(ids)
	return ids, scores, nil
}

func (a *BootstrapAggregator) newRand() *rand.Rand {
	if a.opts.source != nil {
		return rand.New(a.opts.source())
	}
	return rand.New(rand.NewPCG(a.opts.seed[0], a.opts.seed[1]))
}

// resample draws samples bootstrap resamples of scores and returns the
// sorted means of each component.
func (a *BootstrapAggregator) resample(id string, scores []rouge.Score, samples int, rng *rand.Rand) (p, r, f []float64) {
	n := len(scores)
	p = make([]float64, samples)
	r = make([]float64, samples)
	f = make([]float64, samples)
	for s := range samples {
		var sp, sr, sf float64
		for range n {
			pick := scores[rng.IntN(n)]
			sp += pick.Precision
			sr += pick.Recall
			sf += pick.FMeasure
		}
		p[s] = sp / float64(n)
		r[s] = sr / float64(n)
		f[s] = sf / float64(n)
		a.report(id, s+1, samples)
	}
	slices.Sort(p)
	slices.Sort(r)
	slices.Sort(f)
	return p, r, f
}

func (a *BootstrapAggregator) report(id string, done, total int) {
	fn := a.opts.progress
	if fn == nil {
		return
	}
	if done == total || (a.opts.progressEvery > 0 && done%a.opts.progressEvery == 0) {
		fn(id, done, total)
	}
}

// percentile returns the q-quantile (q in [0, 1]) of sorted values, linearly
// interpolating between the two closest ranks.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := q * float64(len(sorted)-1)
	lo := int(rank)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	if frac == 0 {
		return sorted[lo]
	}
	return min(sorted[lo]+(sorted[lo+1]-sorted[lo])*frac, sorted[lo+1])
}
