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
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// job is the state of one Run shared by its workers. Each worker writes only
// the slot of the pair it scores.
type job struct {
	ctx         context.Context
	driver      *Driver
	targets     []string
	predictions []string
	slots       []slot
	wg          sync.WaitGroup
}

func newJob(ctx context.Context, d *Driver, targets, predictions []string) *job {
	return &job{
		ctx:         ctx,
		driver:      d,
		targets:     targets,
		predictions: predictions,
		slots:       make([]slot, len(targets)),
	}
}

// score fills slot i.
func (j *job) score(i int) {
	j.slots[i] = j.driver.scoreOne(j.ctx, j.targets[i], j.predictions[i])
}

// task addresses one pair of a job.
type task struct {
	job *job
	idx int
}

var taskPool = &sync.Pool{
	New: func() any { return new(task) },
}

// submit schedules pair i of j, blocking while every worker is busy.
func (j *job) submit(pool *ants.PoolWithFunc, i int) {
	j.wg.Add(1)
	t := taskPool.Get().(*task)
	t.job, t.idx = j, i
	if err := pool.Invoke(t); err != nil {
		j.wg.Done()
		j.slots[i] = slot{err: fmt.Errorf("submit pair %d: %w", i, err)}
		releaseTask(t)
	}
}

func releaseTask(t *task) {
	t.job, t.idx = nil, 0
	taskPool.Put(t)
}

func createScorePool(size int) (*ants.PoolWithFunc, error) {
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		t, ok := args.(*task)
		if !ok {
			panic("score pool args type error")
		}
		j := t.job
		defer func() {
			j.wg.Done()
			releaseTask(t)
		}()
		j.score(t.idx)
	})
	if err != nil {
		return nil, fmt.Errorf("create score pool: %w", err)
	}
	return pool, nil
}
