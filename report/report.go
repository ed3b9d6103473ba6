//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

// Package report writes per-record and aggregate ROUGE scores as CSV.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"trpc.group/trpc-go/trpc-rouge-go/errs"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
	"trpc.group/trpc-go/trpc-rouge-go/scoring"
)

var (
	aggregateHeader = []string{"score_type", "low", "mid", "high"}
	scoresHeader    = []string{"id", "score_type", "precision", "recall", "fmeasure"}
)

// WriteAggregates writes one row per metric component, metrics in sorted
// order and components in recall, precision, F-measure order.
func WriteAggregates(w io.Writer, aggregates map[string]scoring.AggregateScore) error {
	ids := make([]string, 0, len(aggregates))
	for id := range aggregates {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cw := csv.NewWriter(w)
	if err := cw.Write(aggregateHeader); err != nil {
		return err
	}
	for _, id := range ids {
		a := aggregates[id]
		rows := [][]string{
			{id + "-R", format(a.Low.Recall), format(a.Mid.Recall), format(a.High.Recall)},
			{id + "-P", format(a.Low.Precision), format(a.Mid.Precision), format(a.High.Precision)},
			{id + "-F", format(a.Low.FMeasure), format(a.Mid.FMeasure), format(a.High.FMeasure)},
		}
		if err := cw.WriteAll(rows); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteScores writes one row per record and metric. Records are identified
// by their index and metrics follow the order of types.
func WriteScores(w io.Writer, types []rouge.Type, scores []rouge.Scores) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(scoresHeader); err != nil {
		return err
	}
	for i, set := range scores {
		id := strconv.Itoa(i)
		for _, t := range types {
			s, ok := set[t.String()]
			if !ok {
				return fmt.Errorf("record %d has no %s score", i, t)
			}
			row := []string{id, t.String(), format(s.Precision), format(s.Recall), format(s.FMeasure)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes path through write. The content goes to a temporary file
// next to path first and replaces path only when write succeeds.
func WriteFile(path string, write func(io.Writer) error) error {
	if path == "" {
		return errs.InvalidConfigf("output file name is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.NewIOError(dir, err)
		}
	}
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.NewIOError(tmp, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return errs.NewIOError(tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errs.NewIOError(path, err)
	}
	return nil
}

// WriteAggregatesFile writes aggregates to path, see WriteFile.
func WriteAggregatesFile(path string, aggregates map[string]scoring.AggregateScore) error {
	if len(aggregates) == 0 {
		return errors.New("no aggregates to write")
	}
	return WriteFile(path, func(w io.Writer) error {
		return WriteAggregates(w, aggregates)
	})
}

// WriteScoresFile writes per-record scores to path, see WriteFile.
func WriteScoresFile(path string, types []rouge.Type, scores []rouge.Scores) error {
	return WriteFile(path, func(w io.Writer) error {
		return WriteScores(w, types, scores)
	})
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
