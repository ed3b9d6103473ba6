//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

// Package corpus resolves target and prediction file patterns and pairs
// their records for scoring.
package corpus

import (
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"trpc.group/trpc-go/trpc-rouge-go/errs"
	"trpc.group/trpc-go/trpc-rouge-go/log"
)

// DefaultDelimiter separates records inside a file.
const DefaultDelimiter = "\n"

const maxOpenFiles = 16

// Pairs holds equally long, index-aligned record lists.
type Pairs struct {
	Targets     []string
	Predictions []string
}

// Len returns the number of record pairs.
func (p *Pairs) Len() int { return len(p.Targets) }

// Loader reads record pairs from files.
type Loader struct {
	delimiter     string
	stripMarkdown bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithDelimiter sets the record delimiter. It defaults to a newline.
func WithDelimiter(delimiter string) Option {
	return func(l *Loader) {
		l.delimiter = delimiter
	}
}

// WithMarkdownStripping renders every record from Markdown to plain text
// before it is scored.
func WithMarkdownStripping(strip bool) Option {
	return func(l *Loader) {
		l.stripMarkdown = strip
	}
}

// NewLoader creates a Loader.
func NewLoader(opt ...Option) *Loader {
	l := &Loader{delimiter: DefaultDelimiter}
	for _, o := range opt {
		o(l)
	}
	return l
}

// Resolve expands pattern (which may use "**") into a sorted list of files.
// A pattern without matches is an I/O error naming the pattern.
func Resolve(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, errs.InvalidConfigf("file pattern is empty")
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, errs.InvalidConfigf("bad file pattern %q", pattern)
		}
		return nil, errs.NewIOError(pattern, err)
	}
	if len(matches) == 0 {
		return nil, errs.NewIOError(pattern, errors.New("pattern matches no files"))
	}
	sort.Strings(matches)
	return matches, nil
}

// Load resolves both patterns and reads index-aligned record pairs. The two
// patterns must match the same number of files and each pair of files, in
// sorted order, must hold the same number of records. Files are read
// concurrently; nothing is returned unless every file was read and matched.
func (l *Loader) Load(targetPattern, predictionPattern string) (*Pairs, error) {
	if l.delimiter == "" {
		return nil, errs.InvalidConfigf("record delimiter is empty")
	}
	targetFiles, err := Resolve(targetPattern)
	if err != nil {
		return nil, err
	}
	predFiles, err := Resolve(predictionPattern)
	if err != nil {
		return nil, err
	}
	if len(targetFiles) != len(predFiles) {
		return nil, errs.InvalidConfigf(
			"must have equal number of target and prediction files, found %d target files and %d prediction files",
			len(targetFiles), len(predFiles))
	}

	records := make([][]string, len(targetFiles)+len(predFiles))
	files := append(append([]string{}, targetFiles...), predFiles...)
	g := new(errgroup.Group)
	g.SetLimit(maxOpenFiles)
	for i, path := range files {
		g.Go(func() error {
			r, err := l.ReadRecords(path)
			records[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pairs := &Pairs{}
	for i := range targetFiles {
		targets, preds := records[i], records[len(targetFiles)+i]
		if len(targets) != len(preds) {
			return nil, errs.InvalidConfigf(
				"must have equal number of records across target and prediction files, %s has %d and %s has %d",
				targetFiles[i], len(targets), predFiles[i], len(preds))
		}
		log.Debugf("paired %d records from %s and %s", len(targets), targetFiles[i], predFiles[i])
		pairs.Targets = append(pairs.Targets, targets...)
		pairs.Predictions = append(pairs.Predictions, preds...)
	}
	return pairs, nil
}

// ReadRecords reads path and splits it into records. A file is expected to
// end with the delimiter; the empty record after it is dropped.
func (l *Loader) ReadRecords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewIOError(path, err)
	}
	records := strings.Split(string(data), l.delimiter)
	if last := len(records) - 1; records[last] == "" {
		records = records[:last]
	} else {
		log.Warnf("expected delimiter at end of file %s", path)
	}
	if l.stripMarkdown {
		for i, r := range records {
			records[i] = StripMarkdown(r)
		}
	}
	return records, nil
}
