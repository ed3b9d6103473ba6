//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

package tokenize

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

// SentenceSplitter splits a document into sentences for summary-level scoring.
type SentenceSplitter interface {
	Split(text string) ([]string, error)
}

// NewlineSplitter treats every non-empty line as one sentence.
type NewlineSplitter struct{}

// Split implements SentenceSplitter.
func (NewlineSplitter) Split(text string) ([]string, error) {
	return nonEmpty(strings.Split(text, "\n")), nil
}

// PunktSplitter detects English sentence boundaries with the pretrained
// Punkt model, for summaries that are not already one sentence per line.
type PunktSplitter struct{}

var (
	punktOnce      sync.Once
	punktTokenizer *sentences.DefaultSentenceTokenizer
	punktErr       error
)

func loadPunkt() (*sentences.DefaultSentenceTokenizer, error) {
	punktOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			punktErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			punktErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		punktTokenizer = sentences.NewSentenceTokenizer(training)
	})
	return punktTokenizer, punktErr
}

// Split implements SentenceSplitter.
func (PunktSplitter) Split(text string) ([]string, error) {
	tok, err := loadPunkt()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, s := range tok.Tokenize(text) {
		out = append(out, splitLeadingPeriods(strings.TrimSpace(s.Text))...)
	}
	return nonEmpty(out), nil
}

// splitLeadingPeriods emits every standalone "." that opens s as its own
// sentence, which is how NLTK's Punkt handles ". ." runs.
func splitLeadingPeriods(s string) []string {
	var out []string
	for {
		s = strings.TrimLeft(s, " \t\n\r\v\f")
		if len(s) == 0 || s[0] != '.' {
			break
		}
		if len(s) > 1 && !strings.ContainsRune(" \t\n\r\v\f", rune(s[1])) {
			break
		}
		out = append(out, ".")
		s = s[1:]
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}

func nonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
