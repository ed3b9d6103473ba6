//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

package rouge

import (
	"errors"
	"fmt"

	"trpc.group/trpc-go/trpc-rouge-go/rouge/tokenize"
)

// Scorer computes a fixed set of ROUGE metrics for target/prediction pairs.
// A Scorer holds no mutable state and may be shared between goroutines.
type Scorer struct {
	types     []Type
	tokenizer tokenize.Tokenizer
	splitter  tokenize.SentenceSplitter
	// wholeDoc is set when any type needs the unsplit token sequence.
	wholeDoc bool
	// bySentence is set when rougeLsum is requested.
	bySentence bool
}

// New validates types and returns a Scorer for them. Unknown, invalid or
// duplicate types are rejected here so that scoring itself cannot fail on
// configuration.
func New(types []Type, opt ...Option) (*Scorer, error) {
	if err := checkTypes(types); err != nil {
		return nil, err
	}
	opts := newOptions(opt...)
	s := &Scorer{
		types:     append([]Type(nil), types...),
		tokenizer: opts.tokenizer,
		splitter:  opts.splitter,
	}
	if s.tokenizer == nil {
		s.tokenizer = tokenize.New(
			tokenize.WithStemming(opts.useStemmer),
			tokenize.WithAccentFolding(opts.foldAccents),
		)
	}
	if s.splitter == nil {
		if opts.splitSummaries {
			s.splitter = tokenize.PunktSplitter{}
		} else {
			s.splitter = tokenize.NewlineSplitter{}
		}
	}
	for _, t := range types {
		if t.Kind() == KindLsum {
			s.bySentence = true
		} else {
			s.wholeDoc = true
		}
	}
	return s, nil
}

// NewFromIDs parses metric identifiers and builds a Scorer.
func NewFromIDs(ids []string, opt ...Option) (*Scorer, error) {
	types, err := ParseTypes(ids)
	if err != nil {
		return nil, err
	}
	return New(types, opt...)
}

// Types returns a copy of the configured metric types in request order.
func (s *Scorer) Types() []Type {
	return append([]Type(nil), s.types...)
}

// Score computes every configured metric for one target/prediction pair.
// Each text is tokenized once. The only possible error comes from a sentence
// splitter used by rougeLsum.
func (s *Scorer) Score(target, prediction string) (Scores, error) {
	var targetTokens, predTokens []string
	if s.wholeDoc {
		targetTokens = s.tokenizer.Tokenize(target)
		predTokens = s.tokenizer.Tokenize(prediction)
	}
	result := make(Scores, len(s.types))
	for _, t := range s.types {
		switch t.Kind() {
		case KindN:
			result[t.String()] = ScoreNGrams(targetTokens, predTokens, t.N())
		case KindL:
			result[t.String()] = ScoreLCS(targetTokens, predTokens)
		case KindLsum:
			score, err := s.scoreSummary(target, prediction)
			if err != nil {
				return nil, err
			}
			result[t.String()] = score
		}
	}
	return result, nil
}

// ScoreMulti scores prediction against several references and keeps, per
// metric, the Score with the highest F-measure. The first reference wins ties.
func (s *Scorer) ScoreMulti(targets []string, prediction string) (Scores, error) {
	if len(targets) == 0 {
		return nil, errors.New("targets are empty")
	}
	var best Scores
	for _, target := range targets {
		scores, err := s.Score(target, prediction)
		if err != nil {
			return nil, err
		}
		if best == nil {
			best = scores
			continue
		}
		for id, score := range scores {
			if score.FMeasure > best[id].FMeasure {
				best[id] = score
			}
		}
	}
	return best, nil
}

func (s *Scorer) scoreSummary(target, prediction string) (Score, error) {
	targetSents, err := s.sentenceTokens(target)
	if err != nil {
		return Score{}, fmt.Errorf("split target sentences: %w", err)
	}
	predSents, err := s.sentenceTokens(prediction)
	if err != nil {
		return Score{}, fmt.Errorf("split prediction sentences: %w", err)
	}
	return ScoreSummaryLCS(targetSents, predSents), nil
}

func (s *Scorer) sentenceTokens(text string) ([][]string, error) {
	sents, err := s.splitter.Split(text)
	if err != nil {
		return nil, err
	}
	out := make([][]string, 0, len(sents))
	for _, sent := range sents {
		out = append(out, s.tokenizer.Tokenize(sent))
	}
	return out, nil
}
