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
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-rouge-go/errs"
	"trpc.group/trpc-go/trpc-rouge-go/rouge/tokenize"
)

var perfect = Score{Precision: 1, Recall: 1, FMeasure: 1}

func newScorer(t *testing.T, ids []string, opt ...Option) *Scorer {
	t.Helper()
	s, err := NewFromIDs(ids, opt...)
	require.NoError(t, err)
	return s
}

// TestNew_InvalidTypes verifies construction fails fast on bad metric lists.
func TestNew_InvalidTypes(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, errs.ErrInvalidConfig)
	_, err = New([]Type{RougeN(0)})
	assert.ErrorIs(t, err, errs.ErrInvalidConfig)
	_, err = New([]Type{RougeL, RougeL})
	assert.ErrorIs(t, err, errs.ErrInvalidConfig)
	_, err = NewFromIDs([]string{"rouge1", "rougeW"})
	assert.ErrorIs(t, err, errs.ErrInvalidConfig)
}

// TestScorer_IdenticalText verifies identical texts score 1 on every metric.
func TestScorer_IdenticalText(t *testing.T) {
	s := newScorer(t, []string{"rouge1", "rouge2", "rougeL", "rougeLsum"})
	text := "the cat sat on the mat"
	scores, err := s.Score(text, text)
	require.NoError(t, err)
	require.Len(t, scores, 4)
	for id, score := range scores {
		assert.Equal(t, perfect, score, id)
	}
}

// TestScorer_KeysMatchRequest verifies the result holds exactly the requested identifiers.
func TestScorer_KeysMatchRequest(t *testing.T) {
	s := newScorer(t, []string{"rouge3", "rougeL"})
	scores, err := s.Score("a b c", "a b")
	require.NoError(t, err)
	assert.Len(t, scores, 2)
	assert.Contains(t, scores, "rouge3")
	assert.Contains(t, scores, "rougeL")
	assert.Equal(t, []Type{RougeN(3), RougeL}, s.Types())
}

// TestScorer_EmptyPrediction verifies an empty prediction scores zero.
func TestScorer_EmptyPrediction(t *testing.T) {
	s := newScorer(t, []string{"rouge1", "rougeL", "rougeLsum"})
	scores, err := s.Score("the cat sat on the mat", "")
	require.NoError(t, err)
	for id, score := range scores {
		assert.Equal(t, Score{}, score, id)
	}

	scores, err = s.Score("", "")
	require.NoError(t, err)
	for id, score := range scores {
		assert.Equal(t, Score{}, score, id)
	}

	scores, err = s.Score("w1 w2 w3", "/")
	require.NoError(t, err)
	assert.Equal(t, Score{}, scores["rougeLsum"])
}

func TestScorer_Rouge1(t *testing.T) {
	s := newScorer(t, []string{"rouge1"})
	scores, err := s.Score("testing one two", "testing")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores["rouge1"].Precision, 1e-12)
	assert.InDelta(t, 1.0/3.0, scores["rouge1"].Recall, 1e-12)
	assert.InDelta(t, 0.5, scores["rouge1"].FMeasure, 1e-12)
}

func TestScorer_MultiDigitN(t *testing.T) {
	s := newScorer(t, []string{"rouge10"})
	text := "a b c d e f g h i j"
	scores, err := s.Score(text, text)
	require.NoError(t, err)
	assert.Equal(t, perfect, scores["rouge10"])
}

// TestScorer_Normalization verifies scoring is insensitive to case and punctuation.
func TestScorer_Normalization(t *testing.T) {
	s := newScorer(t, []string{"rouge1"})
	scores, err := s.Score("The Cat, sat!", "the cat sat")
	require.NoError(t, err)
	assert.Equal(t, perfect, scores["rouge1"])
}

func TestScorer_WithStemmer(t *testing.T) {
	plain := newScorer(t, []string{"rouge1"})
	stemmed := newScorer(t, []string{"rouge1"}, WithStemmer(true))

	scores, err := plain.Score("the friends were meeting", "the friend was meet")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, scores["rouge1"].FMeasure, 1e-12)

	scores, err = stemmed.Score("the friends were meeting", "the friend was meet")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, scores["rouge1"].FMeasure, 1e-12)
}

// TestScorer_WithTokenizer verifies that a custom tokenizer overrides the built-in tokenizer.
func TestScorer_WithTokenizer(t *testing.T) {
	s := newScorer(t, []string{"rouge1"}, WithTokenizer(tokenize.TokenizerFunc(strings.Fields)))
	scores, err := s.Score("a-b", "a")
	require.NoError(t, err)
	assert.Equal(t, Score{}, scores["rouge1"])
}

// TestScorer_RougeLsumSentenceSplitting verifies line and Punkt sentence splitting for rougeLsum.
func TestScorer_RougeLsumSentenceSplitting(t *testing.T) {
	target := "First sentence.\nSecond Sentence."
	prediction := "Second sentence.\nFirst Sentence."

	lines := newScorer(t, []string{"rougeLsum"}, WithStemmer(true))
	scores, err := lines.Score(target, prediction)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores["rougeLsum"].FMeasure, 1e-12)

	target = strings.ReplaceAll(target, "\n", " ")
	prediction = strings.ReplaceAll(prediction, "\n", " ")
	scores, err = lines.Score(target, prediction)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, scores["rougeLsum"].FMeasure, 1e-12)

	punkt := newScorer(t, []string{"rougeLsum"}, WithStemmer(true), WithSplitSummaries(true))
	scores, err = punkt.Score(target, prediction)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores["rougeLsum"].FMeasure, 1e-12)
}

type failingSplitter struct{}

func (failingSplitter) Split(string) ([]string, error) { return nil, errors.New("boom") }

func TestScorer_SplitterError(t *testing.T) {
	s := newScorer(t, []string{"rouge1", "rougeLsum"}, WithSentenceSplitter(failingSplitter{}))
	_, err := s.Score("a", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split target sentences")
}

// TestScorer_ScoreMulti verifies multi-reference scoring keeps the max F-measure per type.
func TestScorer_ScoreMulti(t *testing.T) {
	s := newScorer(t, []string{"rouge1", "rouge2", "rougeL"})
	scores, err := s.ScoreMulti([]string{"first text", "first something"}, "text first")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores["rouge1"].FMeasure, 1e-12)
	assert.InDelta(t, 0.0, scores["rouge2"].FMeasure, 1e-12)
	assert.InDelta(t, 0.5, scores["rougeL"].FMeasure, 1e-12)

	_, err = s.ScoreMulti(nil, "text")
	require.Error(t, err)
}

// TestScorer_Concurrent verifies a shared Scorer yields identical results across goroutines.
func TestScorer_Concurrent(t *testing.T) {
	s := newScorer(t, []string{"rouge1", "rouge2", "rougeL", "rougeLsum"}, WithStemmer(true))
	want, err := s.Score("the quick brown fox\njumps over the dog", "a quick brown dog\njumped over foxes")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Score("the quick brown fox\njumps over the dog", "a quick brown dog\njumped over foxes")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
