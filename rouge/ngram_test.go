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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreNGrams_PartialPrediction(t *testing.T) {
	s := ScoreNGrams([]string{"a", "b", "c", "d"}, []string{"a", "b"}, 1)
	assert.InDelta(t, 1.0, s.Precision, 1e-12)
	assert.InDelta(t, 0.5, s.Recall, 1e-12)
	assert.InDelta(t, 2.0/3.0, s.FMeasure, 1e-12)
}

// TestScoreNGrams_ClippedCounts verifies repeated n-grams count at most min(target, prediction) times.
func TestScoreNGrams_ClippedCounts(t *testing.T) {
	s := ScoreNGrams([]string{"the", "cat"}, []string{"the", "the", "the"}, 1)
	assert.InDelta(t, 1.0/3.0, s.Precision, 1e-12)
	assert.InDelta(t, 0.5, s.Recall, 1e-12)
}

func TestScoreNGrams_Bigrams(t *testing.T) {
	s := ScoreNGrams([]string{"testing", "one", "two"}, []string{"testing", "one"}, 2)
	assert.InDelta(t, 1.0, s.Precision, 1e-12)
	assert.InDelta(t, 0.5, s.Recall, 1e-12)
	assert.InDelta(t, 2.0/3.0, s.FMeasure, 1e-12)
}

// TestScoreNGrams_ShortSequences verifies that sequences shorter than n score zero.
func TestScoreNGrams_ShortSequences(t *testing.T) {
	assert.Equal(t, Score{}, ScoreNGrams([]string{"a", "b", "c"}, []string{"a"}, 2))
	assert.Equal(t, Score{}, ScoreNGrams([]string{"a"}, []string{"a", "b"}, 2))
	assert.Equal(t, Score{}, ScoreNGrams(nil, nil, 1))
	assert.Equal(t, Score{}, ScoreNGrams([]string{"a"}, []string{"a"}, 0))
}

// TestScoreNGrams_OrderMatters verifies n-grams are order sensitive for n > 1.
func TestScoreNGrams_OrderMatters(t *testing.T) {
	s := ScoreNGrams([]string{"a", "b"}, []string{"b", "a"}, 2)
	assert.Equal(t, Score{}, s)
}

// TestScoreNGrams_Identity verifies identical sequences score 1 for every n up to their length.
func TestScoreNGrams_Identity(t *testing.T) {
	tokens := []string{"a", "b", "a", "c", "d", "a", "b"}
	for n := 1; n <= len(tokens); n++ {
		assert.Equal(t, Score{Precision: 1, Recall: 1, FMeasure: 1}, ScoreNGrams(tokens, tokens, n), "n=%d", n)
	}
}

func TestScoreNGrams_Bounds(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		target := randomTokens(r, 12)
		pred := randomTokens(r, 12)
		for n := 1; n <= 3; n++ {
			assertBounded(t, ScoreNGrams(target, pred, n))
		}
	}
}

func randomTokens(r *rand.Rand, maxLen int) []string {
	vocab := []string{"a", "b", "c", "d", "e"}
	out := make([]string, r.IntN(maxLen+1))
	for i := range out {
		out[i] = vocab[r.IntN(len(vocab))]
	}
	return out
}

func assertBounded(t *testing.T, s Score) {
	t.Helper()
	for _, v := range []float64{s.Precision, s.Recall, s.FMeasure} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	assert.LessOrEqual(t, s.FMeasure, max(s.Precision, s.Recall)+1e-12)
}
