//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

package rouge

import "strings"

// ngramSep joins n-gram members into map keys; it cannot occur in a token
// produced by the default normalizer.
const ngramSep = "\x00"

// ScoreNGrams computes ROUGE-N for tokenized inputs. Overlap is the multiset
// intersection of contiguous n-grams. A sequence shorter than n has no
// n-grams, which zeroes the matching component instead of failing.
func ScoreNGrams(target, prediction []string, n int) Score {
	targetGrams, targetTotal := countNGrams(target, n)
	predGrams, predTotal := countNGrams(prediction, n)
	if targetTotal == 0 || predTotal == 0 {
		return Score{}
	}
	overlap := 0
	for gram, tc := range targetGrams {
		overlap += min(tc, predGrams[gram])
	}
	return NewScore(ratio(overlap, predTotal), ratio(overlap, targetTotal))
}

// countNGrams returns the n-gram multiset of tokens and its total size.
func countNGrams(tokens []string, n int) (map[string]int, int) {
	if n <= 0 || len(tokens) < n {
		return nil, 0
	}
	total := len(tokens) - n + 1
	grams := make(map[string]int, total)
	for i := 0; i < total; i++ {
		if n == 1 {
			grams[tokens[i]]++
			continue
		}
		grams[strings.Join(tokens[i:i+n], ngramSep)]++
	}
	return grams, total
}
