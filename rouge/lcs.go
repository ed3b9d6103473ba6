//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

package rouge

// ScoreLCS computes ROUGE-L from the longest common subsequence of the two
// whole token sequences.
func ScoreLCS(target, prediction []string) Score {
	if len(target) == 0 || len(prediction) == 0 {
		return Score{}
	}
	l := LCSLength(target, prediction)
	return NewScore(ratio(l, len(prediction)), ratio(l, len(target)))
}

// LCSLength returns the length of the longest common subsequence of a and b
// using two rolling rows of the dynamic programming table.
func LCSLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// ScoreSummaryLCS computes ROUGE-Lsum over sentence-split token sequences.
// Each reference sentence is matched against every prediction sentence and
// the matched reference positions are unioned. A token is credited at most as
// many times as it occurs on both sides, so overlapping matches never count twice.
func ScoreSummaryLCS(targetSents, predSents [][]string) Score {
	refTotal, refCounts := tokenCounts(targetSents)
	predTotal, predCounts := tokenCounts(predSents)
	if refTotal == 0 || predTotal == 0 {
		return Score{}
	}

	hits := 0
	for _, ref := range targetSents {
		if len(ref) == 0 {
			continue
		}
		matched := make([]bool, len(ref))
		for _, pred := range predSents {
			markLCS(ref, pred, matched)
		}
		for i, ok := range matched {
			tok := ref[i]
			if !ok || refCounts[tok] <= 0 || predCounts[tok] <= 0 {
				continue
			}
			hits++
			refCounts[tok]--
			predCounts[tok]--
		}
	}
	return NewScore(ratio(hits, predTotal), ratio(hits, refTotal))
}

func tokenCounts(sents [][]string) (int, map[string]int) {
	total := 0
	counts := make(map[string]int)
	for _, s := range sents {
		total += len(s)
		for _, tok := range s {
			counts[tok]++
		}
	}
	return total, counts
}

// markLCS sets matched[i] for every position i of ref that belongs to one
// longest common subsequence of ref and can. The full table is kept because
// the positions, not only the length, are needed.
func markLCS(ref, can []string, matched []bool) {
	if len(ref) == 0 || len(can) == 0 {
		return
	}
	cols := len(can) + 1
	table := make([]int, (len(ref)+1)*cols)
	at := func(i, j int) int { return table[i*cols+j] }
	for i := 1; i <= len(ref); i++ {
		for j := 1; j <= len(can); j++ {
			switch {
			case ref[i-1] == can[j-1]:
				table[i*cols+j] = at(i-1, j-1) + 1
			default:
				table[i*cols+j] = max(at(i-1, j), at(i, j-1))
			}
		}
	}
	// Ties drop a reference token first; this picks the same alignment as
	// rouge-score and therefore the same union.
	for i, j := len(ref), len(can); i > 0 && j > 0; {
		switch {
		case ref[i-1] == can[j-1]:
			matched[i-1] = true
			i--
			j--
		case at(i, j-1) > at(i-1, j):
			j--
		default:
			i--
		}
	}
}
