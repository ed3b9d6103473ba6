//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

package porter

// isConsonant reports whether word[i] acts as a consonant. A "y" is a
// consonant at the start of a word or after a vowel.
func isConsonant(word string, i int) bool {
	if i < 0 || i >= len(word) {
		return false
	}
	switch word[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		return i == 0 || !isConsonant(word, i-1)
	}
	return true
}

func hasVowel(s string) bool {
	for i := range len(s) {
		if !isConsonant(s, i) {
			return true
		}
	}
	return false
}

// measure counts the vowel-consonant sequences in s, the "m" of [C](VC)^m[V].
func measure(s string) int {
	m := 0
	afterVowel := false
	for i := range len(s) {
		if isConsonant(s, i) {
			if afterVowel {
				m++
			}
			afterVowel = false
			continue
		}
		afterVowel = true
	}
	return m
}

func endsDoubleConsonant(s string) bool {
	n := len(s)
	return n >= 2 && s[n-1] == s[n-2] && isConsonant(s, n-1)
}

// endsCVC reports a consonant-vowel-consonant ending whose last letter is
// not w, x or y. Two-letter vowel-consonant words also qualify.
func endsCVC(s string) bool {
	n := len(s)
	if n >= 3 {
		last := s[n-1]
		return isConsonant(s, n-3) && !isConsonant(s, n-2) && isConsonant(s, n-1) &&
			last != 'w' && last != 'x' && last != 'y'
	}
	return n == 2 && !isConsonant(s, 0) && isConsonant(s, 1)
}
