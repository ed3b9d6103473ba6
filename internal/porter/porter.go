//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

// Package porter implements the Porter suffix-stripping stemmer with the
// NLTK extensions, which is the variant ROUGE reference scores are built with.
package porter

import "strings"

// irregular maps words the suffix rules get wrong to their stems.
var irregular = map[string]string{
	"sky":      "sky",
	"skies":    "sky",
	"dying":    "die",
	"lying":    "lie",
	"tying":    "tie",
	"news":     "news",
	"inning":   "inning",
	"innings":  "inning",
	"outing":   "outing",
	"outings":  "outing",
	"canning":  "canning",
	"cannings": "canning",
	"howe":     "howe",
	"proceed":  "proceed",
	"exceed":   "exceed",
	"succeed":  "succeed",
}

// Stem reduces a lowercase ASCII word to its stem. Words of two letters or
// fewer are returned unchanged.
func Stem(word string) string {
	word = strings.ToLower(word)
	if len(word) <= 2 {
		return word
	}
	if s, ok := irregular[word]; ok {
		return s
	}
	for _, step := range steps {
		word = step(word)
	}
	return word
}

var steps = []func(string) string{
	step1a, step1b, step1c, step2, step3, step4, step5a, step5b,
}

// rule rewrites suffix to replacement when cond accepts the remaining stem.
// A rule whose suffix matches but whose cond fails ends the rule list.
type rule struct {
	suffix      string
	replacement string
	cond        func(stem string) bool
	// doubled matches a trailing double consonant instead of suffix and
	// keeps one of the two letters.
	doubled bool
}

func applyRules(word string, rules []rule) string {
	for _, r := range rules {
		var stem, tail string
		switch {
		case r.doubled:
			if !endsDoubleConsonant(word) {
				continue
			}
			stem, tail = word[:len(word)-2], word[len(word)-1:]
		case strings.HasSuffix(word, r.suffix):
			stem = word[:len(word)-len(r.suffix)]
			tail = r.replacement
		default:
			continue
		}
		if r.cond != nil && !r.cond(stem) {
			return word
		}
		return stem + tail
	}
	return word
}

func positiveMeasure(stem string) bool { return measure(stem) > 0 }

func measureAboveOne(stem string) bool { return measure(stem) > 1 }

func step1a(word string) string {
	if len(word) == 4 && strings.HasSuffix(word, "ies") {
		return word[:1] + "ie"
	}
	return applyRules(word, []rule{
		{suffix: "sses", replacement: "ss"},
		{suffix: "ies", replacement: "i"},
		{suffix: "ss", replacement: "ss"},
		{suffix: "s"},
	})
}

func step1b(word string) string {
	switch {
	case strings.HasSuffix(word, "ied"):
		if len(word) == 4 {
			return word[:1] + "ie"
		}
		return word[:len(word)-3] + "i"
	case strings.HasSuffix(word, "eed"):
		if stem := word[:len(word)-3]; measure(stem) > 0 {
			return stem + "ee"
		}
		return word
	}

	stem, ok := "", false
	for _, suffix := range []string{"ed", "ing"} {
		if strings.HasSuffix(word, suffix) && hasVowel(word[:len(word)-len(suffix)]) {
			stem, ok = word[:len(word)-len(suffix)], true
			break
		}
	}
	if !ok {
		return word
	}
	last := stem[len(stem)-1]
	return applyRules(stem, []rule{
		{suffix: "at", replacement: "ate"},
		{suffix: "bl", replacement: "ble"},
		{suffix: "iz", replacement: "ize"},
		{doubled: true, cond: func(string) bool { return last != 'l' && last != 's' && last != 'z' }},
		{replacement: "e", cond: func(s string) bool { return measure(s) == 1 && endsCVC(s) }},
	})
}

func step1c(word string) string {
	return applyRules(word, []rule{{
		suffix:      "y",
		replacement: "i",
		cond:        func(s string) bool { return len(s) > 1 && isConsonant(s, len(s)-1) },
	}})
}

var step2Rules = []rule{
	{suffix: "ational", replacement: "ate", cond: positiveMeasure},
	{suffix: "tional", replacement: "tion", cond: positiveMeasure},
	{suffix: "enci", replacement: "ence", cond: positiveMeasure},
	{suffix: "anci", replacement: "ance", cond: positiveMeasure},
	{suffix: "izer", replacement: "ize", cond: positiveMeasure},
	{suffix: "bli", replacement: "ble", cond: positiveMeasure},
	{suffix: "alli", replacement: "al", cond: positiveMeasure},
	{suffix: "entli", replacement: "ent", cond: positiveMeasure},
	{suffix: "eli", replacement: "e", cond: positiveMeasure},
	{suffix: "ousli", replacement: "ous", cond: positiveMeasure},
	{suffix: "ization", replacement: "ize", cond: positiveMeasure},
	{suffix: "ation", replacement: "ate", cond: positiveMeasure},
	{suffix: "ator", replacement: "ate", cond: positiveMeasure},
	{suffix: "alism", replacement: "al", cond: positiveMeasure},
	{suffix: "iveness", replacement: "ive", cond: positiveMeasure},
	{suffix: "fulness", replacement: "ful", cond: positiveMeasure},
	{suffix: "ousness", replacement: "ous", cond: positiveMeasure},
	{suffix: "aliti", replacement: "al", cond: positiveMeasure},
	{suffix: "iviti", replacement: "ive", cond: positiveMeasure},
	{suffix: "biliti", replacement: "ble", cond: positiveMeasure},
	{suffix: "fulli", replacement: "ful", cond: positiveMeasure},
	// The measure is taken over the stem plus the leading "l".
	{suffix: "logi", replacement: "log", cond: func(s string) bool { return positiveMeasure(s + "l") }},
}

func step2(word string) string {
	if strings.HasSuffix(word, "alli") && positiveMeasure(word[:len(word)-4]) {
		return step2(word[:len(word)-4] + "al")
	}
	return applyRules(word, step2Rules)
}

var step3Rules = []rule{
	{suffix: "icate", replacement: "ic", cond: positiveMeasure},
	{suffix: "ative", cond: positiveMeasure},
	{suffix: "alize", replacement: "al", cond: positiveMeasure},
	{suffix: "iciti", replacement: "ic", cond: positiveMeasure},
	{suffix: "ical", replacement: "ic", cond: positiveMeasure},
	{suffix: "ful", cond: positiveMeasure},
	{suffix: "ness", cond: positiveMeasure},
}

func step3(word string) string {
	return applyRules(word, step3Rules)
}

var step4Rules = []rule{
	{suffix: "al", cond: measureAboveOne},
	{suffix: "ance", cond: measureAboveOne},
	{suffix: "ence", cond: measureAboveOne},
	{suffix: "er", cond: measureAboveOne},
	{suffix: "ic", cond: measureAboveOne},
	{suffix: "able", cond: measureAboveOne},
	{suffix: "ible", cond: measureAboveOne},
	{suffix: "ant", cond: measureAboveOne},
	{suffix: "ement", cond: measureAboveOne},
	{suffix: "ment", cond: measureAboveOne},
	{suffix: "ent", cond: measureAboveOne},
	{suffix: "ion", cond: func(s string) bool {
		return measureAboveOne(s) && (strings.HasSuffix(s, "s") || strings.HasSuffix(s, "t"))
	}},
	{suffix: "ou", cond: measureAboveOne},
	{suffix: "ism", cond: measureAboveOne},
	{suffix: "ate", cond: measureAboveOne},
	{suffix: "iti", cond: measureAboveOne},
	{suffix: "ous", cond: measureAboveOne},
	{suffix: "ive", cond: measureAboveOne},
	{suffix: "ize", cond: measureAboveOne},
}

func step4(word string) string {
	return applyRules(word, step4Rules)
}

func step5a(word string) string {
	if !strings.HasSuffix(word, "e") {
		return word
	}
	stem := word[:len(word)-1]
	switch m := measure(stem); {
	case m > 1, m == 1 && !endsCVC(stem):
		return stem
	}
	return word
}

func step5b(word string) string {
	if strings.HasSuffix(word, "ll") && measureAboveOne(word[:len(word)-1]) {
		return word[:len(word)-1]
	}
	return word
}
