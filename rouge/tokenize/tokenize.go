//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

// Package tokenize turns raw text into the token sequences ROUGE compares.
package tokenize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphaNumRE matches runs of characters that never belong to a token.
	nonAlphaNumRE = regexp.MustCompile(`[^a-z0-9]+`)
)

// minStemLength is the shortest token handed to the stemmer.
const minStemLength = 4

// Tokenizer tokenizes text into a list of tokens.
type Tokenizer interface {
	// Tokenize splits input text into tokens.
	Tokenize(text string) []string
}

// TokenizerFunc adapts a plain function to Tokenizer.
type TokenizerFunc func(text string) []string

// Tokenize calls f(text).
func (f TokenizerFunc) Tokenize(text string) []string { return f(text) }

// Normalizer is the default Tokenizer. It lowercases text, replaces every
// character outside [a-z0-9] with a separator and optionally stems tokens.
// A Normalizer is immutable and safe for concurrent use.
type Normalizer struct {
	stemmer     Stemmer
	foldAccents bool
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithStemming enables or disables the built-in Porter stemmer.
func WithStemming(enabled bool) Option {
	return func(n *Normalizer) {
		if enabled {
			n.stemmer = PorterStemmer{}
			return
		}
		n.stemmer = nil
	}
}

// WithStemmer installs a custom stemmer. A nil stemmer disables stemming.
func WithStemmer(s Stemmer) Option {
	return func(n *Normalizer) {
		n.stemmer = s
	}
}

// WithAccentFolding strips combining marks before normalization so that
// accented Latin letters survive as their base letter instead of being dropped.
func WithAccentFolding(enabled bool) Option {
	return func(n *Normalizer) {
		n.foldAccents = enabled
	}
}

// New creates a Normalizer. Without options it neither stems nor folds accents.
func New(opt ...Option) *Normalizer {
	n := &Normalizer{}
	for _, o := range opt {
		o(n)
	}
	return n
}

// Stemming reports whether the normalizer stems tokens.
func (n *Normalizer) Stemming() bool {
	return n.stemmer != nil
}

// Tokenize implements Tokenizer.
func (n *Normalizer) Tokenize(text string) []string {
	if n.foldAccents {
		text = foldAccents(text)
	}
	text = nonAlphaNumRE.ReplaceAllString(strings.ToLower(text), " ")
	tokens := strings.Fields(text)
	if n.stemmer == nil {
		return tokens
	}
	for i, tok := range tokens {
		if len(tok) < minStemLength {
			continue
		}
		tokens[i] = stemOrKeep(n.stemmer, tok)
	}
	return tokens
}

// stemOrKeep returns the stem of tok, or tok itself when the stemmer fails
// or produces something that is no longer a token.
func stemOrKeep(s Stemmer, tok string) string {
	stemmed, err := s.Stem(tok)
	if err != nil || !isToken(stemmed) {
		return tok
	}
	return stemmed
}

func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// foldAccents decomposes text, removes nonspacing marks and recomposes it.
// Transformers keep state, so a fresh chain is built per call.
func foldAccents(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}
