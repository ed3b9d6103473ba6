//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

package rouge

import "trpc.group/trpc-go/trpc-rouge-go/rouge/tokenize"

// options holds configuration for a Scorer.
type options struct {
	// useStemmer enables Porter stemming in the built-in tokenizer.
	useStemmer bool
	// foldAccents strips diacritics in the built-in tokenizer.
	foldAccents bool
	// tokenizer overrides the built-in tokenizer when provided.
	tokenizer tokenize.Tokenizer
	// splitter overrides the rougeLsum sentence splitter when provided.
	splitter tokenize.SentenceSplitter
	// splitSummaries selects the Punkt splitter for rougeLsum.
	splitSummaries bool
}

// Option configures a Scorer.
type Option func(*options)

// WithStemmer enables or disables Porter stemming in the built-in tokenizer.
// It is ignored when WithTokenizer is used.
func WithStemmer(useStemmer bool) Option {
	return func(o *options) {
		o.useStemmer = useStemmer
	}
}

// WithAccentFolding folds accented letters to their base letter in the
// built-in tokenizer. It is ignored when WithTokenizer is used.
func WithAccentFolding(fold bool) Option {
	return func(o *options) {
		o.foldAccents = fold
	}
}

// WithTokenizer overrides the built-in tokenizer.
func WithTokenizer(tokenizer tokenize.Tokenizer) Option {
	return func(o *options) {
		o.tokenizer = tokenizer
	}
}

// WithSplitSummaries detects sentence boundaries for rougeLsum instead of
// treating each line as a sentence.
func WithSplitSummaries(splitSummaries bool) Option {
	return func(o *options) {
		o.splitSummaries = splitSummaries
	}
}

// WithSentenceSplitter overrides the rougeLsum sentence splitter. It takes
// precedence over WithSplitSummaries.
func WithSentenceSplitter(splitter tokenize.SentenceSplitter) Option {
	return func(o *options) {
		o.splitter = splitter
	}
}

func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}
