//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

package tokenize

import "trpc.group/trpc-go/trpc-rouge-go/internal/porter"

// Stemmer reduces a token to its root form. Implementations must be safe for
// concurrent use. A returned error keeps the token unstemmed.
type Stemmer interface {
	Stem(word string) (string, error)
}

// StemmerFunc adapts a plain function to Stemmer.
type StemmerFunc func(word string) (string, error)

// Stem calls f(word).
func (f StemmerFunc) Stem(word string) (string, error) { return f(word) }

// PorterStemmer is the Porter stemmer with NLTK extensions.
type PorterStemmer struct{}

// Stem implements Stemmer and never fails.
func (PorterStemmer) Stem(word string) (string, error) {
	return porter.Stem(word), nil
}
