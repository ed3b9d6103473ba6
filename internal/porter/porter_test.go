//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

package porter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStem(t *testing.T) {
	cases := map[string]string{
		"caresses":       "caress",
		"ponies":         "poni",
		"dies":           "die",
		"died":           "die",
		"spied":          "spi",
		"friends":        "friend",
		"meeting":        "meet",
		"hopping":        "hop",
		"hoping":         "hope",
		"happy":          "happi",
		"enjoy":          "enjoy",
		"relational":     "relat",
		"conditional":    "condit",
		"generalization": "gener",
	}
	for in, want := range cases {
		assert.Equal(t, want, Stem(in), "Stem(%q)", in)
	}
}

func TestStem_IrregularForms(t *testing.T) {
	for in, want := range map[string]string{
		"skies": "sky", "dying": "die", "lying": "lie", "tying": "tie",
		"innings": "inning", "outings": "outing", "cannings": "canning",
	} {
		assert.Equal(t, want, Stem(in), "Stem(%q)", in)
	}
}

func TestStem_ShortWordsUnchanged(t *testing.T) {
	assert.Equal(t, "is", Stem("is"))
	assert.Equal(t, "a", Stem("A"))
	assert.Equal(t, "", Stem(""))
}

func TestMeasure(t *testing.T) {
	assert.Equal(t, 0, measure("tr"))
	assert.Equal(t, 0, measure("ee"))
	assert.Equal(t, 1, measure("trouble"))
	assert.Equal(t, 1, measure("oats"))
	assert.Equal(t, 2, measure("troubles"))
	assert.Equal(t, 2, measure("private"))
}

func TestEndsCVC(t *testing.T) {
	assert.True(t, endsCVC("hop"))
	assert.False(t, endsCVC("snow"))
	assert.False(t, endsCVC("box"))
	assert.True(t, endsCVC("at"))
	assert.False(t, endsCVC("a"))
}
