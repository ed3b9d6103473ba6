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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-rouge-go/errs"
)

func TestParseType(t *testing.T) {
	cases := map[string]Type{
		"rouge1":    RougeN(1),
		"rouge2":    RougeN(2),
		"rouge10":   RougeN(10),
		"rougeL":    RougeL,
		"rougeLsum": RougeLsum,
	}
	for id, want := range cases {
		got, err := ParseType(id)
		require.NoError(t, err, id)
		assert.Equal(t, want, got)
		assert.Equal(t, id, got.String())
		assert.True(t, got.Valid())
	}
}

// TestParseType_Invalid verifies that malformed identifiers are configuration errors.
func TestParseType_Invalid(t *testing.T) {
	for _, id := range []string{"", "rouge", "rougen", "rouge0", "rouge-1", "rouge+2", "ROUGE1", "rougel", "bleu"} {
		_, err := ParseType(id)
		require.Error(t, err, id)
		assert.ErrorIs(t, err, errs.ErrInvalidConfig, id)
	}
}

func TestParseTypes(t *testing.T) {
	types, err := ParseTypes([]string{"rouge1", " rouge2", "rougeL "})
	require.NoError(t, err)
	assert.Equal(t, []Type{RougeN(1), RougeN(2), RougeL}, types)

	_, err = ParseTypes([]string{"rouge1", "rouge1"})
	assert.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, err = ParseTypes(nil)
	assert.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestType_Accessors(t *testing.T) {
	assert.Equal(t, KindN, RougeN(3).Kind())
	assert.Equal(t, 3, RougeN(3).N())
	assert.Equal(t, 0, RougeL.N())
	assert.False(t, Type{}.Valid())
	assert.False(t, RougeN(0).Valid())
	assert.Equal(t, "invalid", Type{}.String())
}
