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
	"strconv"
	"strings"

	"trpc.group/trpc-go/trpc-rouge-go/errs"
)

// Kind distinguishes the ROUGE families.
type Kind int

const (
	// KindN is ROUGE-N, overlap of contiguous n-grams.
	KindN Kind = iota + 1
	// KindL is ROUGE-L, whole-document longest common subsequence.
	KindL
	// KindLsum is ROUGE-Lsum, summary-level union LCS over sentences.
	KindLsum
)

// Type identifies one ROUGE metric. The zero Type is invalid; build values
// with RougeN, RougeL, RougeLsum or ParseType.
type Type struct {
	kind Kind
	n    int
}

var (
	// RougeL is the whole-document LCS metric "rougeL".
	RougeL = Type{kind: KindL}
	// RougeLsum is the summary-level LCS metric "rougeLsum".
	RougeLsum = Type{kind: KindLsum}
)

// RougeN returns the ROUGE-N metric for n-grams of length n.
func RougeN(n int) Type {
	return Type{kind: KindN, n: n}
}

// Kind returns the metric family.
func (t Type) Kind() Kind { return t.kind }

// N returns the n-gram length of a ROUGE-N type and 0 otherwise.
func (t Type) N() int { return t.n }

// Valid reports whether t names a computable metric.
func (t Type) Valid() bool {
	switch t.kind {
	case KindN:
		return t.n >= 1
	case KindL, KindLsum:
		return t.n == 0
	}
	return false
}

// String returns the canonical identifier such as "rouge2" or "rougeLsum".
func (t Type) String() string {
	switch t.kind {
	case KindN:
		return "rouge" + strconv.Itoa(t.n)
	case KindL:
		return "rougeL"
	case KindLsum:
		return "rougeLsum"
	}
	return "invalid"
}

// ParseType parses an identifier of the form "rougeN" (N a positive integer),
// "rougeL" or "rougeLsum".
func ParseType(id string) (Type, error) {
	switch id {
	case "rougeL":
		return RougeL, nil
	case "rougeLsum":
		return RougeLsum, nil
	}
	digits, ok := strings.CutPrefix(id, "rouge")
	if !ok || digits == "" {
		return Type{}, errs.InvalidConfigf("invalid rouge type: %q", id)
	}
	for i := range len(digits) {
		if digits[i] < '0' || digits[i] > '9' {
			return Type{}, errs.InvalidConfigf("invalid rouge type: %q", id)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return Type{}, errs.InvalidConfigf("invalid rouge type: %q", id)
	}
	return RougeN(n), nil
}

// ParseTypes parses every identifier and rejects duplicates.
func ParseTypes(ids []string) ([]Type, error) {
	types := make([]Type, 0, len(ids))
	for _, id := range ids {
		t, err := ParseType(strings.TrimSpace(id))
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if err := checkTypes(types); err != nil {
		return nil, err
	}
	return types, nil
}

func checkTypes(types []Type) error {
	if len(types) == 0 {
		return errs.InvalidConfigf("no rouge types requested")
	}
	seen := make(map[Type]struct{}, len(types))
	for _, t := range types {
		if !t.Valid() {
			return errs.InvalidConfigf("invalid rouge type: %s", t)
		}
		if _, dup := seen[t]; dup {
			return errs.InvalidConfigf("duplicate rouge type: %s", t)
		}
		seen[t] = struct{}{}
	}
	return nil
}
