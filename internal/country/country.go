// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package country implements the trigraph/tetragraph country-code
// ordering shared by REL TO, DISPLAY ONLY, FGI and US-FGI country-code
// lists (DoD 5200.01 Vol. 2, Enc 4, 9.d / 10.e.4 / 10.g.5).
package country

import "sort"

// Less reports whether code a sorts before code b under the
// trigraph-before-tetragraph, then-alphabetical ordering rule. It does
// not special-case "USA" — callers that need USA pinned first (REL TO)
// must handle that separately.
func Less(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// IsSorted reports whether codes already satisfy the trigraph-before-
// tetragraph, alphabetical-within-class ordering.
func IsSorted(codes []string) bool {
	return sort.SliceIsSorted(codes, func(i, j int) bool {
		return Less(codes[i], codes[j])
	})
}

// IsSortedUSAFirst reports whether codes satisfy the REL TO ordering
// rule: "USA" (if present) is first, and the remaining codes satisfy
// IsSorted.
func IsSortedUSAFirst(codes []string) bool {
	if len(codes) == 0 {
		return true
	}
	rest := codes
	if codes[0] == "USA" {
		rest = codes[1:]
	} else {
		for _, c := range codes[1:] {
			if c == "USA" {
				return false // USA present but not first
			}
		}
	}
	return IsSorted(rest)
}

// Sort returns a new, ascending-ordered copy of codes (trigraphs before
// tetragraphs, alphabetical within each class). The parser and validator
// never call it: they reject unsorted input rather than silently correct
// it (§4.5).
func Sort(codes []string) []string {
	out := make([]string, len(codes))
	copy(out, codes)
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// SortUSAFirst returns a new copy of codes ordered with "USA" first (if
// present) followed by the remaining codes in Sort order.
func SortUSAFirst(codes []string) []string {
	var usa []string
	var rest []string
	for _, c := range codes {
		if c == "USA" {
			usa = append(usa, c)
		} else {
			rest = append(rest, c)
		}
	}
	return append(usa, Sort(rest)...)
}
