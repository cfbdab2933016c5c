// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lexer splits a raw banner or portion marking string into its
// "//"-delimited segments, ahead of the recursive-descent dispatch done
// by internal/parser (§4.3).
package lexer

import "strings"

// Segments splits text on "//", trims surrounding whitespace from the
// whole string and from each segment, and drops any segments left empty
// by leading/trailing/doubled delimiters. The original textual order of
// non-empty segments is preserved.
func Segments(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	raw := strings.Split(trimmed, "//")
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
