// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package controls

import (
	"strconv"
	"strings"

	"github.com/jeranaias/markings/internal/vocab"
)

// AeaMarking is an Atomic Energy Act information marking: a category, the
// CNWDI ("-N") flag, and an ordered, distinct set of SIGMA numbers.
type AeaMarking struct {
	Category vocab.AeaType
	CNWDI    bool
	Sigmas   []int
}

// ParseAeaSegment parses a segment body carrying an AEA marking. Accepted
// forms: "<category>", "<category>-N", "<category>-SIGMA <int>...", and
// the abbreviated "<category>-SG<int>...". SIGMA tokens that fail to
// parse as integers are silently dropped; an all-invalid SIGMA list
// yields an empty (not failed) SIGMA set.
func ParseAeaSegment(segment string) (AeaMarking, bool) {
	trimmed := strings.TrimSpace(segment)
	category, alias, ok := vocab.AeaAliasMatch(trimmed)
	if !ok {
		return AeaMarking{}, false
	}

	rest := trimmed[len(alias):]
	m := AeaMarking{Category: category}

	switch {
	case rest == "":
		// bare category marking
	case rest == "-N":
		m.CNWDI = true
	case strings.HasPrefix(rest, "-N-SIGMA"):
		m.CNWDI = true
		m.Sigmas = parseSigmaList(rest[len("-N-SIGMA"):])
	case strings.HasPrefix(rest, "-N-SG"):
		m.CNWDI = true
		m.Sigmas = parseSigmaList(rest[len("-N-SG"):])
	case strings.HasPrefix(rest, "-SIGMA"):
		m.Sigmas = parseSigmaList(rest[len("-SIGMA"):])
	case strings.HasPrefix(rest, "-SG"):
		m.Sigmas = parseSigmaList(rest[len("-SG"):])
	default:
		return AeaMarking{}, false
	}

	return m, true
}

// parseSigmaList collapses whitespace between sigma numbers and drops
// tokens that do not parse as integers, deduplicating while preserving
// first-seen order.
func parseSigmaList(s string) []int {
	seen := make(map[int]bool)
	var out []int
	for _, tok := range strings.Fields(s) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// Render produces the canonical long-form rendering of the marking, such
// that ParseAeaSegment(m.Render()) reproduces an equal AeaMarking for
// every constructable m, including CNWDI+SIGMA combined (§6 round-trip
// requirement).
func (m AeaMarking) Render() string {
	var b strings.Builder
	b.WriteString(m.Category.String())
	if m.CNWDI {
		b.WriteString("-N")
	}
	if len(m.Sigmas) > 0 {
		b.WriteString("-SIGMA")
		for _, s := range m.Sigmas {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(s))
		}
	}
	return b.String()
}
