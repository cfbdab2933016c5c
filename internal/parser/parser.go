// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package parser implements the banner and portion marking parsers
// (§4.3, §4.4): segmenting via internal/lexer, head resolution, per-
// segment control-group dispatch, and a final validator pass before a
// Marking is handed back to the caller.
package parser

import (
	"github.com/jeranaias/markings/internal/lexer"
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/validate"
)

// ParseBanner parses a full banner-form marking string (§3.3). It takes
// a string value, which cannot be nil, and does not panic. An empty or
// whitespace-only string is a normal InvalidMarking.
func ParseBanner(text string) (marking.Marking, error) {
	return parseMarkingText(text)
}

// ParsePortion parses a full portion-form marking string (§3.4). The
// underlying vocabulary lookups already accept both long names and short
// codes, so ParsePortion shares its implementation with ParseBanner; the
// banner/portion distinction is entirely in which spellings a caller
// happens to use, never in a different code path.
func ParsePortion(text string) (marking.Marking, error) {
	return parseMarkingText(text)
}

func parseMarkingText(text string) (marking.Marking, error) {
	if text == "" {
		return marking.Marking{}, marking.NewInvalidMarking(
			"empty input",
			text,
			[]marking.ValidationError{marking.NewValidationError("no classification head present", "", "-")},
		)
	}

	segments := lexer.Segments(text)
	if len(segments) == 0 {
		return marking.Marking{}, marking.NewInvalidMarking(
			"empty input",
			text,
			[]marking.ValidationError{marking.NewValidationError("no classification head present", "", "-")},
		)
	}

	h, ok := parseHead(segments[0])
	if !ok {
		return marking.Marking{}, marking.NewInvalidMarking(
			"unresolvable classification head",
			text,
			[]marking.ValidationError{marking.NewValidationError("classification", "", "-")},
		)
	}

	b := marking.Builder{
		Input:            text,
		Type:             h.mtype,
		Classification:   h.classification,
		FgiAuthority:     h.fgiAuthority,
		HasFgiAuthority:  h.hasFgiAuthority,
		JointAuthorities: h.jointAuthorities,
	}

	var parseErrors []marking.ValidationError
	for _, segment := range segments[1:] {
		parseErrors = append(parseErrors, dispatchSegment(segment, &b)...)
	}

	m := marking.New(b)

	allErrors := append(parseErrors, validate.Validate(m)...)
	if len(allErrors) > 0 {
		return marking.Marking{}, marking.NewInvalidMarking("validation failed", text, allErrors)
	}

	return m, nil
}
