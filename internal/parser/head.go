// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package parser

import (
	"strings"

	"github.com/jeranaias/markings/internal/vocab"
)

// head is the decoded first segment of a banner or portion marking.
type head struct {
	mtype            vocab.MarkingType
	classification   vocab.ClassificationLevel
	fgiAuthority     string
	hasFgiAuthority  bool
	jointAuthorities []string
}

// parseHead decodes the first segment per §3.3/§3.4: a bare classification
// name/short-code means US; an authority word (NATO, COSMIC, or a
// trigraph/tetragraph country code) followed by a classification, or a
// standalone NATO short code, means FGI; "JOINT" followed by a
// classification and one or more country codes means JOINT.
func parseHead(text string) (head, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return head{}, false
	}

	if level, ok := vocab.ClassificationByNATOCode(text); ok {
		authority := "NATO"
		if level == vocab.TopSecret {
			authority = "COSMIC"
		}
		return head{mtype: vocab.FGI, classification: level, fgiAuthority: authority, hasFgiAuthority: true}, true
	}

	if strings.HasPrefix(text, "JOINT ") {
		rest := strings.TrimSpace(text[len("JOINT "):])
		level, rest2, ok := matchClassificationPrefix(rest)
		if !ok {
			return head{}, false
		}
		codes := strings.Fields(rest2)
		if len(codes) == 0 {
			return head{}, false
		}
		return head{mtype: vocab.Joint, classification: level, jointAuthorities: codes}, true
	}

	if level, remainder, ok := matchClassificationPrefix(text); ok && remainder == "" {
		return head{mtype: vocab.US, classification: level}, true
	}

	if fields := strings.Fields(text); len(fields) >= 2 {
		authority := fields[0]
		if isAuthorityToken(authority) {
			rest := strings.TrimSpace(text[len(authority):])
			if level, remainder, ok := matchClassificationPrefix(rest); ok && remainder == "" {
				return head{mtype: vocab.FGI, classification: level, fgiAuthority: authority, hasFgiAuthority: true}, true
			}
		}
	}

	return head{}, false
}

// classificationNames and classificationShortCodes are tried in list
// order; a match must be the whole string or be followed by a space, and
// no entry is a prefix of another on a word boundary, so match order
// between the two groups does not matter.
var classificationNames = []string{"TOP SECRET", "UNCLASSIFIED", "RESTRICTED", "CONFIDENTIAL", "SECRET"}
var classificationShortCodes = []string{"TS", "U", "R", "C", "S"}

// matchClassificationPrefix matches a classification name or short code at
// the start of s and returns the level plus whatever text follows it
// (trimmed). Used for both the plain US head and the text following a
// JOINT/FGI authority token.
func matchClassificationPrefix(s string) (vocab.ClassificationLevel, string, bool) {
	for _, name := range classificationNames {
		if s == name {
			level, _ := vocab.ClassificationByName(name)
			return level, "", true
		}
		if strings.HasPrefix(s, name+" ") {
			level, _ := vocab.ClassificationByName(name)
			return level, strings.TrimSpace(s[len(name):]), true
		}
	}
	for _, code := range classificationShortCodes {
		if s == code {
			level, _ := vocab.ClassificationByShortCode(code)
			return level, "", true
		}
		if strings.HasPrefix(s, code+" ") {
			level, _ := vocab.ClassificationByShortCode(code)
			return level, strings.TrimSpace(s[len(code):]), true
		}
	}
	return 0, "", false
}

// isAuthorityToken reports whether s is an FGI head authority: "NATO",
// "COSMIC", or a trigraph/tetragraph country code (three or four
// uppercase letters).
func isAuthorityToken(s string) bool {
	if s == "NATO" || s == "COSMIC" {
		return true
	}
	if len(s) != 3 && len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
