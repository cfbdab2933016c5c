// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package parser

import (
	"strings"

	"github.com/jeranaias/markings/internal/controls"
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

const (
	relToPrefix       = "REL TO "
	displayOnlyPrefix = "DISPLAY ONLY "
	fgiToken          = "FGI"
	accmPrefix        = "ACCM-"
)

// dispatchSegment classifies a single subsequent control segment and
// folds its contents into b, following the §3.3 priority order: AEA
// markers, SAP markers, SCI identifiers, dissem controls, other-dissem,
// FGI, NATO qualifier, ACCM. An unrecognised token yields a single
// ValidationError rather than aborting the parse (§4.3).
func dispatchSegment(segment string, b *marking.Builder) []marking.ValidationError {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return nil
	}

	if aea, ok := controls.ParseAeaSegment(segment); ok {
		b.Aea = aea
		b.HasAea = true
		return nil
	}

	if sap, ok := controls.ParseSapSegment(segment); ok {
		b.SapControl = sap
		b.HasSapControl = true
		return nil
	}

	if parts := splitOnSlash(segment); allKnownSci(parts) {
		for _, p := range parts {
			sci, _ := controls.ParseKnownSciSegment(p)
			b.SciControls = append(b.SciControls, sci)
		}
		return nil
	}

	if parts := splitOnSlash(segment); allDissem(parts) {
		for _, p := range parts {
			d, _ := vocab.DissemByToken(p)
			b.Dissem = append(b.Dissem, d)
		}
		return nil
	}

	if parts := splitOnSlash(segment); allOtherDissem(parts) {
		for _, p := range parts {
			o, _ := vocab.OtherDissemByToken(p)
			b.OtherDissem = append(b.OtherDissem, o)
		}
		return nil
	}

	switch {
	case segment == fgiToken:
		b.ConcealedFgi = true
		return nil
	case strings.HasPrefix(segment, fgiToken+" "):
		rest := strings.TrimSpace(segment[len(fgiToken):])
		b.UsFgiCountryCodes = append(b.UsFgiCountryCodes, strings.Fields(rest)...)
		return nil
	}

	if q, ok := vocab.NatoQualifierByToken(segment); ok {
		b.NatoQualifier = q
		b.HasNatoQualifier = true
		return nil
	}

	if strings.HasPrefix(segment, relToPrefix) {
		b.RelTo = append(b.RelTo, splitOnComma(segment[len(relToPrefix):])...)
		return nil
	}
	if strings.HasPrefix(segment, displayOnlyPrefix) {
		b.DisplayOnly = append(b.DisplayOnly, splitOnComma(segment[len(displayOnlyPrefix):])...)
		return nil
	}

	if strings.HasPrefix(segment, accmPrefix) {
		b.Accm = append(b.Accm, splitOnSlash(segment[len(accmPrefix):])...)
		return nil
	}

	return []marking.ValidationError{marking.NewValidationError("unknown control " + segment, "", "-")}
}

func splitOnSlash(s string) []string {
	var out []string
	for _, p := range strings.Split(s, "/") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitOnComma(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func allKnownSci(parts []string) bool {
	if len(parts) == 0 {
		return false
	}
	for _, p := range parts {
		if _, ok := controls.ParseKnownSciSegment(p); !ok {
			return false
		}
	}
	return true
}

func allDissem(parts []string) bool {
	if len(parts) == 0 {
		return false
	}
	for _, p := range parts {
		if _, ok := vocab.DissemByToken(p); !ok {
			return false
		}
	}
	return true
}

func allOtherDissem(parts []string) bool {
	if len(parts) == 0 {
		return false
	}
	for _, p := range parts {
		if _, ok := vocab.OtherDissemByToken(p); !ok {
			return false
		}
	}
	return true
}
