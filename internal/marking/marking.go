// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package marking holds the root Marking value and its construction
// Builder. Marking values are created fully-formed by a parser and never
// mutated afterward (§3.2 invariant 8); every accessor returns a
// defensive copy so callers cannot observe or cause mutation of the
// Marking's internal state (§3.2 invariant 2, §8.1).
package marking

import (
	"sort"

	"github.com/jeranaias/markings/internal/controls"
	"github.com/jeranaias/markings/internal/vocab"
)

// Marking is the fully-typed structured representation of a parsed DoD
// banner or portion marking.
type Marking struct {
	input             string
	mtype             vocab.MarkingType
	classification    vocab.ClassificationLevel
	fgiAuthority      *string
	natoQualifier     *vocab.NatoQualifier
	jointAuthorities  []string
	sciControls       []controls.SciControl
	sapControl        *controls.SapControl
	aea               *controls.AeaMarking
	dissem            []vocab.DissemControl
	relTo             []string
	displayOnly       []string
	otherDissem       []vocab.OtherDissemControl
	accm              []string
	usFgiCountryCodes []string
	concealedFgi      bool
}

// Builder collects the fields a parser assembles while walking a
// marking's segments; New() copies and freezes them into a Marking.
// Optional fields use a Has<Field> companion bool rather than a pointer,
// so parser code never has to take the address of a local.
type Builder struct {
	Input             string
	Type              vocab.MarkingType
	Classification    vocab.ClassificationLevel
	FgiAuthority      string
	HasFgiAuthority   bool
	NatoQualifier     vocab.NatoQualifier
	HasNatoQualifier  bool
	JointAuthorities  []string
	SciControls       []controls.SciControl
	SapControl        controls.SapControl
	HasSapControl     bool
	Aea               controls.AeaMarking
	HasAea            bool
	Dissem            []vocab.DissemControl
	RelTo             []string
	DisplayOnly       []string
	OtherDissem       []vocab.OtherDissemControl
	Accm              []string
	UsFgiCountryCodes []string
	ConcealedFgi      bool
}

// New freezes a Builder into an immutable Marking. JointAuthorities is
// sorted alphabetically regardless of the order the builder assembled it
// in (§3.2 invariant 4).
func New(b Builder) Marking {
	m := Marking{
		input:             b.Input,
		mtype:             b.Type,
		classification:    b.Classification,
		jointAuthorities:  sortedCopy(b.JointAuthorities),
		sciControls:       append([]controls.SciControl{}, b.SciControls...),
		dissem:            append([]vocab.DissemControl{}, b.Dissem...),
		relTo:             append([]string{}, b.RelTo...),
		displayOnly:       append([]string{}, b.DisplayOnly...),
		otherDissem:       append([]vocab.OtherDissemControl{}, b.OtherDissem...),
		accm:              append([]string{}, b.Accm...),
		usFgiCountryCodes: append([]string{}, b.UsFgiCountryCodes...),
		concealedFgi:      b.ConcealedFgi,
	}
	if b.HasFgiAuthority {
		v := b.FgiAuthority
		m.fgiAuthority = &v
	}
	if b.HasNatoQualifier {
		v := b.NatoQualifier
		m.natoQualifier = &v
	}
	if b.HasSapControl {
		v := b.SapControl
		m.sapControl = &v
	}
	if b.HasAea {
		v := b.Aea
		m.aea = &v
	}
	return m
}

func sortedCopy(in []string) []string {
	out := append([]string{}, in...)
	sort.Strings(out)
	return out
}

// Input returns the verbatim original marking text.
func (m Marking) Input() string { return m.input }

// Type returns the marking's scope: US, FGI, or JOINT.
func (m Marking) Type() vocab.MarkingType { return m.mtype }

// Classification returns the marking's classification level.
func (m Marking) Classification() vocab.ClassificationLevel { return m.classification }

// FgiAuthority returns the FGI authority string and whether it is present.
func (m Marking) FgiAuthority() (string, bool) {
	if m.fgiAuthority == nil {
		return "", false
	}
	return *m.fgiAuthority, true
}

// NatoQualifier returns the NATO qualifier and whether it is present.
func (m Marking) NatoQualifier() (vocab.NatoQualifier, bool) {
	if m.natoQualifier == nil {
		return 0, false
	}
	return *m.natoQualifier, true
}

// JointAuthorities returns a copy of the alphabetically-sorted joint
// authority list (non-empty only when Type() == vocab.Joint).
func (m Marking) JointAuthorities() []string {
	return append([]string{}, m.jointAuthorities...)
}

// SciControls returns a copy of the ordered SCI control list.
func (m Marking) SciControls() []controls.SciControl {
	return append([]controls.SciControl{}, m.sciControls...)
}

// SapControl returns the SAP control and whether it is present.
func (m Marking) SapControl() (controls.SapControl, bool) {
	if m.sapControl == nil {
		return controls.SapControl{}, false
	}
	return *m.sapControl, true
}

// Aea returns the AEA marking and whether it is present.
func (m Marking) Aea() (controls.AeaMarking, bool) {
	if m.aea == nil {
		return controls.AeaMarking{}, false
	}
	return *m.aea, true
}

// Dissem returns a copy of the ordered dissemination control set.
func (m Marking) Dissem() []vocab.DissemControl {
	return append([]vocab.DissemControl{}, m.dissem...)
}

// HasDissem reports whether the given control is present.
func (m Marking) HasDissem(d vocab.DissemControl) bool {
	for _, have := range m.dissem {
		if have == d {
			return true
		}
	}
	return false
}

// RelTo returns a copy of the ordered REL TO country-code list.
func (m Marking) RelTo() []string { return append([]string{}, m.relTo...) }

// DisplayOnly returns a copy of the ordered DISPLAY ONLY country-code list.
func (m Marking) DisplayOnly() []string { return append([]string{}, m.displayOnly...) }

// OtherDissem returns a copy of the ordered other-dissemination control set.
func (m Marking) OtherDissem() []vocab.OtherDissemControl {
	return append([]vocab.OtherDissemControl{}, m.otherDissem...)
}

// HasOtherDissem reports whether the given control is present.
func (m Marking) HasOtherDissem(o vocab.OtherDissemControl) bool {
	for _, have := range m.otherDissem {
		if have == o {
			return true
		}
	}
	return false
}

// Accm returns a copy of the ordered ACCM program-code list.
func (m Marking) Accm() []string { return append([]string{}, m.accm...) }

// UsFgiCountryCodes returns a copy of the ordered US-FGI country-code list.
func (m Marking) UsFgiCountryCodes() []string {
	return append([]string{}, m.usFgiCountryCodes...)
}

// ConcealedFgi reports whether FGI appeared in the input without country
// codes (§3.2 invariant 5).
func (m Marking) ConcealedFgi() bool { return m.concealedFgi }
