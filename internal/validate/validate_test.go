// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import (
	"testing"

	"github.com/jeranaias/markings/internal/controls"
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

func hasParagraph(errs []marking.ValidationError, paragraph string) bool {
	for _, e := range errs {
		if e.Paragraph == paragraph {
			return true
		}
	}
	return false
}

func TestValidate_RestrictedRd(t *testing.T) {
	m := marking.New(marking.Builder{
		Type:           vocab.US,
		Classification: vocab.Restricted,
		Aea:            controls.AeaMarking{Category: vocab.RD},
		HasAea:         true,
	})
	errs := Validate(m)
	if !hasParagraph(errs, "8.a.4") {
		t.Fatalf("expected 8.a.4 violation, got %v", errs)
	}
}

func TestValidate_CosmicSecret(t *testing.T) {
	m := marking.New(marking.Builder{
		Type:            vocab.FGI,
		Classification:  vocab.Secret,
		FgiAuthority:    "COSMIC",
		HasFgiAuthority: true,
	})
	errs := Validate(m)
	if !hasParagraph(errs, "4.b.2.a") {
		t.Fatalf("expected 4.b.2.a violation, got %v", errs)
	}
}

func TestValidate_BohemiaOnUsDocument(t *testing.T) {
	m := marking.New(marking.Builder{
		Type:             vocab.US,
		Classification:   vocab.Secret,
		NatoQualifier:    vocab.Bohemia,
		HasNatoQualifier: true,
	})
	errs := Validate(m)
	if !hasParagraph(errs, "4.b.2.c") {
		t.Fatalf("expected 4.b.2.c violation for BOHEMIA on a non-COSMIC document, got %v", errs)
	}
}

func TestValidate_RestrictedNofornOrcon_DoesNotShortCircuit(t *testing.T) {
	m := marking.New(marking.Builder{
		Type:           vocab.US,
		Classification: vocab.Restricted,
		Dissem:         []vocab.DissemControl{vocab.NOFORN, vocab.ORCON},
	})
	errs := Validate(m)
	if len(errs) < 2 {
		t.Fatalf("expected at least 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidate_HcsWithoutNoforn(t *testing.T) {
	m := marking.New(marking.Builder{
		Type:           vocab.US,
		Classification: vocab.Secret,
		SciControls:    []controls.SciControl{{Identifier: "HCS"}},
	})
	errs := Validate(m)
	if !hasParagraph(errs, "6.f") {
		t.Fatalf("expected 6.f violation, got %v", errs)
	}
}

func TestValidate_RelToGbrUsa_NotFirst(t *testing.T) {
	m := marking.New(marking.Builder{
		Type:           vocab.US,
		Classification: vocab.Secret,
		RelTo:          []string{"GBR", "USA"},
	})
	errs := Validate(m)
	if !hasParagraph(errs, "10.e.4") {
		t.Fatalf("expected 10.e.4 violation, got %v", errs)
	}
}

func TestValidate_RelToUsaOnly(t *testing.T) {
	m := marking.New(marking.Builder{
		Type:           vocab.US,
		Classification: vocab.Secret,
		RelTo:          []string{"USA"},
	})
	errs := Validate(m)
	if !hasParagraph(errs, "10.e.5") {
		t.Fatalf("expected 10.e.5 violation, got %v", errs)
	}
}

func TestValidate_ValidMarking_NoErrors(t *testing.T) {
	m := marking.New(marking.Builder{
		Type:           vocab.US,
		Classification: vocab.TopSecret,
		SciControls:    []controls.SciControl{{Identifier: "SI", Compartments: []controls.Compartment{{Code: "TK"}}}},
		Dissem:         []vocab.DissemControl{vocab.NOFORN},
	})
	if errs := Validate(m); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_SigmaBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		category vocab.AeaType
		sigma    int
		wantFail bool
	}{
		{"rd zero fails", vocab.RD, 0, true},
		{"rd one ok", vocab.RD, 1, false},
		{"frd ninetynine ok", vocab.FRD, 99, false},
		{"rd onehundred ok", vocab.RD, 100, false},
		{"frd onehundred fails", vocab.FRD, 100, true},
		{"rd onethousand fails", vocab.RD, 1000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := marking.New(marking.Builder{
				Type:           vocab.US,
				Classification: vocab.Secret,
				Aea:            controls.AeaMarking{Category: tt.category, Sigmas: []int{tt.sigma}},
				HasAea:         true,
			})
			errs := Validate(m)
			got := hasParagraph(errs, "8.d.3")
			if got != tt.wantFail {
				t.Fatalf("sigma %d category %v: fail=%v, want %v (%v)", tt.sigma, tt.category, got, tt.wantFail, errs)
			}
		})
	}
}

func TestValidate_SapProgramCountBoundary(t *testing.T) {
	four := marking.New(marking.Builder{
		Type:           vocab.US,
		Classification: vocab.Secret,
		SapControl:     controls.SapControl{Kind: controls.SapPrograms, Programs: []string{"A", "B", "C", "D"}},
		HasSapControl:  true,
	})
	if errs := Validate(four); hasParagraph(errs, "7.e") {
		t.Fatalf("4 programs should not violate 7.e: %v", errs)
	}

	five := marking.New(marking.Builder{
		Type:           vocab.US,
		Classification: vocab.Secret,
		SapControl:     controls.SapControl{Kind: controls.SapPrograms, Programs: []string{"A", "B", "C", "D", "E"}},
		HasSapControl:  true,
	})
	if errs := Validate(five); !hasParagraph(errs, "7.e") {
		t.Fatalf("5 programs should violate 7.e: %v", errs)
	}
}

func TestValidate_JointRestrictedWithUSA(t *testing.T) {
	m := marking.New(marking.Builder{
		Type:             vocab.Joint,
		Classification:   vocab.Restricted,
		JointAuthorities: []string{"USA", "GBR"},
	})
	errs := Validate(m)
	if !hasParagraph(errs, "5.d") {
		t.Fatalf("expected 5.d violation, got %v", errs)
	}
}

func TestValidate_WaivedWithoutSap(t *testing.T) {
	m := marking.New(marking.Builder{
		Type:           vocab.US,
		Classification: vocab.Secret,
		Dissem:         []vocab.DissemControl{vocab.WAIVED},
	})
	errs := Validate(m)
	if !hasParagraph(errs, "7.f") {
		t.Fatalf("expected 7.f violation, got %v", errs)
	}
}
