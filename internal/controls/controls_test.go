// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package controls

import (
	"reflect"
	"testing"

	"github.com/jeranaias/markings/internal/vocab"
)

func TestParseSciSegment_Simple(t *testing.T) {
	sci, ok := ParseSciSegment("SI-TK")
	if !ok {
		t.Fatal("expected parse success")
	}
	if sci.Identifier != "SI" {
		t.Fatalf("Identifier = %q, want SI", sci.Identifier)
	}
	if len(sci.Compartments) != 1 || sci.Compartments[0].Code != "TK" {
		t.Fatalf("Compartments = %+v, want one compartment TK", sci.Compartments)
	}
	if len(sci.Compartments[0].SubCompartments) != 0 {
		t.Fatalf("expected no sub-compartments")
	}
}

func TestParseSciSegment_NestedSubCompartments(t *testing.T) {
	sci, ok := ParseSciSegment("SI-G ABC DEF")
	if !ok {
		t.Fatal("expected parse success")
	}
	if len(sci.Compartments) != 1 {
		t.Fatalf("Compartments = %+v, want 1", sci.Compartments)
	}
	got := sci.Compartments[0]
	if got.Code != "G" || !reflect.DeepEqual(got.SubCompartments, []string{"ABC", "DEF"}) {
		t.Fatalf("compartment = %+v, want G/[ABC DEF]", got)
	}
}

func TestSciControl_RequiresNoforn(t *testing.T) {
	hcs, _ := ParseSciSegment("HCS")
	if !hcs.RequiresNoforn() {
		t.Fatal("HCS must require NOFORN")
	}
	si, _ := ParseSciSegment("SI-TK")
	if si.RequiresNoforn() {
		t.Fatal("SI must not require NOFORN specifically")
	}
}

func TestParseSapSegment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantKnd SapKind
		wantP   []string
	}{
		{"single program", "SAR-FOO", true, SapPrograms, []string{"FOO"}},
		{"multiple via slash", "SAR-FOO/BAR/BAZ", true, SapPrograms, []string{"FOO", "BAR", "BAZ"}},
		{"full form", "SPECIAL ACCESS REQUIRED-FOO", true, SapPrograms, []string{"FOO"}},
		{"multiple programs literal", "SAR-MULTIPLE PROGRAMS", true, SapMultiplePrograms, nil},
		{"hvsaco", "HVSACO", true, SapHvsaco, nil},
		{"garbage", "NOT A SAP", false, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSapSegment(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Kind != tt.wantKnd {
				t.Fatalf("Kind = %v, want %v", got.Kind, tt.wantKnd)
			}
			if tt.wantP != nil && !reflect.DeepEqual(got.Programs, tt.wantP) {
				t.Fatalf("Programs = %v, want %v", got.Programs, tt.wantP)
			}
		})
	}
}

func TestParseAeaSegment_Bare(t *testing.T) {
	m, ok := ParseAeaSegment("RD")
	if !ok || m.Category != vocab.RD || m.CNWDI || len(m.Sigmas) != 0 {
		t.Fatalf("ParseAeaSegment(RD) = %+v, %v", m, ok)
	}
}

func TestParseAeaSegment_CNWDI(t *testing.T) {
	m, ok := ParseAeaSegment("RD-N")
	if !ok || !m.CNWDI {
		t.Fatalf("ParseAeaSegment(RD-N) = %+v, %v", m, ok)
	}
}

func TestParseAeaSegment_SigmaDropsInvalid(t *testing.T) {
	m, ok := ParseAeaSegment("RD-SIGMA 1 ABC 3")
	if !ok {
		t.Fatal("expected parse success")
	}
	if !reflect.DeepEqual(m.Sigmas, []int{1, 3}) {
		t.Fatalf("Sigmas = %v, want [1 3]", m.Sigmas)
	}
}

func TestParseAeaSegment_AbbreviatedSigma(t *testing.T) {
	m, ok := ParseAeaSegment("RD-SG1 2 3")
	if !ok || !reflect.DeepEqual(m.Sigmas, []int{1, 2, 3}) {
		t.Fatalf("ParseAeaSegment(RD-SG1 2 3) = %+v, %v", m, ok)
	}
	m2, ok := ParseAeaSegment("RD-SG 1 2 3")
	if !ok || !reflect.DeepEqual(m2.Sigmas, []int{1, 2, 3}) {
		t.Fatalf("ParseAeaSegment(RD-SG 1 2 3) = %+v, %v", m2, ok)
	}
}

func TestAeaMarking_RenderRoundTrip(t *testing.T) {
	tests := []AeaMarking{
		{Category: vocab.RD},
		{Category: vocab.RD, CNWDI: true},
		{Category: vocab.RD, Sigmas: []int{1, 2, 3}},
		{Category: vocab.FRD, Sigmas: []int{99}},
		{Category: vocab.RD, CNWDI: true, Sigmas: []int{1, 2, 3}},
	}
	for _, m := range tests {
		rendered := m.Render()
		got, ok := ParseAeaSegment(rendered)
		if !ok {
			t.Fatalf("re-parsing %q failed", rendered)
		}
		if !reflect.DeepEqual(got, m) {
			t.Fatalf("round trip mismatch: rendered %q, got %+v, want %+v", rendered, got, m)
		}
	}
}

func TestAeaMarking_RenderExample(t *testing.T) {
	m := AeaMarking{Category: vocab.RD, Sigmas: []int{1, 2, 3}}
	if got, want := m.Render(), "RESTRICTED DATA-SIGMA 1 2 3"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}
