// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package vocab

import "strings"

// AeaType is the Atomic Energy Act information category.
type AeaType int

const (
	RD AeaType = iota
	FRD
	DODUCNI
	DOEUCNI
	TFNI
)

type aeaRow struct {
	category AeaType
	longName string
	aliases  []string // accepted spellings, in priority order; longName first
}

// aeaRows preserves declaration order: AeaTypeByPrefix returns the first
// enumerant whose canonical name or alias is a prefix of the input, so
// longer / more specific aliases must be listed ahead of shorter ones
// that could also match as a prefix.
var aeaRows = []aeaRow{
	{RD, "RESTRICTED DATA", []string{"RESTRICTED DATA", "RD"}},
	{FRD, "FORMERLY RESTRICTED DATA", []string{"FORMERLY RESTRICTED DATA", "FRD"}},
	{DODUCNI, "DOD UNCLASSIFIED CONTROLLED NUCLEAR INFORMATION", []string{"DOD UNCLASSIFIED CONTROLLED NUCLEAR INFORMATION", "DOD UCNI", "DCNI"}},
	{DOEUCNI, "DOE UNCLASSIFIED CONTROLLED NUCLEAR INFORMATION", []string{"DOE UNCLASSIFIED CONTROLLED NUCLEAR INFORMATION", "DOE UCNI", "UCNI"}},
	{TFNI, "TRANSCLASSIFIED FOREIGN NUCLEAR INFORMATION", []string{"TRANSCLASSIFIED FOREIGN NUCLEAR INFORMATION", "TFNI"}},
}

var aeaLongName = func() map[AeaType]string {
	m := make(map[AeaType]string, len(aeaRows))
	for _, row := range aeaRows {
		m[row.category] = row.longName
	}
	return m
}()

func (a AeaType) String() string {
	if name, ok := aeaLongName[a]; ok {
		return name
	}
	return "UNKNOWN"
}

// AeaTypeByPrefix returns the first AEA category whose canonical name or
// any accepted alias is a prefix of the trimmed input. Lookup is
// case-sensitive and deliberately not normalised — aliasing relies on
// exact-case prefixes (§4.1). A nil/empty input yields not-found; callers
// passing a required-but-absent segment body should treat that as a
// programmer error, not call this with "".
func AeaTypeByPrefix(input string) (AeaType, bool) {
	category, _, ok := AeaAliasMatch(input)
	return category, ok
}

// AeaAliasMatch is AeaTypeByPrefix plus the matched alias text, so callers
// that need the remainder of the input (CNWDI/SIGMA suffix parsing) know
// how much of the trimmed input the category consumed.
func AeaAliasMatch(input string) (category AeaType, matchedAlias string, ok bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, "", false
	}
	for _, row := range aeaRows {
		for _, alias := range row.aliases {
			if strings.HasPrefix(trimmed, alias) {
				return row.category, alias, true
			}
		}
	}
	return 0, "", false
}

// NatoQualifier is the closed set of NATO compartment qualifiers that can
// appear alongside a NATO/COSMIC classification.
type NatoQualifier int

const (
	Atomal NatoQualifier = iota
	Bohemia
	Balk
)

func (q NatoQualifier) String() string {
	switch q {
	case Atomal:
		return "ATOMAL"
	case Bohemia:
		return "BOHEMIA"
	case Balk:
		return "BALK"
	default:
		return "UNKNOWN"
	}
}

var natoQualifierByToken = map[string]NatoQualifier{
	"ATOMAL":  Atomal,
	"BOHEMIA": Bohemia,
	"BALK":    Balk,
}

// NatoQualifierByToken resolves the exact token to a NatoQualifier.
func NatoQualifierByToken(token string) (NatoQualifier, bool) {
	q, ok := natoQualifierByToken[token]
	return q, ok
}
