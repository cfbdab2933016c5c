// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package vocab

// DissemControl is the closed set of foreign-disclosure and handling
// dissemination notices.
type DissemControl int

const (
	NOFORN DissemControl = iota
	ORCON
	PROPIN
	RELIDO
	IMCON
	FOUO
	FISA
	DEASensitive
	WAIVED
)

type dissemRow struct {
	control  DissemControl
	name     string
	spelling []string // every accepted banner/portion spelling, name included
}

var dissemRows = []dissemRow{
	{NOFORN, "NOFORN", []string{"NOFORN", "NF"}},
	{ORCON, "ORCON", []string{"ORCON", "OC"}},
	{PROPIN, "PROPIN", []string{"PROPIN", "PR"}},
	{RELIDO, "RELIDO", []string{"RELIDO", "RSEN"}},
	{IMCON, "IMCON", []string{"IMCON", "IMC"}},
	{FOUO, "FOUO", []string{"FOUO"}},
	{FISA, "FISA", []string{"FISA"}},
	{DEASensitive, "DEA SENSITIVE", []string{"DEA SENSITIVE", "DSEN", "DS"}},
	{WAIVED, "WAIVED", []string{"WAIVED"}},
}

var (
	dissemBySpelling = map[string]DissemControl{}
	dissemName       = map[DissemControl]string{}
)

func init() {
	for _, row := range dissemRows {
		dissemName[row.control] = row.name
		for _, s := range row.spelling {
			dissemBySpelling[s] = row.control
		}
	}
}

func (d DissemControl) String() string {
	if name, ok := dissemName[d]; ok {
		return name
	}
	return "UNKNOWN"
}

// DissemByToken resolves any accepted banner or portion spelling to a
// DissemControl. Lookup is exact-match, case-sensitive.
func DissemByToken(token string) (DissemControl, bool) {
	d, ok := dissemBySpelling[token]
	return d, ok
}

// OtherDissemControl is the closed set of other-dissemination notices,
// disjoint from DissemControl.
type OtherDissemControl int

const (
	EXDIS OtherDissemControl = iota
	LIMDIS
	NODIS
	SBU
	SBUNoforn
	LES
	LESNoforn
	SSI
)

type otherDissemRow struct {
	control  OtherDissemControl
	name     string
	spelling []string
}

var otherDissemRows = []otherDissemRow{
	{EXDIS, "EXDIS", []string{"EXDIS", "XD"}},
	{LIMDIS, "LIMDIS", []string{"LIMDIS", "LD"}},
	{NODIS, "NODIS", []string{"NODIS", "ND"}},
	{SBU, "SBU", []string{"SBU"}},
	{SBUNoforn, "SBU-NOFORN", []string{"SBU-NOFORN", "SBU-NF"}},
	{LES, "LES", []string{"LES"}},
	{LESNoforn, "LES-NOFORN", []string{"LES-NOFORN", "LES-NF"}},
	{SSI, "SSI", []string{"SSI"}},
}

var (
	otherDissemBySpelling = map[string]OtherDissemControl{}
	otherDissemName       = map[OtherDissemControl]string{}
)

func init() {
	for _, row := range otherDissemRows {
		otherDissemName[row.control] = row.name
		for _, s := range row.spelling {
			otherDissemBySpelling[s] = row.control
		}
	}
}

func (o OtherDissemControl) String() string {
	if name, ok := otherDissemName[o]; ok {
		return name
	}
	return "UNKNOWN"
}

// OtherDissemByToken resolves any accepted spelling to an
// OtherDissemControl. Lookup is exact-match, case-sensitive.
func OtherDissemByToken(token string) (OtherDissemControl, bool) {
	o, ok := otherDissemBySpelling[token]
	return o, ok
}
