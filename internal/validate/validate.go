// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package validate runs the marking validator (§4.5): a fixed battery of
// independent rule functions, each over a candidate marking.Marking,
// folded together with no shared mutable state. This mirrors the
// Config.Validate accumulation idiom the rest of the stack uses for
// configuration checking, generalised from one struct's field checks to
// an open set of rule functions over a richer domain value.
package validate

import "github.com/jeranaias/markings/internal/marking"

// rule is one independent check. A rule never short-circuits the
// others: Validate always runs every rule and concatenates every
// rule's output.
type rule func(marking.Marking) []marking.ValidationError

// rules is the exhaustive rule battery from §4.5, grouped by the
// specification's own section headings.
var rules = []rule{
	classificationPreconditions,
	dissemConsistency,
	sciRules,
	sapRules,
	aeaRules,
	fgiRules,
	relToRules,
	displayOnlyRules,
	otherDissemRules,
	natoCosmicRules,
	jointRules,
	orderingInvariants,
}

// Validate runs every rule in the battery against m and returns the
// concatenation of their findings, in rule-declaration order. An empty
// result means m is valid.
func Validate(m marking.Marking) []marking.ValidationError {
	var errs []marking.ValidationError
	for _, r := range rules {
		errs = append(errs, r(m)...)
	}
	return errs
}
