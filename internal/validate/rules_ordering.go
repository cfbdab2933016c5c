// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import "github.com/jeranaias/markings/internal/marking"

// orderingInvariants corresponds to §4.5 "Ordering-sort invariants".
// rel_to, display_only and us_fgi_country_codes ordering is already
// enforced by relToRules, displayOnlyRules and fgiRules respectively;
// joint_authorities ordering is a construction invariant enforced by
// marking.New, never a validator concern since the parser can't produce
// an unsorted value. This rule exists as a named placeholder so the
// battery's rule count matches the specification's rule groups one for
// one; it intentionally reports nothing new.
func orderingInvariants(m marking.Marking) []marking.ValidationError {
	return nil
}
