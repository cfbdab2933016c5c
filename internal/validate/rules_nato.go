// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import (
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

// natoCosmicRules implements §4.5 "NATO / COSMIC rules". ATOMAL carries
// no extra constraint (valid on any NATO/COSMIC classification) so it
// has no corresponding check here.
func natoCosmicRules(m marking.Marking) []marking.ValidationError {
	var errs []marking.ValidationError

	authority, hasAuthority := m.FgiAuthority()

	switch {
	case hasAuthority && authority == "COSMIC":
		if m.Classification() != vocab.TopSecret {
			errs = append(errs, marking.NewValidationError("COSMIC requires classification TOP SECRET", "", "4.b.2.a"))
		}
	case hasAuthority && authority == "NATO":
		if m.Classification() >= vocab.TopSecret {
			errs = append(errs, marking.NewValidationError("NATO requires classification below TOP SECRET", "", "4.b.2.a"))
		}
	}

	if hasAuthority && (authority == "NATO" || authority == "COSMIC") && m.HasDissem(vocab.NOFORN) {
		errs = append(errs, marking.NewValidationError("NOFORN is disallowed on NATO and COSMIC documents", "", "4.b.3"))
	}

	// BOHEMIA/BALK require COSMIC TOP SECRET regardless of whether the
	// document even carries an FGI authority: a qualifier on a US or
	// JOINT document is automatically out of place.
	if q, hasQ := m.NatoQualifier(); hasQ && (q == vocab.Bohemia || q == vocab.Balk) {
		if !(hasAuthority && authority == "COSMIC" && m.Classification() == vocab.TopSecret) {
			errs = append(errs, marking.NewValidationError(q.String()+" is valid only on COSMIC TOP SECRET", "", "4.b.2.c"))
		}
	}

	return errs
}
