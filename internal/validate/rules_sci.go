// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import (
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

// sciRules implements §4.5 "SCI rules": every SCI control requires an
// explicit foreign-disclosure marking, and the HCS/KLONDIKE identifiers
// require NOFORN specifically.
func sciRules(m marking.Marking) []marking.ValidationError {
	scis := m.SciControls()
	if len(scis) == 0 {
		return nil
	}

	var errs []marking.ValidationError
	hasDisclosure := hasForeignDisclosureNotice(m) || len(m.DisplayOnly()) > 0
	if !hasDisclosure {
		errs = append(errs, marking.NewValidationError("SCI controls require an explicit foreign-disclosure marking (NOFORN, RELIDO, REL TO, or DISPLAY ONLY)", "", "6.c"))
	}
	for _, sci := range scis {
		if sci.RequiresNoforn() && !m.HasDissem(vocab.NOFORN) {
			errs = append(errs, marking.NewValidationError(sci.Identifier+" requires NOFORN specifically", "", "6.f"))
		}
	}
	return errs
}
