// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import (
	"github.com/jeranaias/markings/internal/controls"
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

// sapRules implements §4.5 "SAP rules": a program list capped at four
// entries, and WAIVED disallowed without an accompanying SAP control.
func sapRules(m marking.Marking) []marking.ValidationError {
	var errs []marking.ValidationError

	if sap, ok := m.SapControl(); ok && sap.Kind == controls.SapPrograms && len(sap.Programs) > 4 {
		errs = append(errs, marking.NewValidationError("a SAP control may list at most four programs", "", "7.e"))
	}

	if m.HasDissem(vocab.WAIVED) {
		if _, ok := m.SapControl(); !ok {
			errs = append(errs, marking.NewValidationError("WAIVED requires an accompanying SAP control", "", "7.f"))
		}
	}

	return errs
}
