// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import (
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

// dissemConsistency implements §4.5 "Dissem consistency": NOFORN is
// mutually exclusive with both REL TO and RELIDO, and DISPLAY ONLY is
// incompatible with NOFORN and RELIDO.
func dissemConsistency(m marking.Marking) []marking.ValidationError {
	var errs []marking.ValidationError

	noforn := m.HasDissem(vocab.NOFORN)
	relido := m.HasDissem(vocab.RELIDO)
	hasRelTo := len(m.RelTo()) > 0
	hasDisplayOnly := len(m.DisplayOnly()) > 0

	if noforn && hasRelTo {
		errs = append(errs, marking.NewValidationError("NOFORN and REL TO are mutually exclusive", "2", "2.d"))
	}
	if noforn && relido {
		errs = append(errs, marking.NewValidationError("NOFORN and RELIDO are mutually exclusive", "2", "2.d"))
	}
	if hasDisplayOnly && noforn {
		errs = append(errs, marking.NewValidationError("DISPLAY ONLY is incompatible with NOFORN", "", "10.g.4"))
	}
	if hasDisplayOnly && relido {
		errs = append(errs, marking.NewValidationError("DISPLAY ONLY is incompatible with RELIDO", "", "10.g.4"))
	}

	return errs
}
