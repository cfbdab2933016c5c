// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import (
	"github.com/jeranaias/markings/internal/country"
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

// displayOnlyRules implements §4.5 "DISPLAY ONLY rules".
func displayOnlyRules(m marking.Marking) []marking.ValidationError {
	codes := m.DisplayOnly()
	if len(codes) == 0 {
		return nil
	}

	var errs []marking.ValidationError

	if m.Classification() < vocab.Confidential {
		errs = append(errs, marking.NewValidationError("DISPLAY ONLY requires classification at or above CONFIDENTIAL", "", "10.g.3"))
	}
	if !country.IsSorted(codes) {
		errs = append(errs, marking.NewValidationError("DISPLAY ONLY codes must be ordered ascending, trigraphs before tetragraphs", "", "10.g.5"))
	}

	return errs
}
