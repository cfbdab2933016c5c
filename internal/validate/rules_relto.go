// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import (
	"github.com/jeranaias/markings/internal/country"
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

// relToRules implements §4.5 "REL TO rules".
func relToRules(m marking.Marking) []marking.ValidationError {
	codes := m.RelTo()
	if len(codes) == 0 {
		return nil
	}

	var errs []marking.ValidationError

	if m.Classification() < vocab.Confidential {
		errs = append(errs, marking.NewValidationError("REL TO requires classification at or above CONFIDENTIAL", "", "10.e.3"))
	}
	if len(codes) == 1 && codes[0] == "USA" {
		errs = append(errs, marking.NewValidationError("REL TO may not contain only USA", "", "10.e.5"))
	}
	if !country.IsSortedUSAFirst(codes) {
		errs = append(errs, marking.NewValidationError("USA must appear first in REL TO, remaining codes ordered trigraphs before tetragraphs", "", "10.e.4"))
	}

	return errs
}
