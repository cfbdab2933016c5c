// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import (
	"github.com/jeranaias/markings/internal/country"
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

// fgiRules implements §4.5 "FGI rules" for the subsequent FGI[+codes]
// control-group token (us_fgi_country_codes / concealed_fgi), as
// distinct from a head-level FGI marking type. Sub-paragraph numbers
// 9.a/9.c not given an explicit citation in the rule text are assigned
// adjacent to 9.b/9.d, the two paragraphs the specification does cite.
func fgiRules(m marking.Marking) []marking.ValidationError {
	codes := m.UsFgiCountryCodes()
	if len(codes) == 0 && !m.ConcealedFgi() {
		return nil
	}

	var errs []marking.ValidationError

	if m.Type() != vocab.US {
		errs = append(errs, marking.NewValidationError("an FGI marking is valid only inside a US-type document", "", "9.a"))
	}
	if m.Classification() < vocab.Confidential {
		errs = append(errs, marking.NewValidationError("FGI markings require classification at or above CONFIDENTIAL", "", "9.b"))
	}
	for _, c := range codes {
		if c == "USA" {
			errs = append(errs, marking.NewValidationError("USA may not appear in the FGI country list", "", "9.c"))
			break
		}
	}
	if !country.IsSorted(codes) {
		errs = append(errs, marking.NewValidationError("FGI country codes must be ordered trigraphs before tetragraphs, alphabetical within each class", "", "9.d"))
	}

	return errs
}
