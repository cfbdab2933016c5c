// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import (
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

// aeaRules implements §4.5 "AEA rules": minimum classification for RD
// and FRD, CNWDI restricted to RD, SIGMA range checks, and the
// UNCLASSIFIED-only restriction on the UCNI categories.
func aeaRules(m marking.Marking) []marking.ValidationError {
	aea, ok := m.Aea()
	if !ok {
		return nil
	}

	var errs []marking.ValidationError
	c := m.Classification()

	switch aea.Category {
	case vocab.RD:
		if c < vocab.Confidential {
			errs = append(errs, marking.NewValidationError("RESTRICTED DATA requires classification at or above CONFIDENTIAL", "", "8.a.4"))
		}
	case vocab.FRD:
		if c < vocab.Confidential {
			errs = append(errs, marking.NewValidationError("FORMERLY RESTRICTED DATA requires classification at or above CONFIDENTIAL", "", "8.b.2"))
		}
	case vocab.DODUCNI, vocab.DOEUCNI:
		if c != vocab.Unclassified {
			errs = append(errs, marking.NewValidationError(aea.Category.String()+" requires classification UNCLASSIFIED", "", "8.f.3"))
		}
	}

	if aea.CNWDI && aea.Category != vocab.RD {
		errs = append(errs, marking.NewValidationError("CNWDI is valid only for RESTRICTED DATA", "", "8.c.3"))
	}

	if len(aea.Sigmas) > 0 {
		var lo, hi int
		var rangeApplies bool
		switch aea.Category {
		case vocab.RD:
			lo, hi, rangeApplies = 1, 999, true
		case vocab.FRD:
			lo, hi, rangeApplies = 1, 99, true
		}
		if rangeApplies {
			for _, s := range aea.Sigmas {
				if s < lo || s > hi {
					errs = append(errs, marking.NewValidationError("SIGMA value out of range", "", "8.d.3"))
				}
			}
		}
	}

	return errs
}
