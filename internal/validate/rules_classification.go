// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import (
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

// classificationPreconditions implements §4.5 "Classification
// preconditions": minimum classification levels for ORCON, NOFORN,
// PROPIN and RELIDO, the UNCLASSIFIED-only restriction on FOUO, and
// IMCON's level plus foreign-disclosure co-presence requirement.
func classificationPreconditions(m marking.Marking) []marking.ValidationError {
	var errs []marking.ValidationError
	c := m.Classification()

	if m.HasDissem(vocab.ORCON) && c < vocab.Confidential {
		errs = append(errs, marking.NewValidationError("ORCON requires classification at or above CONFIDENTIAL", "", "10.d.3"))
	}
	if m.HasDissem(vocab.NOFORN) && c < vocab.Confidential {
		errs = append(errs, marking.NewValidationError("NOFORN requires classification at or above CONFIDENTIAL", "2", "2.c"))
	}
	if m.HasDissem(vocab.PROPIN) && c < vocab.Confidential {
		errs = append(errs, marking.NewValidationError("PROPIN requires classification at or above CONFIDENTIAL", "2", "3.b"))
	}
	if m.HasDissem(vocab.RELIDO) && c < vocab.Confidential {
		errs = append(errs, marking.NewValidationError("RELIDO requires classification at or above CONFIDENTIAL", "2", "4.c"))
	}
	if m.HasDissem(vocab.FOUO) && c != vocab.Unclassified {
		errs = append(errs, marking.NewValidationError("FOUO is valid only on UNCLASSIFIED material", "", "10.b.1"))
	}
	if m.HasDissem(vocab.IMCON) {
		if c < vocab.Secret {
			errs = append(errs, marking.NewValidationError("IMCON requires classification at or above SECRET", "2", "1.b"))
		}
		if !hasForeignDisclosureNotice(m) {
			errs = append(errs, marking.NewValidationError("IMCON requires a foreign-disclosure notice (NOFORN, RELIDO, or REL TO)", "2", "1.c"))
		}
	}

	return errs
}

func hasForeignDisclosureNotice(m marking.Marking) bool {
	return m.HasDissem(vocab.NOFORN) || m.HasDissem(vocab.RELIDO) || len(m.RelTo()) > 0
}
