// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import (
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

// otherDissemRules implements §4.5 "Other-dissem rules": EXDIS and NODIS
// are mutually exclusive, and both are incompatible with REL TO.
func otherDissemRules(m marking.Marking) []marking.ValidationError {
	var errs []marking.ValidationError

	exdis := m.HasOtherDissem(vocab.EXDIS)
	nodis := m.HasOtherDissem(vocab.NODIS)
	hasRelTo := len(m.RelTo()) > 0

	if exdis && nodis {
		errs = append(errs, marking.NewValidationError("EXDIS and NODIS are mutually exclusive", "3", "1.c"))
	}
	if exdis && hasRelTo {
		errs = append(errs, marking.NewValidationError("EXDIS is incompatible with REL TO", "3", "1.c"))
	}
	if nodis && hasRelTo {
		errs = append(errs, marking.NewValidationError("NODIS is incompatible with REL TO", "3", "2.d"))
	}

	return errs
}
