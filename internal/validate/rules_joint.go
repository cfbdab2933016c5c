// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import (
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

// jointRules implements §4.5 "JOINT rules".
func jointRules(m marking.Marking) []marking.ValidationError {
	if m.Type() != vocab.Joint {
		return nil
	}

	var errs []marking.ValidationError
	for _, a := range m.JointAuthorities() {
		if a == "USA" && m.Classification() == vocab.Restricted {
			errs = append(errs, marking.NewValidationError("RESTRICTED is disallowed when joint_authorities contains USA", "", "5.d"))
			break
		}
	}
	return errs
}
