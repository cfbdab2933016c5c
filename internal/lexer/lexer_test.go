// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lexer

import (
	"reflect"
	"testing"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "SECRET//NOFORN", []string{"SECRET", "NOFORN"}},
		{"trailing slashes", "SECRET//NOFORN//", []string{"SECRET", "NOFORN"}},
		{"collapsed blanks", "SECRET////NOFORN", []string{"SECRET", "NOFORN"}},
		{"surrounding whitespace", "  SECRET//NOFORN  ", []string{"SECRET", "NOFORN"}},
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segments(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Segments(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
