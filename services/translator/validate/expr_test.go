// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package validate

import "testing"

func TestNormalizeExpr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical", "$( submit_on_behalf == true )", "$(submit_on_behalf == true)"},
		{"tight", "$(false)", "$(false)"},
		{"padded", "  $(   false   )  ", "$(false)"},
		{"tabs and newlines", "$(\tsubmit_on_behalf\n== true )", "$(submit_on_behalf == true)"},
		{"empty", "", ""},
		{"no wrapper", "submit_on_behalf  ==  true", "submit_on_behalf == true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeExpr(tt.in); got != tt.want {
				t.Errorf("normalizeExpr(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSameExpr(t *testing.T) {
	if !sameExpr("$( false )", "$(false)") {
		t.Error("whitespace inside the wrapper should not matter")
	}
	if !sameExpr("$(  submit_on_behalf   == true )", "$( submit_on_behalf == true )") {
		t.Error("collapsed runs should compare equal")
	}
	if sameExpr("$(submit_on_behalf==true)", "$( submit_on_behalf == true )") {
		t.Error("operator spacing is part of the expression")
	}
}
