// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"strings"
	"testing"
)

func TestPlain_Forced(t *testing.T) {
	SetPlain(true)
	t.Cleanup(func() { plainMode.Store(0) })

	if !Plain() {
		t.Error("Plain() = false after SetPlain(true)")
	}

	SetPlain(false)
	if Plain() {
		t.Error("Plain() = true after SetPlain(false)")
	}
}

func TestIssueLine_Plain(t *testing.T) {
	SetPlain(true)
	t.Cleanup(func() { plainMode.Store(0) })

	tests := []struct {
		name     string
		severity string
		where    string
		message  string
		want     string
	}{
		{
			name:     "error issue",
			severity: "error",
			where:    "workflow.blocks",
			message:  "Expected at least one stop block",
			want:     "ERROR\tworkflow.blocks\tExpected at least one stop block",
		},
		{
			name:     "warn issue",
			severity: "warn",
			where:    "form.fields[2](urgency)",
			message:  "sequence numbers are not contiguous",
			want:     "WARN\tform.fields[2](urgency)\tsequence numbers are not contiguous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IssueLine(tt.severity, tt.where, tt.message)
			if got != tt.want {
				t.Errorf("IssueLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIssueLine_Styled(t *testing.T) {
	SetPlain(false)
	t.Cleanup(func() { plainMode.Store(0) })

	got := IssueLine("error", "offering", "Missing required key: name")
	if !strings.Contains(got, "Missing required key: name") {
		t.Errorf("styled line missing message: %q", got)
	}
	if !strings.Contains(got, "offering") {
		t.Errorf("styled line missing location: %q", got)
	}
}

func TestValidationSummary_Plain(t *testing.T) {
	SetPlain(true)
	t.Cleanup(func() { plainMode.Store(0) })

	got := ValidationSummary(2, 5)
	want := "SUMMARY: errors=2 warnings=5"
	if got != want {
		t.Errorf("ValidationSummary() = %q, want %q", got, want)
	}
}

func TestSubstitutionLine_Plain(t *testing.T) {
	SetPlain(true)
	t.Cleanup(func() { plainMode.Store(0) })

	got := SubstitutionLine("$.g", "<GROUP_REC_ID_IT_KNOWLEDGE>", "GRP-42")
	want := "$.g\t<GROUP_REC_ID_IT_KNOWLEDGE>\tGRP-42"
	if got != want {
		t.Errorf("SubstitutionLine() = %q, want %q", got, want)
	}
}

func TestUnmappedLine_Plain(t *testing.T) {
	SetPlain(true)
	t.Cleanup(func() { plainMode.Store(0) })

	got := UnmappedLine("$.owner", "<UNKNOWN_TOKEN>")
	if !strings.HasPrefix(got, "UNMAPPED\t") {
		t.Errorf("UnmappedLine() = %q, want UNMAPPED prefix", got)
	}
}

func TestIcon_Render_Plain(t *testing.T) {
	SetPlain(true)
	t.Cleanup(func() { plainMode.Store(0) })

	if got := IconError.Render(); got != string(IconError) {
		t.Errorf("plain icon render = %q, want raw icon", got)
	}
}
