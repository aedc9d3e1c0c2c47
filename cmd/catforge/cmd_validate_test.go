// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"testing"

	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
)

func TestValidationExitCode(t *testing.T) {
	errorIssue := datatypes.ValidationIssue{
		Severity: datatypes.SeverityError,
		Where:    "offering",
		Message:  "Missing key: name",
	}
	warnIssue := datatypes.ValidationIssue{
		Severity: datatypes.SeverityWarn,
		Where:    "form.fields[0](extension)",
		Message:  "sequence numbers are not contiguous",
	}

	tests := []struct {
		name      string
		issues    datatypes.IssueList
		threshold string
		want      int
	}{
		{
			name:      "clean bundle",
			issues:    nil,
			threshold: "error",
			want:      ExitSuccess,
		},
		{
			name:      "warnings below error threshold",
			issues:    datatypes.IssueList{warnIssue},
			threshold: "error",
			want:      ExitSuccess,
		},
		{
			name:      "warnings at warn threshold",
			issues:    datatypes.IssueList{warnIssue},
			threshold: "warn",
			want:      ExitIssues,
		},
		{
			name:      "errors at error threshold",
			issues:    datatypes.IssueList{errorIssue},
			threshold: "error",
			want:      ExitIssues,
		},
		{
			name:      "errors and warnings",
			issues:    datatypes.IssueList{errorIssue, warnIssue},
			threshold: "error",
			want:      ExitIssues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validateThreshold = tt.threshold
			t.Cleanup(func() { validateThreshold = "error" })

			report := validationReport{
				Issues:   tt.issues,
				Errors:   tt.issues.Count(datatypes.SeverityError),
				Warnings: tt.issues.Count(datatypes.SeverityWarn),
			}
			if got := validationExitCode(report); got != tt.want {
				t.Errorf("validationExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
