// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

import (
	"fmt"
	"strings"
)

// Severity classifies a validation issue.
//
// An error-severity issue marks the bundle unfit for deployment. A warn
// marks a defect that should be surfaced to an operator but does not block
// transformation. The validators never abort on either; they accumulate.
type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warn"
)

// ParseSeverity converts a string to Severity. Unknown strings map to
// SeverityWarn so a bad filter flag never hides errors.
func ParseSeverity(s string) Severity {
	if strings.EqualFold(strings.TrimSpace(s), string(SeverityError)) {
		return SeverityError
	}
	return SeverityWarn
}

// ValidationIssue is a single finding from one of the validators.
//
// Where is a dotted path into the offending document
// (e.g. "workflow.blocks[3]", "tenant_config.groups.NETWORK_TEAM_GROUP_RECID").
type ValidationIssue struct {
	Severity Severity `json:"severity"`
	Where    string   `json:"where"`
	Message  string   `json:"message"`
}

// String renders the issue the way the CLI report prints it.
func (i ValidationIssue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Where, i.Message)
}

// IssueList is an ordered accumulation of validation issues.
//
// Validators append to an IssueList and keep going; the full list is the
// report. Order is the order checks ran in, which is stable per validator.
type IssueList []ValidationIssue

// Errorf appends an error-severity issue.
func (l *IssueList) Errorf(where, format string, args ...any) {
	*l = append(*l, ValidationIssue{
		Severity: SeverityError,
		Where:    where,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warnf appends a warn-severity issue.
func (l *IssueList) Warnf(where, format string, args ...any) {
	*l = append(*l, ValidationIssue{
		Severity: SeverityWarn,
		Where:    where,
		Message:  fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any issue carries error severity.
// A true result means the bundle must not be deployed.
func (l IssueList) HasErrors() bool {
	for _, i := range l {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of issues at the given severity.
func (l IssueList) Count(sev Severity) int {
	n := 0
	for _, i := range l {
		if i.Severity == sev {
			n++
		}
	}
	return n
}
