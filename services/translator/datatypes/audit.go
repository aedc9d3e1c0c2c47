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

// WarningUnmappedPlaceholder flags an audit entry whose token had no
// mapping. Unmapped tokens are left in place so a human can finish
// tenant onboarding before the package reaches the target system.
const WarningUnmappedPlaceholder = "unmapped_placeholder"

// AuditEntry records one placeholder token encountered during
// substitution, mapped or not. New is empty and Warning is set for
// unmapped tokens.
type AuditEntry struct {
	Path    string `json:"path"`
	Old     string `json:"old"`
	New     string `json:"new,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// Placeholder is one unresolved bracket token found by the pre-flight
// scan, with its JSONPath-style location.
type Placeholder struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}
