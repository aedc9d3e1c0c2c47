// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validate implements the structural and semantic checks on a
// catalog bundle.
//
// Every validator is pure and stateless: it walks a raw decoded JSON
// document, appends ValidationIssues to a growing list, and never aborts
// on a bad record. One pass yields a complete report (fail-soft, not
// fail-fast). Error-severity issues mark the bundle unfit for
// deployment; warns surface defects an operator should see.
//
// The allowed-type sets, required keys and gating expressions come from
// the rules package, which bakes them into the binary as immutable
// process-wide tables.
package validate

import (
	"fmt"
	"strings"

	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
	"github.com/AleutianAI/CatalogForge/services/translator/rules"
)

// tables is the process-wide rule set. Read-only after init.
var tables = rules.MustLoad()

// Offering checks the catalog-item metadata document.
//
// Required keys must be present (error). Empty description/category are
// allowed but warned, since the extraction pipeline is expected to list
// them in missing_fields. user_permissions and publishing_scope must be
// objects with the documented member types (error); a publishing mode
// outside all_users|groups|users is a warn.
func Offering(offering map[string]any) datatypes.IssueList {
	var issues datatypes.IssueList

	for _, k := range tables.Offering.RequiredKeys {
		if _, ok := offering[k]; !ok {
			issues.Errorf("offering", "Missing key: %s", k)
		}
	}

	for _, k := range []string{"description", "category"} {
		if v, ok := offering[k].(string); ok && strings.TrimSpace(v) == "" {
			issues.Warnf("offering."+k, "Empty; supply or keep in missing_fields")
		}
	}

	if !isInt(offering["delivery_target_days"]) {
		issues.Warnf("offering.delivery_target_days", "Should be an integer")
	}

	if up, ok := offering["user_permissions"].(map[string]any); !ok {
		issues.Errorf("offering.user_permissions", "Must be an object")
	} else {
		for _, k := range []string{"can_cancel", "can_edit"} {
			if v, present := up[k]; present {
				if _, isBool := v.(bool); !isBool {
					issues.Errorf("offering.user_permissions."+k, "Must be boolean")
				}
			}
		}
	}

	if ps, ok := offering["publishing_scope"].(map[string]any); !ok {
		issues.Errorf("offering.publishing_scope", "Must be an object")
	} else {
		mode, _ := ps["mode"].(string)
		if datatypes.ParsePublishingMode(mode) == datatypes.PublishUnknown {
			issues.Warnf("offering.publishing_scope.mode",
				"Unexpected mode; expected all_users|groups|users")
		}
		// Advisory under all_users, but still type-checked.
		for _, k := range []string{"groups", "users"} {
			if v, present := ps[k]; present {
				if _, isList := v.([]any); !isList {
					issues.Errorf("offering.publishing_scope."+k, "Must be a list")
				}
			}
		}
	}

	return issues
}

// isInt reports whether a raw JSON value is an integer. encoding/json
// decodes numbers to float64, so a whole-valued float counts.
func isInt(v any) bool {
	switch n := v.(type) {
	case int:
		return true
	case int64:
		return true
	case float64:
		return n == float64(int64(n))
	default:
		return false
	}
}

// getString returns a string member of a raw document, or "" when the
// member is absent or not a string.
func getString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// fieldWhere builds the issue path for one field, 1-based like the rest
// of the report.
func fieldWhere(idx int, name string) string {
	if name == "" {
		name = "?"
	}
	return fmt.Sprintf("form.fields[%d](%s)", idx, name)
}
