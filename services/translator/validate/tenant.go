// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package validate

import (
	"sort"

	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
)

// tenantSections lists the sections the sentinel scan covers, in report
// order. groups and email_templates are mandatory; statuses and catalog
// are scanned only when present.
var tenantSections = []struct {
	name     string
	required bool
}{
	{"groups", true},
	{"email_templates", true},
	{"statuses", false},
	{"catalog", false},
}

// TenantConfig checks the resolution source itself for completeness.
//
// groups and email_templates must be present and be objects (error). Any
// value still equal to the REPLACE_ME sentinel (case-insensitive,
// trimmed) draws a warn naming the offending key: the explicit signal
// that a tenant has not finished onboarding.
func TenantConfig(cfg map[string]any) datatypes.IssueList {
	var issues datatypes.IssueList

	for _, section := range tenantSections {
		raw, present := cfg[section.name]
		if !present {
			if section.required {
				issues.Errorf("tenant_config."+section.name, "Missing section")
			}
			continue
		}
		m, ok := raw.(map[string]any)
		if !ok {
			issues.Errorf("tenant_config."+section.name, "Must be an object")
			continue
		}
		for _, k := range sortedKeys(m) {
			if v, ok := m[k].(string); ok && datatypes.IsUnresolved(v) {
				issues.Warnf("tenant_config."+section.name+"."+k, "Value still %s",
					datatypes.ReplaceMeSentinel)
			}
		}
	}

	return issues
}

// sortedKeys gives the sentinel scan a stable report order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
