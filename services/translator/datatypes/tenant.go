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

import "strings"

// ReplaceMeSentinel marks a tenant config value that onboarding has not
// filled in yet. Matching is case-insensitive after trimming.
const ReplaceMeSentinel = "REPLACE_ME"

// IsUnresolved reports whether a tenant config value is still the
// onboarding sentinel.
func IsUnresolved(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), ReplaceMeSentinel)
}

// TenantConfig is the per-deployment mapping from logical names (group
// roles, email templates, status labels, catalog defaults) to real
// system identifiers. It is the source the placeholder mapping is
// derived from.
type TenantConfig struct {
	Groups         map[string]string `json:"groups" yaml:"groups"`
	EmailTemplates map[string]string `json:"email_templates" yaml:"email_templates"`
	Statuses       map[string]string `json:"statuses" yaml:"statuses"`
	Catalog        map[string]string `json:"catalog" yaml:"catalog"`
}

// Section returns the named tenant section map, or nil for an unknown
// section name. Section names match the JSON keys.
func (c TenantConfig) Section(name string) map[string]string {
	switch name {
	case "groups":
		return c.Groups
	case "email_templates":
		return c.EmailTemplates
	case "statuses":
		return c.Statuses
	case "catalog":
		return c.Catalog
	default:
		return nil
	}
}

// DecodeTenantConfig builds a typed TenantConfig from a raw decoded
// document. Sections that are absent or not string maps come back empty;
// the tenant config validator reports those shapes separately.
func DecodeTenantConfig(raw map[string]any) TenantConfig {
	return TenantConfig{
		Groups:         stringMap(raw["groups"]),
		EmailTemplates: stringMap(raw["email_templates"]),
		Statuses:       stringMap(raw["statuses"]),
		Catalog:        stringMap(raw["catalog"]),
	}
}

func stringMap(v any) map[string]string {
	m, ok := v.(map[string]any)
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(m))
	for k, val := range m {
		if s, ok := val.(string); ok {
			out[k] = s
		}
	}
	return out
}
