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

// Bundle is one run's worth of input artifacts, as raw decoded JSON
// documents. The validators work on the raw form so shape defects are
// reported as issues rather than failing at decode time.
//
// A bundle is loaded once per run, validated, resolved, and handed to
// the transformer. It has no identity beyond the run; the resolver and
// transformer return fresh trees rather than mutating it.
type Bundle struct {
	// Offering is the flat catalog-item metadata document.
	Offering map[string]any

	// Form carries {template: <offering-shaped>, fields: [...]}.
	Form map[string]any

	// Workflow carries {blocks, links, notifications, status_transitions, ...}.
	Workflow map[string]any

	// Tenant is the raw tenant config document.
	Tenant map[string]any
}

// TenantConfig decodes the typed view of the bundle's tenant document.
func (b *Bundle) TenantConfig() TenantConfig {
	return DecodeTenantConfig(b.Tenant)
}
