// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package resolve substitutes tenant-specific values for bracket
// placeholder tokens in the catalog artifacts.
//
// Generic catalog definitions carry tokens like
// <GROUP_REC_ID_IT_KNOWLEDGE> standing in for per-deployment
// identifiers. BuildMapping derives the token table from a tenant
// config; Resolve rebuilds a JSON value tree with the tokens
// substituted, emitting one audit entry per token encountered so the
// substitution is fully reviewable. Tokens outside the bound set are
// left in place and flagged, never treated as fatal: a human reviews
// the audit trail before the package ships.
package resolve

import (
	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
	"github.com/AleutianAI/CatalogForge/services/translator/rules"
)

// Mapping is the derived token table: bracket-token key (without the
// angle brackets) to resolved string.
type Mapping map[string]string

// BuildMapping derives the placeholder mapping from a tenant config.
//
// The token set is fixed by the rule tables; the same TenantConfig
// always produces the identical Mapping. Every bound token is present
// in the result: an absent tenant value maps to the empty string, so
// Resolve still substitutes and the gap surfaces in the audit trail
// (and through the tenant validator's unresolved-value warning), not
// as a missing mapping.
func BuildMapping(cfg datatypes.TenantConfig) Mapping {
	bindings := rules.MustLoad().Placeholders.Tokens
	m := make(Mapping, len(bindings))
	for _, b := range bindings {
		m[b.Token] = cfg.Section(b.Section)[b.Key]
	}
	return m
}
