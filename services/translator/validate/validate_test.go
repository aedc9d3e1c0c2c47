// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package validate

import (
	"context"
	"testing"

	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBundle() *datatypes.Bundle {
	return &datatypes.Bundle{
		Offering: validOffering(),
		Form: map[string]any{
			"template": "service_request",
			"fields": []any{
				field("summary", "text", 1),
				field("details", "textarea", 2),
			},
		},
		Workflow: linearWorkflow(),
		Tenant:   validTenantConfig(),
	}
}

func TestBundle_Clean(t *testing.T) {
	issues := Bundle(context.Background(), validBundle())
	assert.Empty(t, issues)
	assert.False(t, issues.HasErrors())
}

func TestBundle_ReportOrder(t *testing.T) {
	// Defects in every document must come back grouped in the fixed
	// order offering, form, workflow, tenant regardless of which
	// validator finished first.
	b := validBundle()
	delete(b.Offering, "category")
	b.Form["fields"].([]any)[0].(map[string]any)["field_type"] = "radio"
	b.Workflow["blocks"] = b.Workflow["blocks"].([]any)[:2] // drop the stop block
	b.Tenant["groups"].(map[string]any)["NETWORK_TEAM_GROUP_RECID"] = "REPLACE_ME"

	for i := 0; i < 20; i++ {
		issues := Bundle(context.Background(), b)
		require.NotEmpty(t, issues)

		lastGroup := 0
		for _, issue := range issues {
			group := issueGroup(issue.Where)
			require.GreaterOrEqual(t, group, lastGroup,
				"issue %v out of order in %v", issue, issues)
			lastGroup = group
		}
		assert.Equal(t, 0, issueGroup(issues[0].Where))
		assert.Equal(t, 3, issueGroup(issues[len(issues)-1].Where))
	}
}

func issueGroup(where string) int {
	switch {
	case len(where) >= 8 && where[:8] == "offering":
		return 0
	case len(where) >= 4 && where[:4] == "form":
		return 1
	case len(where) >= 8 && where[:8] == "workflow":
		return 2
	default:
		return 3
	}
}

func TestBundle_CollectsAcrossDocuments(t *testing.T) {
	b := validBundle()
	delete(b.Offering, "publishing_scope")
	b.Tenant["email_templates"] = "broken"

	issues := Bundle(context.Background(), b)

	assert.True(t, hasIssue(issues, "offering", "Missing key: publishing_scope"))
	assert.True(t, hasIssue(issues, "tenant_config.email_templates", "Must be an object"))
	assert.Equal(t, 3, issues.Count(datatypes.SeverityError))
}
