// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnresolved(t *testing.T) {
	tests := []struct {
		value  string
		expect bool
	}{
		{"REPLACE_ME", true},
		{"replace_me", true},
		{"  Replace_Me  ", true},
		{"GRP-42", false},
		{"", false},
		{"REPLACE_ME_LATER", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expect, IsUnresolved(tt.value))
		})
	}
}

func TestDecodeTenantConfig(t *testing.T) {
	raw := map[string]any{
		"groups": map[string]any{
			"NETWORK_TEAM_GROUP_RECID": "GRP-42",
			"not_a_string":             7,
		},
		"email_templates": map[string]any{
			"on_submission": "TMPL-1",
		},
		"statuses": "not an object",
	}

	cfg := DecodeTenantConfig(raw)

	assert.Equal(t, "GRP-42", cfg.Groups["NETWORK_TEAM_GROUP_RECID"])
	assert.NotContains(t, cfg.Groups, "not_a_string")
	assert.Equal(t, "TMPL-1", cfg.EmailTemplates["on_submission"])
	assert.Empty(t, cfg.Statuses)
	assert.Empty(t, cfg.Catalog)
}

func TestTenantConfig_Section(t *testing.T) {
	cfg := TenantConfig{
		Groups:   map[string]string{"A": "1"},
		Statuses: map[string]string{"submitted": "Submitted"},
	}

	assert.Equal(t, cfg.Groups, cfg.Section("groups"))
	assert.Equal(t, cfg.Statuses, cfg.Section("statuses"))
	assert.Nil(t, cfg.Section("nonexistent"))
}

func TestParsePublishingMode(t *testing.T) {
	assert.Equal(t, PublishAllUsers, ParsePublishingMode("all_users"))
	assert.Equal(t, PublishGroups, ParsePublishingMode("groups"))
	assert.Equal(t, PublishUsers, ParsePublishingMode("users"))
	assert.Equal(t, PublishUnknown, ParsePublishingMode("everyone"))
	// Mode matching is forgiving about case and padding.
	assert.Equal(t, PublishAllUsers, ParsePublishingMode(" ALL_USERS "))
}

func TestParseBlockType(t *testing.T) {
	assert.Equal(t, BlockStart, ParseBlockType("start"))
	assert.Equal(t, BlockVote, ParseBlockType("vote0007"))
	assert.Equal(t, BlockTypeUnknown, ParseBlockType("loop"))
	// Block type identifiers are case-sensitive.
	assert.Equal(t, BlockTypeUnknown, ParseBlockType("Start"))
	assert.Equal(t, BlockTypeUnknown, ParseBlockType(" start "))
}

func TestParseFieldType(t *testing.T) {
	assert.Equal(t, FieldCombo, ParseFieldType("combo"))
	assert.Equal(t, FieldTypeUnknown, ParseFieldType("radio"))
	// Field type identifiers are case-sensitive.
	assert.Equal(t, FieldTypeUnknown, ParseFieldType("COMBO"))
}
