// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const minimalOffering = `{"catalog_item_name": "Laptop"}`
const minimalForm = `{"template": {"name": "Laptop"}, "fields": []}`
const minimalWorkflow = `{"blocks": [], "links": []}`

func TestReadJSON(t *testing.T) {
	dir := t.TempDir()

	t.Run("object document", func(t *testing.T) {
		path := writeFile(t, dir, "doc.json", `{"a": 1}`)
		doc, err := ReadJSON(path)
		require.NoError(t, err)
		assert.Equal(t, float64(1), doc["a"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadJSON(filepath.Join(dir, "nope.json"))
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeFile(t, dir, "bad.json", `{broken`)
		_, err := ReadJSON(path)
		assert.ErrorIs(t, err, ErrMalformedDocument)
	})

	t.Run("top level array", func(t *testing.T) {
		path := writeFile(t, dir, "arr.json", `[1, 2]`)
		_, err := ReadJSON(path)
		assert.ErrorIs(t, err, ErrTopLevelNotObject)
	})
}

func TestReadDocument_YAML(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml document", func(t *testing.T) {
		path := writeFile(t, dir, "tenant.yaml", "groups:\n  A: GRP-1\n")
		doc, err := ReadDocument(path)
		require.NoError(t, err)
		groups := doc["groups"].(map[string]any)
		assert.Equal(t, "GRP-1", groups["A"])
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yml", "a: [unclosed")
		_, err := ReadDocument(path)
		assert.ErrorIs(t, err, ErrMalformedDocument)
	})

	t.Run("empty yaml", func(t *testing.T) {
		path := writeFile(t, dir, "empty.yaml", "")
		_, err := ReadDocument(path)
		assert.ErrorIs(t, err, ErrTopLevelNotObject)
	})

	t.Run("json path uses json reader", func(t *testing.T) {
		path := writeFile(t, dir, "doc.json", `{"a": true}`)
		doc, err := ReadDocument(path)
		require.NoError(t, err)
		assert.Equal(t, true, doc["a"])
	})
}

func TestLoadBundle(t *testing.T) {
	dir := t.TempDir()
	offering := writeFile(t, dir, "offering.json", minimalOffering)
	form := writeFile(t, dir, "form.json", minimalForm)
	workflow := writeFile(t, dir, "workflow.json", minimalWorkflow)

	bundle, err := LoadBundle(offering, form, workflow, "")
	require.NoError(t, err)

	assert.Equal(t, "Laptop", bundle.Offering["catalog_item_name"])
	assert.NotNil(t, bundle.Form["template"])
	assert.NotNil(t, bundle.Workflow["blocks"])
	assert.Nil(t, bundle.Tenant)
}

func TestLoadBundle_SeparateFieldsDocument(t *testing.T) {
	dir := t.TempDir()
	offering := writeFile(t, dir, "offering.json", minimalOffering)
	form := writeFile(t, dir, "form.json", `{"template": {}, "fields": []}`)
	workflow := writeFile(t, dir, "workflow.json", minimalWorkflow)
	fields := writeFile(t, dir, "fields.json",
		`{"fields": [{"internal_name": "summary", "field_type": "text"}]}`)

	bundle, err := LoadBundle(offering, form, workflow, fields)
	require.NoError(t, err)

	merged := bundle.Form["fields"].([]any)
	require.Len(t, merged, 1)
	assert.Equal(t, "summary", merged[0].(map[string]any)["internal_name"])
}

func TestLoadBundle_Failures(t *testing.T) {
	dir := t.TempDir()
	offering := writeFile(t, dir, "offering.json", minimalOffering)
	workflow := writeFile(t, dir, "workflow.json", minimalWorkflow)

	t.Run("form missing template", func(t *testing.T) {
		form := writeFile(t, dir, "no_template.json", `{"fields": []}`)
		_, err := LoadBundle(offering, form, workflow, "")
		assert.ErrorIs(t, err, ErrMissingRequiredKey)
	})

	t.Run("form fields not a list", func(t *testing.T) {
		form := writeFile(t, dir, "bad_fields.json", `{"template": {}, "fields": {}}`)
		_, err := LoadBundle(offering, form, workflow, "")
		assert.ErrorIs(t, err, ErrMalformedDocument)
	})

	t.Run("workflow missing links", func(t *testing.T) {
		form := writeFile(t, dir, "form.json", minimalForm)
		wf := writeFile(t, dir, "no_links.json", `{"blocks": []}`)
		_, err := LoadBundle(offering, form, wf, "")
		assert.ErrorIs(t, err, ErrMissingRequiredKey)
	})

	t.Run("missing artifact fails fast", func(t *testing.T) {
		form := writeFile(t, dir, "form.json", minimalForm)
		_, err := LoadBundle(filepath.Join(dir, "absent.json"), form, workflow, "")
		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}

func TestLoadTenantConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("json config", func(t *testing.T) {
		path := writeFile(t, dir, "tenant.json",
			`{"groups": {}, "email_templates": {}}`)
		cfg, err := LoadTenantConfig(path)
		require.NoError(t, err)
		assert.Contains(t, cfg, "groups")
	})

	t.Run("yaml config", func(t *testing.T) {
		path := writeFile(t, dir, "tenant.yaml",
			"groups:\n  A: GRP-1\nemail_templates:\n  on_submission: TMPL-1\n")
		cfg, err := LoadTenantConfig(path)
		require.NoError(t, err)
		assert.Contains(t, cfg, "email_templates")
	})

	t.Run("missing required section", func(t *testing.T) {
		path := writeFile(t, dir, "partial.json", `{"groups": {}}`)
		_, err := LoadTenantConfig(path)
		assert.ErrorIs(t, err, ErrMissingRequiredKey)
	})
}
