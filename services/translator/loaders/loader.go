// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package loaders

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
)

// ReadJSON reads one artifact and decodes it to a raw document,
// rejecting non-object top-level JSON.
func ReadJSON(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON in %s: %v", ErrMalformedDocument, path, err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTopLevelNotObject, path)
	}
	return obj, nil
}

// ReadDocument reads an artifact as JSON, or as YAML when the path ends
// in .yaml/.yml. Tenant configs are hand-edited during onboarding, so
// the friendlier format is accepted there.
func ReadDocument(path string) (map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return ReadJSON(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid YAML in %s: %v", ErrMalformedDocument, path, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s", ErrTopLevelNotObject, path)
	}
	return doc, nil
}

// LoadBundle reads the offering, form and workflow artifacts into a run
// bundle, performing the fail-fast top-level shape checks.
//
// fieldsPath is optional ("" to skip): some pipelines split the field
// list into its own document, in which case its fields list merges into
// the form.
func LoadBundle(offeringPath, formPath, workflowPath, fieldsPath string) (*datatypes.Bundle, error) {
	offering, err := ReadJSON(offeringPath)
	if err != nil {
		return nil, err
	}
	form, err := ReadJSON(formPath)
	if err != nil {
		return nil, err
	}
	workflow, err := ReadJSON(workflowPath)
	if err != nil {
		return nil, err
	}

	if fieldsPath != "" {
		fieldsDoc, err := ReadJSON(fieldsPath)
		if err != nil {
			return nil, err
		}
		if fields, ok := fieldsDoc["fields"].([]any); ok {
			form["fields"] = fields
		}
	}

	for _, k := range []string{"template", "fields"} {
		if _, ok := form[k]; !ok {
			return nil, fmt.Errorf("%w: form must contain '%s'", ErrMissingRequiredKey, k)
		}
	}
	if _, ok := form["fields"].([]any); !ok {
		return nil, fmt.Errorf("%w: form.fields must be a list", ErrMalformedDocument)
	}
	for _, k := range []string{"blocks", "links"} {
		if _, ok := workflow[k]; !ok {
			return nil, fmt.Errorf("%w: workflow must contain '%s'", ErrMissingRequiredKey, k)
		}
	}

	return &datatypes.Bundle{
		Offering: offering,
		Form:     form,
		Workflow: workflow,
	}, nil
}

// LoadTenantConfig reads the tenant config (JSON or YAML) and checks its
// required sections are present. Section shapes and the REPLACE_ME
// sentinel are the tenant config validator's concern, not the loader's.
func LoadTenantConfig(path string) (map[string]any, error) {
	cfg, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	for _, k := range []string{"groups", "email_templates"} {
		if _, ok := cfg[k]; !ok {
			return nil, fmt.Errorf("%w: tenant config must contain '%s'", ErrMissingRequiredKey, k)
		}
	}
	return cfg, nil
}
