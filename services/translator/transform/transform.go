// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package transform lowers a validated, placeholder-resolved bundle into
// the target deployment package shapes.
//
// The transformer is a pure assembly step: it deep-copies its inputs,
// strips internal-only annotations from the form fields, unwraps an
// export-wrapped workflow if one was supplied, and emits the three
// package shapes. It performs no validation and never consults issue
// severities; gating deployment on "no errors present" is the caller's
// job. Writing the packages to storage is the writer's.
package transform

import (
	"time"

	"github.com/google/uuid"
)

// PackageVersion is the version tag stamped on combined packages.
const PackageVersion = "1.0"

// Default generation metadata. ExportedBy identifies the producing
// component; Source records that the definition came out of the
// automated extraction pipeline rather than a human-authored export.
const (
	DefaultExportedBy = "catalogforge-translator"
	DefaultSource     = "AI-Automated Generation"
)

// Options tunes the generation metadata on the combined package.
type Options struct {
	// ExportedBy overrides the exporter identity. Default:
	// DefaultExportedBy.
	ExportedBy string

	// Source overrides the provenance string. Default: DefaultSource.
	Source string

	// Now supplies the export timestamp fallback when the form carries
	// no generated_at. Defaults to time.Now; tests pin it.
	Now func() time.Time
}

// Packages carries the three output shapes of one transformation.
type Packages struct {
	// Combined is the single-file package: version tag, catalog item,
	// form fields, workflow, and generation metadata.
	Combined map[string]any

	// OfferingForm is the catalog item plus form fields only.
	OfferingForm map[string]any

	// WorkflowOnly is the unwrapped workflow definition alone.
	WorkflowOnly map[string]any
}

// Bundle assembles a form document and a workflow document into the
// target package shapes.
//
// The workflow may arrive bare or already nested inside the target
// system's own export wrapper
// ({WorkflowVersionInformation:{WorkflowDefinition:{...}}}); both shapes
// are accepted and the inner definition wins when present. Upstream
// documents round-tripped through the target system are not guaranteed
// to be pre-unwrapped, so this tolerance is deliberate.
//
// Inputs are never mutated; all emitted trees are deep copies.
func Bundle(form, workflow map[string]any, opts Options) Packages {
	if opts.ExportedBy == "" {
		opts.ExportedBy = DefaultExportedBy
	}
	if opts.Source == "" {
		opts.Source = DefaultSource
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	wfDef := copyMap(extractWorkflowDef(workflow))
	template := copyMap(asMap(form["template"]))
	fields := copySlice(asSlice(form["fields"]))
	cleanupFields(fields)

	exportedAt, _ := form["generated_at"].(string)
	if exportedAt == "" {
		exportedAt = opts.Now().UTC().Format(time.RFC3339)
	}

	combined := map[string]any{
		"IvantiPackageVersion": PackageVersion,
		"CatalogItem":          template,
		"FormFields":           fields,
		"Workflow":             wfDef,
		"Metadata": map[string]any{
			"exported_by": opts.ExportedBy,
			"exported_at": exportedAt,
			"source":      opts.Source,
			"run_id":      uuid.NewString(),
		},
	}

	offeringForm := map[string]any{
		"CatalogItem": copyMap(template),
		"FormFields":  copySlice(fields),
	}

	return Packages{
		Combined:     combined,
		OfferingForm: offeringForm,
		WorkflowOnly: copyMap(wfDef),
	}
}

// extractWorkflowDef accepts either a raw workflow or the export
// wrapper, returning the definition subtree.
func extractWorkflowDef(workflow map[string]any) map[string]any {
	if wrapper, ok := workflow["WorkflowVersionInformation"].(map[string]any); ok {
		if def, ok := wrapper["WorkflowDefinition"].(map[string]any); ok && len(def) > 0 {
			return def
		}
	}
	return workflow
}

// cleanupFields strips internal-only annotations before emission:
// extraction notes, source document references, and validation
// constraints that decoded to nothing.
func cleanupFields(fields []any) {
	for _, raw := range fields {
		field, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		delete(field, "notes")
		delete(field, "source_docs")
		if vc, present := field["validation_constraints"]; present && vc == nil {
			delete(field, "validation_constraints")
		}
	}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// copyMap deep-copies a JSON-like object tree. nil input yields an
// empty map so the emitted packages always carry the key.
func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copySlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyMap(val)
	case []any:
		return copySlice(val)
	default:
		return v
	}
}
