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

	"github.com/AleutianAI/CatalogForge/services/translator/transform"
)

// Output file names for the three package shapes.
const (
	CombinedPackageFile     = "combined_package.json"
	OfferingFormPackageFile = "offering_form_package.json"
	WorkflowPackageFile     = "workflow_package.json"
)

// WritePackages writes the three package shapes into dir, creating it if
// needed, and returns the written paths in a stable order.
func WritePackages(dir string, pkgs transform.Packages) ([]string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	outputs := []struct {
		name string
		doc  map[string]any
	}{
		{CombinedPackageFile, pkgs.Combined},
		{OfferingFormPackageFile, pkgs.OfferingForm},
		{WorkflowPackageFile, pkgs.WorkflowOnly},
	}

	written := make([]string, 0, len(outputs))
	for _, out := range outputs {
		path := filepath.Join(dir, out.name)
		data, err := json.MarshalIndent(out.doc, "", "  ")
		if err != nil {
			return written, fmt.Errorf("failed to marshal %s: %w", out.name, err)
		}
		if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
