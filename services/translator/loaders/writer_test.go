// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package loaders

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/AleutianAI/CatalogForge/services/translator/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePackages() transform.Packages {
	return transform.Packages{
		Combined: map[string]any{
			"IvantiPackageVersion": "1.0",
			"CatalogItem":          map[string]any{"name": "Laptop"},
		},
		OfferingForm: map[string]any{"CatalogItem": map[string]any{"name": "Laptop"}},
		WorkflowOnly: map[string]any{"blocks": []any{}},
	}
}

func TestWritePackages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")

	written, err := WritePackages(dir, samplePackages())
	require.NoError(t, err)

	require.Len(t, written, 3)
	assert.Equal(t, filepath.Join(dir, CombinedPackageFile), written[0])
	assert.Equal(t, filepath.Join(dir, OfferingFormPackageFile), written[1])
	assert.Equal(t, filepath.Join(dir, WorkflowPackageFile), written[2])

	data, err := os.ReadFile(written[0])
	require.NoError(t, err)

	var combined map[string]any
	require.NoError(t, json.Unmarshal(data, &combined))
	assert.Equal(t, "1.0", combined["IvantiPackageVersion"])
	// Indented output ends with a trailing newline.
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestWritePackages_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	_, err := WritePackages(dir, samplePackages())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWritePackages_Idempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := WritePackages(dir, samplePackages())
	require.NoError(t, err)
	second, err := WritePackages(dir, samplePackages())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
