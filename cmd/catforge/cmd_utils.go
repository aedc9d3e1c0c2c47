// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"

	"github.com/AleutianAI/CatalogForge/pkg/ux"
	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
	"github.com/AleutianAI/CatalogForge/services/translator/loaders"
)

// loadBundle reads the bundle documents named by the shared path flags.
// A load failure prints the error and exits with ExitLoadError; the
// fail-fast contract is per-file, unlike validation which accumulates.
func loadBundle(withTenant bool) *datatypes.Bundle {
	bundle, err := loaders.LoadBundle(offeringPath, formPath, workflowPath, fieldsPath)
	if err != nil {
		exitLoadError(err)
	}
	if withTenant {
		tenant, err := loaders.LoadTenantConfig(tenantPath)
		if err != nil {
			exitLoadError(err)
		}
		bundle.Tenant = tenant
	}
	return bundle
}

func exitLoadError(err error) {
	ux.Error(fmt.Sprintf("loading bundle: %v", err))
	logger.Error("bundle load failed", "error", err)
	os.Exit(ExitLoadError)
}
