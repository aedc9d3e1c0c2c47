// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/AleutianAI/CatalogForge/pkg/ux"
	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
	"github.com/AleutianAI/CatalogForge/services/translator/loaders"
	"github.com/AleutianAI/CatalogForge/services/translator/resolve"
	"github.com/AleutianAI/CatalogForge/services/translator/transform"
	"github.com/AleutianAI/CatalogForge/services/translator/validate"
	"github.com/spf13/cobra"
)

var (
	translateOut        string
	translateForce      bool
	translateExportedBy string
)

func init() {
	translateCmd.Flags().StringVarP(&translateOut, "out", "o", "dist",
		"Directory to write the import packages into")
	translateCmd.Flags().BoolVar(&translateForce, "force", false,
		"Write packages even when validation reports errors")
	translateCmd.Flags().StringVar(&translateExportedBy, "exported-by", "",
		"Override the exported_by metadata value")
}

func runTranslate(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	bundle := loadBundle(true)

	issues := validate.Bundle(ctx, bundle)
	errCount := issues.Count(datatypes.SeverityError)
	warnCount := issues.Count(datatypes.SeverityWarn)
	for _, issue := range issues {
		fmt.Println(ux.IssueLine(string(issue.Severity), issue.Where, issue.Message))
	}

	if issues.HasErrors() && !translateForce {
		fmt.Println(ux.ValidationSummary(errCount, warnCount))
		ux.Error("bundle is not deployable; rerun with --force to write packages anyway")
		logger.Error("translate blocked by validation",
			"errors", errCount, "warnings", warnCount)
		os.Exit(ExitIssues)
	}

	mapping := resolve.BuildMapping(bundle.TenantConfig())
	form, formAudit, err := resolve.Resolve(bundle.Form, mapping)
	if err != nil {
		exitLoadError(err)
	}
	workflow, wfAudit, err := resolve.Resolve(bundle.Workflow, mapping)
	if err != nil {
		exitLoadError(err)
	}
	audit := append(formAudit, wfAudit...)

	unmapped := 0
	for _, entry := range audit {
		if entry.Warning != "" {
			unmapped++
			ux.Warning(fmt.Sprintf("unmapped placeholder %s at %s", entry.Old, entry.Path))
		}
	}

	opts := transform.Options{ExportedBy: translateExportedBy}
	pkgs := transform.Bundle(
		form.(map[string]any), workflow.(map[string]any), opts)

	written, err := loaders.WritePackages(translateOut, pkgs)
	if err != nil {
		exitLoadError(err)
	}
	for _, path := range written {
		ux.FileWritten(path)
	}

	logger.Info("translated bundle",
		"errors", errCount,
		"warnings", warnCount,
		"substitutions", len(audit)-unmapped,
		"unmapped", unmapped,
		"packages", len(written),
	)

	if errCount > 0 {
		// Forced past validation errors; surface that in the exit code.
		os.Exit(ExitIssues)
	}
}
