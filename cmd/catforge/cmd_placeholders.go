// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AleutianAI/CatalogForge/pkg/ux"
	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
	"github.com/AleutianAI/CatalogForge/services/translator/resolve"
	"github.com/spf13/cobra"
)

var (
	placeholdersJSON bool
	resolveJSON      bool
)

func init() {
	placeholdersFindCmd.Flags().BoolVar(&placeholdersJSON, "json", false,
		"Output the placeholder list as JSON")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false,
		"Output the substitution audit as JSON")
}

func runPlaceholdersFind(cmd *cobra.Command, args []string) {
	bundle := loadBundle(false)

	var hits []datatypes.Placeholder
	for _, doc := range []map[string]any{bundle.Form, bundle.Workflow} {
		found, err := resolve.FindPlaceholders(doc)
		if err != nil {
			exitLoadError(err)
		}
		hits = append(hits, found...)
	}

	if placeholdersJSON {
		data, err := json.MarshalIndent(hits, "", "  ")
		if err != nil {
			exitLoadError(err)
		}
		fmt.Println(string(data))
		return
	}

	for _, hit := range hits {
		fmt.Println(ux.UnmappedLine(hit.Path, hit.Value))
	}
	ux.Muted(fmt.Sprintf("%d placeholder(s) found", len(hits)))
}

// resolveReport is the JSON shape of a resolution run.
type resolveReport struct {
	Audit         []datatypes.AuditEntry `json:"audit"`
	Substitutions int                    `json:"substitutions"`
	Unmapped      int                    `json:"unmapped"`
}

func runResolve(cmd *cobra.Command, args []string) {
	bundle := loadBundle(true)
	mapping := resolve.BuildMapping(bundle.TenantConfig())

	var audit []datatypes.AuditEntry
	for _, doc := range []map[string]any{bundle.Form, bundle.Workflow} {
		_, entries, err := resolve.Resolve(doc, mapping)
		if err != nil {
			exitLoadError(err)
		}
		audit = append(audit, entries...)
	}

	report := resolveReport{Audit: audit}
	for _, entry := range audit {
		if entry.Warning != "" {
			report.Unmapped++
		} else {
			report.Substitutions++
		}
	}

	logger.Info("placeholders resolved",
		"substitutions", report.Substitutions,
		"unmapped", report.Unmapped,
	)

	if resolveJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			exitLoadError(err)
		}
		fmt.Println(string(data))
	} else {
		for _, entry := range audit {
			if entry.Warning != "" {
				fmt.Println(ux.UnmappedLine(entry.Path, entry.Old))
				continue
			}
			fmt.Println(ux.SubstitutionLine(entry.Path, entry.Old, entry.New))
		}
		ux.Muted(fmt.Sprintf("%d substituted, %d unmapped",
			report.Substitutions, report.Unmapped))
	}

	if report.Unmapped > 0 {
		os.Exit(ExitIssues)
	}
}
