// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/AleutianAI/CatalogForge/pkg/logging"
	"github.com/AleutianAI/CatalogForge/pkg/ux"
	"github.com/spf13/cobra"
)

// Exit codes shared by all commands.
const (
	ExitSuccess   = 0
	ExitIssues    = 1
	ExitLoadError = 2
)

// --- Global Command Variables ---
var (
	logLevel string
	logDir   string
	plain    bool

	// Bundle input paths, shared by validate/placeholders/resolve/translate.
	offeringPath string
	formPath     string
	workflowPath string
	fieldsPath   string
	tenantPath   string

	logger = logging.Default()

	rootCmd = &cobra.Command{
		Use:   "catforge",
		Short: "A cli to validate and translate service catalog bundles",
		Long: `CatalogForge validates exported service catalog bundles,
resolves tenant placeholders, and lowers bundles into deployable
import packages.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(logging.Config{
				Level:   logging.ParseLevel(logLevel),
				LogDir:  logDir,
				Service: "cli",
			})
			if plain {
				ux.SetPlain(true)
			}
		},
	}

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate a catalog bundle against the publishing rules",
		Long: `Validate an offering, form, workflow, and tenant config against
the catalog publishing rules.

Exit Codes:
  0 = No issues at/above threshold
  1 = Issues found at/above threshold
  2 = Error (missing file, malformed document)`,
		Run: runValidate, // Defined in cmd_validate.go
	}

	placeholdersCmd = &cobra.Command{
		Use:   "placeholders",
		Short: "Inspect tenant placeholders in a bundle",
	}
	placeholdersFindCmd = &cobra.Command{
		Use:   "find",
		Short: "List placeholder tokens found in the form and workflow",
		Run:   runPlaceholdersFind, // Defined in cmd_placeholders.go
	}
	resolveCmd = &cobra.Command{
		Use:   "resolve",
		Short: "Resolve tenant placeholders and print the substitution audit",
		Run:   runResolve, // Defined in cmd_placeholders.go
	}

	translateCmd = &cobra.Command{
		Use:   "translate",
		Short: "Validate, resolve, and write deployable import packages",
		Run:   runTranslate, // Defined in cmd_translate.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "",
		"Write JSON logs to this directory in addition to stderr")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false,
		"Disable styled output (also triggered by NO_COLOR or a non-TTY stdout)")

	for _, cmd := range []*cobra.Command{validateCmd, placeholdersFindCmd, resolveCmd, translateCmd} {
		cmd.Flags().StringVar(&offeringPath, "offering", "offering.json",
			"Path to the offering document")
		cmd.Flags().StringVar(&formPath, "form", "form.json",
			"Path to the form document")
		cmd.Flags().StringVar(&workflowPath, "workflow", "workflow.json",
			"Path to the workflow document")
		cmd.Flags().StringVar(&fieldsPath, "fields", "",
			"Optional separate fields document merged into the form")
	}
	for _, cmd := range []*cobra.Command{resolveCmd, translateCmd} {
		cmd.Flags().StringVar(&tenantPath, "tenant", "tenant_config.json",
			"Path to the tenant config document")
	}
	validateCmd.Flags().StringVar(&tenantPath, "tenant", "tenant_config.json",
		"Path to the tenant config document")

	rootCmd.AddCommand(validateCmd)

	rootCmd.AddCommand(placeholdersCmd)
	placeholdersCmd.AddCommand(placeholdersFindCmd)
	rootCmd.AddCommand(resolveCmd)

	rootCmd.AddCommand(translateCmd)
}
