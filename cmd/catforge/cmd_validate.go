// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/AleutianAI/CatalogForge/pkg/ux"
	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
	"github.com/AleutianAI/CatalogForge/services/translator/validate"
	"github.com/spf13/cobra"
)

var (
	validateJSON      bool
	validateQuiet     bool
	validateThreshold string
)

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"Output the issue list as JSON")
	validateCmd.Flags().BoolVar(&validateQuiet, "quiet", false,
		"Only exit code, no output")
	validateCmd.Flags().StringVar(&validateThreshold, "threshold", "error",
		"Minimum severity for non-zero exit: error, warn")
}

// validationReport is the JSON shape of a validation run.
type validationReport struct {
	Issues     []datatypes.ValidationIssue `json:"issues"`
	Errors     int                         `json:"errors"`
	Warnings   int                         `json:"warnings"`
	Deployable bool                        `json:"deployable"`
	DurationMs int64                       `json:"duration_ms"`
}

func runValidate(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	start := time.Now()
	bundle := loadBundle(true)
	issues := validate.Bundle(ctx, bundle)

	report := validationReport{
		Issues:     issues,
		Errors:     issues.Count(datatypes.SeverityError),
		Warnings:   issues.Count(datatypes.SeverityWarn),
		Deployable: !issues.HasErrors(),
		DurationMs: time.Since(start).Milliseconds(),
	}

	logger.Info("bundle validated",
		"errors", report.Errors,
		"warnings", report.Warnings,
		"deployable", report.Deployable,
	)

	if !validateQuiet {
		outputValidationReport(report)
	}

	os.Exit(validationExitCode(report))
}

func validationExitCode(report validationReport) int {
	threshold := datatypes.ParseSeverity(validateThreshold)
	if threshold == datatypes.SeverityWarn && len(report.Issues) > 0 {
		return ExitIssues
	}
	if report.Errors > 0 {
		return ExitIssues
	}
	return ExitSuccess
}

func outputValidationReport(report validationReport) {
	if validateJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			exitLoadError(err)
		}
		fmt.Println(string(data))
		return
	}

	for _, issue := range report.Issues {
		fmt.Println(ux.IssueLine(string(issue.Severity), issue.Where, issue.Message))
	}
	fmt.Println(ux.ValidationSummary(report.Errors, report.Warnings))
	if report.Deployable {
		ux.Success("bundle is deployable")
	} else {
		ux.Error("bundle is not deployable")
	}
}
