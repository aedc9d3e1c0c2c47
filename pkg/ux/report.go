// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"fmt"
	"strings"
)

// IssueLine formats one validation issue for terminal display. Severity
// is "error" or "warn"; anything else renders unstyled.
func IssueLine(severity, where, message string) string {
	if Plain() {
		return fmt.Sprintf("%s\t%s\t%s", strings.ToUpper(severity), where, message)
	}
	var icon, text string
	switch severity {
	case "error":
		icon = IconError.Render()
		text = Styles.Error.Render(message)
	case "warn":
		icon = IconWarning.Render()
		text = Styles.Warning.Render(message)
	default:
		icon = string(IconBullet)
		text = message
	}
	return fmt.Sprintf("%s %s %s", icon, Styles.Muted.Render(where), text)
}

// ValidationSummary formats the closing line of a validation report.
func ValidationSummary(errors, warnings int) string {
	if Plain() {
		return fmt.Sprintf("SUMMARY: errors=%d warnings=%d", errors, warnings)
	}
	return fmt.Sprintf("%s %s  %s %s",
		Styles.Error.Render(fmt.Sprintf("%d", errors)), Styles.Muted.Render("errors"),
		Styles.Warning.Render(fmt.Sprintf("%d", warnings)), Styles.Muted.Render("warnings"),
	)
}

// SubstitutionLine formats one placeholder substitution from the
// resolution audit.
func SubstitutionLine(path, oldValue, newValue string) string {
	if Plain() {
		return fmt.Sprintf("%s\t%s\t%s", path, oldValue, newValue)
	}
	return fmt.Sprintf("%s %s %s %s",
		Styles.Muted.Render(path),
		oldValue,
		IconArrow.Render(),
		Styles.Highlight.Render(newValue),
	)
}

// UnmappedLine formats one placeholder that had no tenant mapping.
func UnmappedLine(path, value string) string {
	if Plain() {
		return fmt.Sprintf("UNMAPPED\t%s\t%s", path, value)
	}
	return fmt.Sprintf("%s %s %s",
		IconWarning.Render(),
		Styles.Muted.Render(path),
		Styles.Warning.Render(value),
	)
}

// FileWritten prints a written output file path.
func FileWritten(path string) {
	if Plain() {
		fmt.Printf("WROTE: %s\n", path)
		return
	}
	fmt.Printf("%s %s\n", IconSuccess.Render(), path)
}
