// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package loaders reads and writes the catalog artifacts.
//
// Load failures are the one fatal error class in the pipeline: a
// malformed document, a missing required top-level key, or a wrong
// top-level shape aborts the run before validation begins. They are
// surfaced as distinct sentinel errors, never as accumulated validation
// issues, so a caller can tell "the file is broken" apart from "the
// definition has defects".
package loaders

import "errors"

// Sentinel errors for artifact loading. Wrap with %w and match with
// errors.Is.
var (
	// ErrFileNotFound is returned when an artifact path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrMalformedDocument is returned when an artifact is not valid
	// JSON (or YAML, for tenant configs).
	ErrMalformedDocument = errors.New("malformed document")

	// ErrTopLevelNotObject is returned when an artifact's top level is
	// not an object. Arrays or scalars at the top level are never valid
	// catalog artifacts.
	ErrTopLevelNotObject = errors.New("top-level value must be an object")

	// ErrMissingRequiredKey is returned when an artifact lacks a key
	// its contract requires (form needs template+fields, workflow needs
	// blocks+links, tenant config needs groups+email_templates).
	ErrMissingRequiredKey = errors.New("missing required top-level key")
)
