// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes defines the artifact model for the catalog translator.
//
// The upstream extraction pipeline hands us four JSON documents: an
// offering, a form (template + fields), a workflow graph, and a tenant
// config. The validators inspect the raw decoded documents so that shape
// defects (a boolean where a list should be, a missing key) become
// reported issues instead of decode failures. This package carries the
// enum types the validators check membership against, the tenant config
// view, and the issue/audit types every stage reports through.
//
// Closed enumerations (FieldType, BlockType, PublishingMode) each carry an
// Unknown fallback variant. Parsing never rejects an unknown value; it
// returns the Unknown variant so validation can report it with context.
package datatypes

import "strings"

// PublishingMode controls who an offering is published to.
type PublishingMode string

const (
	PublishAllUsers PublishingMode = "all_users"
	PublishGroups   PublishingMode = "groups"
	PublishUsers    PublishingMode = "users"

	// PublishUnknown is the fallback for values outside the closed set.
	// It always fails validation.
	PublishUnknown PublishingMode = ""
)

// ParsePublishingMode maps a raw string onto the closed mode set.
// Matching is case-insensitive with surrounding whitespace ignored;
// unknown values map to PublishUnknown rather than erroring.
func ParsePublishingMode(s string) PublishingMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all_users":
		return PublishAllUsers
	case "groups":
		return PublishGroups
	case "users":
		return PublishUsers
	default:
		return PublishUnknown
	}
}
