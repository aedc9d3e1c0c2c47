// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

// FieldType is the closed set of form control types the target system
// understands.
type FieldType string

const (
	FieldText       FieldType = "text"
	FieldTextarea   FieldType = "textarea"
	FieldCombo      FieldType = "combo"
	FieldCheckbox   FieldType = "checkbox"
	FieldDatetime   FieldType = "datetime"
	FieldFileUpload FieldType = "fileupload"
	FieldLabel      FieldType = "label"
	FieldList       FieldType = "list"
	FieldSwfUpload  FieldType = "swfupload"

	// FieldTypeUnknown is the fallback variant for values outside the
	// closed set. It always fails validation, so new unsupported types
	// are caught rather than silently accepted.
	FieldTypeUnknown FieldType = ""
)

var fieldTypes = map[string]FieldType{
	"text":       FieldText,
	"textarea":   FieldTextarea,
	"combo":      FieldCombo,
	"checkbox":   FieldCheckbox,
	"datetime":   FieldDatetime,
	"fileupload": FieldFileUpload,
	"label":      FieldLabel,
	"list":       FieldList,
	"swfupload":  FieldSwfUpload,
}

// ParseFieldType maps a raw string onto the closed field type set.
// Matching is exact: the target system's type identifiers are
// case-sensitive, so "COMBO" is not a combo field. Unknown values map
// to FieldTypeUnknown rather than erroring.
func ParseFieldType(s string) FieldType {
	if t, ok := fieldTypes[s]; ok {
		return t
	}
	return FieldTypeUnknown
}
