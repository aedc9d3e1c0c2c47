// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package validate

import (
	"fmt"
	"sort"

	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
)

// Form checks the form document: {template: ..., fields: [...]}.
// When fields is not a list nothing else is checkable; that single
// error is the whole report for the document.
func Form(form map[string]any) datatypes.IssueList {
	fields, ok := form["fields"].([]any)
	if !ok {
		var issues datatypes.IssueList
		issues.Errorf("form.fields", "fields must be a list")
		return issues
	}
	return Fields(fields)
}

// Fields checks a raw field list.
//
// Per-field checks: internal_name present/string/unique (error), type
// membership in the allowed set (error), boolean required/read_only
// (error), combo options must be a list (error), required=true alongside
// a required_expression (warn; the expression is the authority). List
// checks: sequence numbers, when all present, must form the contiguous
// run 1..N (warn); the identity-gating expression rules and auto-fill
// hints from the rule tables.
func Fields(fields []any) datatypes.IssueList {
	var issues datatypes.IssueList

	collectFieldNames(fields, &issues)
	checkSequenceNumbers(fields, &issues)

	for idx, raw := range fields {
		field, ok := raw.(map[string]any)
		if !ok {
			// Non-object entries already drew an internal_name error in
			// collectFieldNames; nothing more to check.
			continue
		}
		checkField(field, idx+1, &issues)
	}

	checkAutoFillHints(fields, &issues)

	return issues
}

// collectFieldNames reports missing and duplicate internal_names as
// errors.
func collectFieldNames(fields []any, issues *datatypes.IssueList) {
	names := make(map[string]bool, len(fields))
	for idx, raw := range fields {
		field, ok := raw.(map[string]any)
		if !ok {
			issues.Errorf(fmt.Sprintf("form.fields[%d]", idx+1), "Field missing valid internal_name")
			continue
		}
		name, ok := field["internal_name"].(string)
		if !ok || name == "" {
			issues.Errorf(fmt.Sprintf("form.fields[%d]", idx+1), "Field missing valid internal_name")
			continue
		}
		if names[name] {
			issues.Errorf(fmt.Sprintf("form.fields[%d]", idx+1), "Duplicate internal_name: %s", name)
		}
		names[name] = true
	}
}

// checkSequenceNumbers warns unless the numbers, when all present, form
// the contiguous run 1..N.
func checkSequenceNumbers(fields []any, issues *datatypes.IssueList) {
	seqs := make([]int, 0, len(fields))
	for _, raw := range fields {
		field, ok := raw.(map[string]any)
		if !ok {
			return
		}
		v, present := field["sequence_number"]
		if !present || !isInt(v) {
			return
		}
		seqs = append(seqs, asInt(v))
	}
	sort.Ints(seqs)
	for i, n := range seqs {
		if n != i+1 {
			issues.Warnf("form.fields.sequence_number", "Sequence numbers should be 1..N contiguous")
			return
		}
	}
}

func checkField(field map[string]any, idx int, issues *datatypes.IssueList) {
	name := getString(field, "internal_name")
	where := fieldWhere(idx, name)

	ftypeRaw := getString(field, "field_type")
	ftype := datatypes.ParseFieldType(ftypeRaw)
	if ftype == datatypes.FieldTypeUnknown || !tables.AllowedFieldTypes()[string(ftype)] {
		issues.Errorf(where, "Unsupported field_type: %v", field["field_type"])
	}

	for _, k := range []string{"required", "read_only"} {
		if v, present := field[k]; present {
			if _, isBool := v.(bool); !isBool {
				issues.Errorf(where, "%s must be boolean", k)
			}
		}
	}

	if ftype == datatypes.FieldCombo {
		if opts, present := field["options"]; present && opts != nil {
			if _, isList := opts.([]any); !isList {
				issues.Errorf(where, "combo field 'options' must be a list")
			}
		}
	}

	if req, _ := field["required"].(bool); req && getString(field, "required_expression") != "" {
		issues.Warnf(where, "Avoid required=true when required_expression is present")
	}

	checkExpressionRules(field, where, issues)
}

// checkExpressionRules applies the identity-gating table: named fields
// must carry the exact gating expressions the BRD pins down, compared
// with whitespace collapsed.
func checkExpressionRules(field map[string]any, where string, issues *datatypes.IssueList) {
	name := getString(field, "internal_name")
	for _, rule := range tables.Fields.ExpressionRules {
		if rule.InternalName != name {
			continue
		}
		if rule.RequiredExpression != "" {
			if !sameExpr(getString(field, "required_expression"), rule.RequiredExpression) {
				issues.Warnf(where, "Expected required_expression: %s", rule.RequiredExpression)
			}
		}
		if rule.VisibilityExpression != "" {
			vis := getString(field, "visibility_expression")
			if rule.OnlyWhenPresent {
				// The expectation only binds fields that set a
				// visibility expression at all.
				if normalizeExpr(vis) != "" && !sameExpr(vis, rule.VisibilityExpression) {
					issues.Warnf(where, "%s should be hidden; set visibility_expression to %s",
						name, rule.VisibilityExpression)
				}
			} else if !sameExpr(vis, rule.VisibilityExpression) {
				issues.Warnf(where, "Expected visibility_expression: %s", rule.VisibilityExpression)
			}
		}
	}
}

// checkAutoFillHints suggests auto-fill expressions for well-known
// identity fields that lack one.
func checkAutoFillHints(fields []any, issues *datatypes.IssueList) {
	for _, hint := range tables.Fields.AutoFillHints {
		for _, raw := range fields {
			field, ok := raw.(map[string]any)
			if !ok || getString(field, "internal_name") != hint.InternalName {
				continue
			}
			if getString(field, "auto_fill_expression") == "" {
				issues.Warnf(fmt.Sprintf("form.fields(%s)", hint.InternalName),
					"Consider auto_fill_expression for %s (e.g., %s)", hint.InternalName, hint.Expression)
			}
			break
		}
	}
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
