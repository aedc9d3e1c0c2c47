// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package resolve

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
)

// MaxDepth bounds the tree walk. JSON trees are acyclic so no visited
// set is needed; the bound is a guard against adversarially nested
// input, which a catalog definition never legitimately approaches.
const MaxDepth = 256

// ErrMaxDepthExceeded is returned when a value tree nests deeper than
// MaxDepth.
var ErrMaxDepthExceeded = errors.New("value tree exceeds maximum nesting depth")

// placeholderPattern matches a string scalar that is exactly one
// bracket token, e.g. "<GROUP_REC_ID_IT_KNOWLEDGE>". Strings that merely
// contain a token are left alone.
var placeholderPattern = regexp.MustCompile(`^<([^<>]+)>$`)

// Resolve rebuilds a JSON-like value tree (object/array/scalar) with
// placeholder tokens substituted from the mapping.
//
// Non-placeholder scalars pass through untouched. A token with a mapping
// is replaced and audited with its old and new values; a token without
// one is left as-is and audited with the unmapped_placeholder warning.
// The input tree is never mutated. Resolution is idempotent: once every
// token is a real mapping key, a second pass performs zero
// substitutions.
func Resolve(tree any, mapping Mapping) (any, []datatypes.AuditEntry, error) {
	audit := make([]datatypes.AuditEntry, 0)
	out, err := resolveValue(tree, mapping, "$", 0, &audit)
	if err != nil {
		return nil, nil, err
	}
	return out, audit, nil
}

func resolveValue(v any, mapping Mapping, path string, depth int,
	audit *[]datatypes.AuditEntry) (any, error) {

	if depth > MaxDepth {
		return nil, fmt.Errorf("%w at %s", ErrMaxDepthExceeded, path)
	}

	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for _, k := range mapKeys(val) {
			child, err := resolveValue(val[k], mapping, path+"."+k, depth+1, audit)
			if err != nil {
				return nil, err
			}
			out[k] = child
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			child, err := resolveValue(item, mapping, fmt.Sprintf("%s[%d]", path, i), depth+1, audit)
			if err != nil {
				return nil, err
			}
			out[i] = child
		}
		return out, nil
	case string:
		m := placeholderPattern.FindStringSubmatch(val)
		if m == nil {
			return val, nil
		}
		if replacement, ok := mapping[m[1]]; ok {
			*audit = append(*audit, datatypes.AuditEntry{Path: path, Old: val, New: replacement})
			return replacement, nil
		}
		*audit = append(*audit, datatypes.AuditEntry{
			Path:    path,
			Old:     val,
			Warning: datatypes.WarningUnmappedPlaceholder,
		})
		return val, nil
	default:
		return v, nil
	}
}

// FindPlaceholders is the read-only sibling of Resolve: it lists every
// bracket token in the tree with its path, for pre-flight reporting
// before substitution.
func FindPlaceholders(tree any) ([]datatypes.Placeholder, error) {
	hits := make([]datatypes.Placeholder, 0)
	if err := findPlaceholders(tree, "$", 0, &hits); err != nil {
		return nil, err
	}
	return hits, nil
}

func findPlaceholders(v any, path string, depth int, hits *[]datatypes.Placeholder) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w at %s", ErrMaxDepthExceeded, path)
	}

	switch val := v.(type) {
	case map[string]any:
		for _, k := range mapKeys(val) {
			if err := findPlaceholders(val[k], path+"."+k, depth+1, hits); err != nil {
				return err
			}
		}
	case []any:
		for i, item := range val {
			if err := findPlaceholders(item, fmt.Sprintf("%s[%d]", path, i), depth+1, hits); err != nil {
				return err
			}
		}
	case string:
		if placeholderPattern.MatchString(val) {
			*hits = append(*hits, datatypes.Placeholder{Path: path, Value: val})
		}
	}
	return nil
}

// mapKeys returns the keys sorted, so the walk (and therefore the audit
// trail) is deterministic across runs.
func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
