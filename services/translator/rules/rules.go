// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package rules holds the global rule tables for the catalog translator.
//
// The allowed-type sets, required-key sets, identity-gating expressions
// and placeholder token bindings are static, read-only configuration.
// They are parsed once at process start from a YAML document embedded in
// the binary (same mechanism the policy engine uses for its
// classification patterns): the rules are data, but they are immutable
// at runtime and cannot drift from the code that interprets them.
package rules

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// CatalogRules holds the raw byte content of catalog_rules.yaml,
// populated at compile time via the embed directive.
//
//go:embed catalog_rules.yaml
var CatalogRules []byte

// OfferingRules lists the keys every offering document must carry.
type OfferingRules struct {
	RequiredKeys []string `yaml:"required_keys"`
}

// ExpressionRule pins the expected gating expressions for a named field.
// Empty expectation strings mean the aspect is unchecked. When
// OnlyWhenPresent is set, the visibility expectation applies only to
// fields that carry a visibility expression at all.
type ExpressionRule struct {
	InternalName         string `yaml:"internal_name"`
	RequiredExpression   string `yaml:"required_expression"`
	VisibilityExpression string `yaml:"visibility_expression"`
	OnlyWhenPresent      bool   `yaml:"only_when_present"`
}

// AutoFillHint suggests an auto-fill expression for a named field.
type AutoFillHint struct {
	InternalName string `yaml:"internal_name"`
	Expression   string `yaml:"expression"`
}

// FieldRules configures the form-field validator.
type FieldRules struct {
	AllowedTypes    []string         `yaml:"allowed_types"`
	ExpressionRules []ExpressionRule `yaml:"expression_rules"`
	AutoFillHints   []AutoFillHint   `yaml:"auto_fill_hints"`
}

// ExitRules constrains the exit titles of one block type. Allowed lists
// every permitted title; Required lists titles that must all be present.
type ExitRules struct {
	Allowed  []string `yaml:"allowed"`
	Required []string `yaml:"required"`
}

// WorkflowRules configures the graph validator.
type WorkflowRules struct {
	AllowedBlockTypes []string             `yaml:"allowed_block_types"`
	Exits             map[string]ExitRules `yaml:"exits"`
}

// TokenBinding binds one bracket token to a tenant config entry.
type TokenBinding struct {
	Token   string `yaml:"token"`
	Section string `yaml:"section"`
	Key     string `yaml:"key"`
}

// PlaceholderRules lists the fixed token set the resolver knows.
type PlaceholderRules struct {
	Tokens []TokenBinding `yaml:"tokens"`
}

// Tables is the parsed, immutable rule set.
type Tables struct {
	Offering     OfferingRules    `yaml:"offering"`
	Fields       FieldRules       `yaml:"fields"`
	Workflow     WorkflowRules    `yaml:"workflow"`
	Placeholders PlaceholderRules `yaml:"placeholders"`
}

// RequiredOfferingKeys returns the offering required-key set as a set.
func (t *Tables) RequiredOfferingKeys() map[string]bool {
	return toSet(t.Offering.RequiredKeys)
}

// AllowedFieldTypes returns the field type set as a set.
func (t *Tables) AllowedFieldTypes() map[string]bool {
	return toSet(t.Fields.AllowedTypes)
}

// AllowedBlockTypes returns the block type set as a set.
func (t *Tables) AllowedBlockTypes() map[string]bool {
	return toSet(t.Workflow.AllowedBlockTypes)
}

func toSet(xs []string) map[string]bool {
	s := make(map[string]bool, len(xs))
	for _, x := range xs {
		s[x] = true
	}
	return s
}

var (
	loadOnce sync.Once
	loaded   *Tables
	loadErr  error
)

// Load returns the process-wide rule tables, parsing the embedded YAML
// on first use. The returned Tables must be treated as read-only.
func Load() (*Tables, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse(CatalogRules)
	})
	return loaded, loadErr
}

// MustLoad is Load for callers that cannot proceed without rules.
// A malformed embedded document is a build defect, so this panics.
func MustLoad() *Tables {
	t, err := Load()
	if err != nil {
		panic(fmt.Sprintf("rules: embedded catalog_rules.yaml is invalid: %v", err))
	}
	return t
}

func parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal the embedded rules file: %w", err)
	}
	if len(t.Offering.RequiredKeys) == 0 {
		return nil, fmt.Errorf("rules file carries no offering required keys")
	}
	if len(t.Fields.AllowedTypes) == 0 {
		return nil, fmt.Errorf("rules file carries no allowed field types")
	}
	if len(t.Workflow.AllowedBlockTypes) == 0 {
		return nil, fmt.Errorf("rules file carries no allowed block types")
	}
	seen := make(map[string]bool, len(t.Placeholders.Tokens))
	for _, b := range t.Placeholders.Tokens {
		if b.Token == "" || b.Section == "" || b.Key == "" {
			return nil, fmt.Errorf("placeholder binding %+v is incomplete", b)
		}
		if seen[b.Token] {
			return nil, fmt.Errorf("duplicate placeholder token %q", b.Token)
		}
		seen[b.Token] = true
	}
	return &t, nil
}
