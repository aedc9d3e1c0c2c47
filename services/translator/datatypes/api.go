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

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MaxDocumentBytes caps a single inbound artifact document. The
// extraction pipeline produces documents well under this; anything
// larger is a runaway generation, not a catalog definition. The service
// enforces it through the body-limit middleware, sized for a request
// carrying a full bundle.
const MaxDocumentBytes = 4 * 1024 * 1024 // 4MB

// =============================================================================
// Shared Validator Instance
// =============================================================================

// apiValidate is the validator instance for translator API datatypes.
var apiValidate *validator.Validate

func init() {
	apiValidate = validator.New()
}

// ValidateRequest is the body of POST /v1/validate. All four documents
// are required; the per-document validators then report shape defects
// inside them as issues, not HTTP errors.
type ValidateRequest struct {
	Offering map[string]any `json:"offering" validate:"required"`
	Form     map[string]any `json:"form" validate:"required"`
	Workflow map[string]any `json:"workflow" validate:"required"`
	Tenant   map[string]any `json:"tenant_config" validate:"required"`
}

// Validate checks the request carries all four documents.
func (r *ValidateRequest) Validate() error {
	if err := apiValidate.Struct(r); err != nil {
		return fmt.Errorf("invalid validate request: %w", err)
	}
	return nil
}

// Bundle assembles the raw documents into a run bundle.
func (r *ValidateRequest) Bundle() *Bundle {
	return &Bundle{
		Offering: r.Offering,
		Form:     r.Form,
		Workflow: r.Workflow,
		Tenant:   r.Tenant,
	}
}

// ValidateResponse reports the accumulated issues for a bundle.
// Deployable is false when any issue carries error severity.
type ValidateResponse struct {
	Issues     IssueList `json:"issues"`
	Errors     int       `json:"errors"`
	Warnings   int       `json:"warnings"`
	Deployable bool      `json:"deployable"`
}

// NewValidateResponse summarizes an issue list.
func NewValidateResponse(issues IssueList) ValidateResponse {
	if issues == nil {
		issues = IssueList{}
	}
	return ValidateResponse{
		Issues:     issues,
		Errors:     issues.Count(SeverityError),
		Warnings:   issues.Count(SeverityWarn),
		Deployable: !issues.HasErrors(),
	}
}

// ResolveRequest is the body of POST /v1/resolve. Tree is any JSON value
// tree; Tenant supplies the mapping source.
type ResolveRequest struct {
	Tree   any            `json:"tree" validate:"required"`
	Tenant map[string]any `json:"tenant_config" validate:"required"`
}

// Validate checks the request shape.
func (r *ResolveRequest) Validate() error {
	if err := apiValidate.Struct(r); err != nil {
		return fmt.Errorf("invalid resolve request: %w", err)
	}
	return nil
}

// ResolveResponse carries the substituted tree plus the audit trail.
type ResolveResponse struct {
	Tree  any          `json:"tree"`
	Audit []AuditEntry `json:"audit"`
}

// FindPlaceholdersRequest is the body of POST /v1/placeholders/find.
type FindPlaceholdersRequest struct {
	Tree any `json:"tree" validate:"required"`
}

// Validate checks the request shape.
func (r *FindPlaceholdersRequest) Validate() error {
	if err := apiValidate.Struct(r); err != nil {
		return fmt.Errorf("invalid placeholder scan request: %w", err)
	}
	return nil
}

// FindPlaceholdersResponse lists unresolved bracket tokens.
type FindPlaceholdersResponse struct {
	Placeholders []Placeholder `json:"placeholders"`
}

// TranslateRequest is the body of POST /v1/translate: the full pipeline
// in one call. Force allows transformation despite error-severity
// issues; the default is to refuse.
type TranslateRequest struct {
	Offering map[string]any `json:"offering" validate:"required"`
	Form     map[string]any `json:"form" validate:"required"`
	Workflow map[string]any `json:"workflow" validate:"required"`
	Tenant   map[string]any `json:"tenant_config" validate:"required"`
	Force    bool           `json:"force,omitempty"`
}

// Validate checks the request carries all four documents.
func (r *TranslateRequest) Validate() error {
	if err := apiValidate.Struct(r); err != nil {
		return fmt.Errorf("invalid translate request: %w", err)
	}
	return nil
}

// Bundle assembles the raw documents into a run bundle.
func (r *TranslateRequest) Bundle() *Bundle {
	return &Bundle{
		Offering: r.Offering,
		Form:     r.Form,
		Workflow: r.Workflow,
		Tenant:   r.Tenant,
	}
}

// TranslateResponse carries the validation report, the audit trail, and
// the three package shapes.
type TranslateResponse struct {
	Validation ValidateResponse `json:"validation"`
	Audit      []AuditEntry     `json:"audit"`
	Combined   map[string]any   `json:"combined_package,omitempty"`
	Form       map[string]any   `json:"offering_form_package,omitempty"`
	Workflow   map[string]any   `json:"workflow_package,omitempty"`
}
