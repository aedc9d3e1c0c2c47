// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
	"github.com/AleutianAI/CatalogForge/services/translator/observability"
	"github.com/AleutianAI/CatalogForge/services/translator/resolve"
	"github.com/AleutianAI/CatalogForge/services/translator/transform"
	"github.com/AleutianAI/CatalogForge/services/translator/validate"
)

// ValidateBundle runs the four validators over an inbound bundle and
// returns the full issue report. Validation issues never produce an
// HTTP error status; only a malformed request does.
func ValidateBundle(metrics *observability.PipelineMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.ValidateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		issues := validate.Bundle(c.Request.Context(), req.Bundle())
		resp := datatypes.NewValidateResponse(issues)
		metrics.ObserveValidation(resp.Errors, resp.Warnings)
		slog.Info("validated bundle", "errors", resp.Errors, "warnings", resp.Warnings,
			"deployable", resp.Deployable)
		c.JSON(http.StatusOK, resp)
	}
}

// FindPlaceholders lists every unresolved bracket token in a value
// tree, for pre-flight reporting before substitution.
func FindPlaceholders() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.FindPlaceholdersRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hits, err := resolve.FindPlaceholders(req.Tree)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, datatypes.FindPlaceholdersResponse{Placeholders: hits})
	}
}

// ResolvePlaceholders substitutes tenant values into a value tree and
// returns the rebuilt tree with its audit trail.
func ResolvePlaceholders(metrics *observability.PipelineMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.ResolveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		mapping := resolve.BuildMapping(datatypes.DecodeTenantConfig(req.Tenant))
		tree, audit, err := resolve.Resolve(req.Tree, mapping)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		mapped, unmapped := auditCounts(audit)
		metrics.ObserveAudit(mapped, unmapped)
		c.JSON(http.StatusOK, datatypes.ResolveResponse{Tree: tree, Audit: audit})
	}
}

// TranslateBundle runs the full pipeline: validate, resolve, transform.
//
// Error-severity issues block transformation unless the request sets
// force; the transformer itself never consults severities, this handler
// is the deployment gate.
func TranslateBundle(metrics *observability.PipelineMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.TranslateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		start := time.Now()
		bundle := req.Bundle()
		issues := validate.Bundle(c.Request.Context(), bundle)
		validation := datatypes.NewValidateResponse(issues)
		metrics.ObserveValidation(validation.Errors, validation.Warnings)

		if !validation.Deployable && !req.Force {
			slog.Warn("refusing to translate bundle with errors",
				"errors", validation.Errors)
			c.JSON(http.StatusUnprocessableEntity, datatypes.TranslateResponse{
				Validation: validation,
			})
			return
		}

		mapping := resolve.BuildMapping(bundle.TenantConfig())
		resolvedForm, formAudit, err := resolve.Resolve(bundle.Form, mapping)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		resolvedWorkflow, wfAudit, err := resolve.Resolve(bundle.Workflow, mapping)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		audit := append(formAudit, wfAudit...)
		mapped, unmapped := auditCounts(audit)
		metrics.ObserveAudit(mapped, unmapped)

		pkgs := transform.Bundle(
			resolvedForm.(map[string]any),
			resolvedWorkflow.(map[string]any),
			transform.Options{},
		)
		metrics.TranslateDuration.Observe(time.Since(start).Seconds())
		slog.Info("translated bundle", "mapped", mapped, "unmapped", unmapped,
			"forced", req.Force && !validation.Deployable)

		c.JSON(http.StatusOK, datatypes.TranslateResponse{
			Validation: validation,
			Audit:      audit,
			Combined:   pkgs.Combined,
			Form:       pkgs.OfferingForm,
			Workflow:   pkgs.WorkflowOnly,
		})
	}
}

func auditCounts(audit []datatypes.AuditEntry) (mapped, unmapped int) {
	for _, entry := range audit {
		if entry.Warning == "" {
			mapped++
		} else {
			unmapped++
		}
	}
	return mapped, unmapped
}
