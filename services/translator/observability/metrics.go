// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides Prometheus metrics for the translator
// service.
//
// Metrics are exposed via the /metrics endpoint. All metric operations
// are thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all translator metrics.
const metricsNamespace = "catalogforge"

// Subsystem for pipeline metrics.
const pipelineSubsystem = "translator"

// PipelineMetrics holds the Prometheus metrics for validate/resolve/
// translate operations. Initialize once at startup via
// NewPipelineMetrics().
type PipelineMetrics struct {
	// BundlesValidated counts validation runs by outcome.
	// Labels: outcome (deployable, blocked)
	BundlesValidated *prometheus.CounterVec

	// IssuesReported counts accumulated validation issues.
	// Labels: severity (error, warn)
	IssuesReported *prometheus.CounterVec

	// Substitutions counts placeholder substitutions.
	// Labels: result (mapped, unmapped)
	Substitutions *prometheus.CounterVec

	// TranslateDuration measures full-pipeline latency.
	TranslateDuration prometheus.Histogram
}

// NewPipelineMetrics registers the pipeline metrics with the default
// registry. Call once; duplicate registration panics by Prometheus
// convention.
func NewPipelineMetrics() *PipelineMetrics {
	return &PipelineMetrics{
		BundlesValidated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: pipelineSubsystem,
			Name:      "bundles_validated_total",
			Help:      "Validation runs by outcome (deployable or blocked).",
		}, []string{"outcome"}),
		IssuesReported: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: pipelineSubsystem,
			Name:      "issues_reported_total",
			Help:      "Validation issues accumulated, by severity.",
		}, []string{"severity"}),
		Substitutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: pipelineSubsystem,
			Name:      "placeholder_substitutions_total",
			Help:      "Placeholder tokens encountered, by mapping result.",
		}, []string{"result"}),
		TranslateDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: pipelineSubsystem,
			Name:      "translate_duration_seconds",
			Help:      "Full pipeline (validate+resolve+transform) latency.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObserveValidation records one validation run and its issue counts.
func (m *PipelineMetrics) ObserveValidation(errors, warnings int) {
	outcome := "deployable"
	if errors > 0 {
		outcome = "blocked"
	}
	m.BundlesValidated.WithLabelValues(outcome).Inc()
	m.IssuesReported.WithLabelValues("error").Add(float64(errors))
	m.IssuesReported.WithLabelValues("warn").Add(float64(warnings))
}

// ObserveAudit records the mapped/unmapped split of one resolution pass.
func (m *PipelineMetrics) ObserveAudit(mapped, unmapped int) {
	m.Substitutions.WithLabelValues("mapped").Add(float64(mapped))
	m.Substitutions.WithLabelValues("unmapped").Add(float64(unmapped))
}
