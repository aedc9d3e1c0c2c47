// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// metrics is created once; promauto registration with the default
// registry panics on duplicates.
var metrics = NewPipelineMetrics()

func TestObserveValidation(t *testing.T) {
	before := testutil.ToFloat64(metrics.BundlesValidated.WithLabelValues("blocked"))
	errsBefore := testutil.ToFloat64(metrics.IssuesReported.WithLabelValues("error"))

	metrics.ObserveValidation(3, 2)

	assert.Equal(t, before+1,
		testutil.ToFloat64(metrics.BundlesValidated.WithLabelValues("blocked")))
	assert.Equal(t, errsBefore+3,
		testutil.ToFloat64(metrics.IssuesReported.WithLabelValues("error")))
}

func TestObserveValidation_DeployableOutcome(t *testing.T) {
	before := testutil.ToFloat64(metrics.BundlesValidated.WithLabelValues("deployable"))

	metrics.ObserveValidation(0, 5)

	assert.Equal(t, before+1,
		testutil.ToFloat64(metrics.BundlesValidated.WithLabelValues("deployable")))
}

func TestObserveAudit(t *testing.T) {
	mappedBefore := testutil.ToFloat64(metrics.Substitutions.WithLabelValues("mapped"))
	unmappedBefore := testutil.ToFloat64(metrics.Substitutions.WithLabelValues("unmapped"))

	metrics.ObserveAudit(4, 1)

	assert.Equal(t, mappedBefore+4,
		testutil.ToFloat64(metrics.Substitutions.WithLabelValues("mapped")))
	assert.Equal(t, unmappedBefore+1,
		testutil.ToFloat64(metrics.Substitutions.WithLabelValues("unmapped")))
}
