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
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
)

// Bundle runs all four validators over a run bundle and returns the
// concatenated report in a fixed order: offering, form, workflow,
// tenant config.
//
// The validators are pure and independent, so they run concurrently;
// each writes its own slice and the slices are joined deterministically
// afterwards, which keeps the report order stable regardless of
// scheduling.
func Bundle(ctx context.Context, b *datatypes.Bundle) datatypes.IssueList {
	var offering, form, workflow, tenant datatypes.IssueList

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { offering = Offering(b.Offering); return nil })
	g.Go(func() error { form = Form(b.Form); return nil })
	g.Go(func() error { workflow = Workflow(b.Workflow); return nil })
	g.Go(func() error { tenant = TenantConfig(b.Tenant); return nil })
	_ = g.Wait() // validators do not fail; they accumulate

	issues := make(datatypes.IssueList, 0,
		len(offering)+len(form)+len(workflow)+len(tenant))
	issues = append(issues, offering...)
	issues = append(issues, form...)
	issues = append(issues, workflow...)
	issues = append(issues, tenant...)
	return issues
}
