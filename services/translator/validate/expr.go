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
	"regexp"
	"strings"
)

var (
	spaceRuns  = regexp.MustCompile(`\s+`)
	openParen  = regexp.MustCompile(`\$\(\s*`)
	closeParen = regexp.MustCompile(`\s*\)`)
)

// normalizeExpr collapses whitespace inside $( ... ) gating expressions
// so formatting differences don't false-flag the expression checks.
// Non-string inputs come through the raw-document accessors as "".
func normalizeExpr(s string) string {
	t := strings.TrimSpace(s)
	t = spaceRuns.ReplaceAllString(t, " ")
	t = openParen.ReplaceAllString(t, "$(")
	t = closeParen.ReplaceAllString(t, ")")
	return t
}

// sameExpr compares two gating expressions ignoring whitespace.
func sameExpr(a, b string) bool {
	return normalizeExpr(a) == normalizeExpr(b)
}
