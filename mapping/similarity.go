// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

// Package mapping matches detected task fields and values onto the schema of a destination.
// Everything in here is a pure function of its inputs.
package mapping

import "strings"

const (
	containmentScore = 0.8
	// a field is only mapped onto a property above this score
	FieldThreshold = 0.5
	// a value is only mapped onto an option above this score
	ValueThreshold = 0.3
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Similarity scores two strings in [0, 1].
// Exact match (case insensitive, trimmed) is 1, containment is 0.8.
// Otherwise the share of agreeing leading characters relative to the longer string.
// Word order is not considered: "bug report" and "report bug" score close to 0.
func Similarity(a, b string) float64 {
	if a != "" && a == b {
		return 1
	}
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return containmentScore
	}

	ra, rb := []rune(a), []rune(b)
	longer := max(len(ra), len(rb))
	matching := 0
	for i := 0; i < len(ra) && i < len(rb); i++ {
		if ra[i] != rb[i] {
			break
		}
		matching++
	}
	return float64(matching) / float64(longer)
}
