// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package mapping

import (
	"strings"

	"github.com/l3montree-dev/threadline/dtos"
)

const (
	FieldPriority = "priority"
	FieldType     = "type"
	FieldAssignee = "assignee"
	FieldDueDate  = "dueDate"
	FieldTags     = "tags"
	FieldDomain   = "domain"
)

// CanonicalFields is the fixed candidate set, in matching order.
var CanonicalFields = []string{FieldPriority, FieldType, FieldAssignee, FieldDueDate, FieldTags, FieldDomain}

var fieldAliases = map[string][]string{
	FieldDueDate:  {"due date", "deadline"},
	FieldTags:     {"labels"},
	FieldType:     {"issue type", "kind"},
	FieldAssignee: {"assignees", "owner"},
}

type FieldMatch struct {
	Property dtos.DestinationProperty
	Score    float64
}

func fieldScore(field string, propertyName string) float64 {
	best := Similarity(field, propertyName)
	for _, alias := range fieldAliases[field] {
		if s := Similarity(alias, propertyName); s > best {
			best = s
		}
	}
	return best
}

// MapFields assigns every canonical field the best scoring destination property above FieldThreshold.
// On equal scores the property listed first by the destination wins.
// overrides (canonical field -> property name) take precedence over fuzzy matching.
func MapFields(properties []dtos.DestinationProperty, overrides map[string]string) map[string]FieldMatch {
	matches := make(map[string]FieldMatch, len(CanonicalFields))
	for _, field := range CanonicalFields {
		if name, ok := overrides[field]; ok && name != "" {
			if p, found := findProperty(properties, name); found {
				matches[field] = FieldMatch{Property: p, Score: 1}
				continue
			}
		}

		var best *FieldMatch
		for _, p := range properties {
			score := fieldScore(field, p.Name)
			if score <= FieldThreshold {
				continue
			}
			if best == nil || score > best.Score {
				best = &FieldMatch{Property: p, Score: score}
			}
		}
		if best != nil {
			matches[field] = *best
		}
	}
	return matches
}

func findProperty(properties []dtos.DestinationProperty, name string) (dtos.DestinationProperty, bool) {
	for _, p := range properties {
		if strings.EqualFold(p.Name, name) || p.Key == name {
			return p, true
		}
	}
	return dtos.DestinationProperty{}, false
}
