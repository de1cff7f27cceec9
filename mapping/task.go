// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package mapping

import (
	"fmt"
	"sort"
	"strings"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
)

// Rules are the per output overrides configured on a flow output.
type Rules struct {
	// canonical field -> destination property name
	FieldMapping map[string]string
	// canonical field -> (classifier value -> destination value)
	ValueMap map[string]map[string]string
}

type MappedTask struct {
	// keyed by DestinationProperty.Key
	Fields map[string]any
	// canonical field -> raw value which could not be placed on the destination
	Unmapped map[string]string
}

// UnmappedFields returns the canonical names of the unmapped fields, sorted.
func (m MappedTask) UnmappedFields() []string {
	fields := make([]string, 0, len(m.Unmapped))
	for f := range m.Unmapped {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Note renders the unmapped raw values so they end up in the task description instead of getting lost.
func (m MappedTask) Note() string {
	if len(m.Unmapped) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Unmapped fields:")
	for _, f := range m.UnmappedFields() {
		fmt.Fprintf(&b, "\n- %s: %s", f, m.Unmapped[f])
	}
	return b.String()
}

// MapTask places the fields of a detected task onto the destination properties.
// The assignee is not handled here, it needs a user mapping lookup.
func MapTask(task models.DetectedTask, properties []dtos.DestinationProperty, rules Rules) MappedTask {
	matches := MapFields(properties, rules.FieldMapping)
	out := MappedTask{Fields: map[string]any{}, Unmapped: map[string]string{}}

	single := map[string]*string{
		FieldPriority: task.Priority,
		FieldType:     task.Type,
		FieldDueDate:  task.DueDate,
		FieldDomain:   task.Domain,
	}
	for _, field := range CanonicalFields {
		value, ok := single[field]
		if !ok || value == nil || strings.TrimSpace(*value) == "" {
			continue
		}
		match, ok := matches[field]
		if !ok {
			out.Unmapped[field] = *value
			continue
		}
		resolved, ok := resolveValue(field, *value, match.Property, rules.ValueMap[field])
		if !ok {
			out.Unmapped[field] = *value
			continue
		}
		out.Fields[match.Property.Key] = resolved
	}

	if len(task.Tags) > 0 {
		match, ok := matches[FieldTags]
		if !ok {
			out.Unmapped[FieldTags] = strings.Join(task.Tags, ", ")
		} else {
			tags := make([]string, 0, len(task.Tags))
			seen := map[string]bool{}
			for _, tag := range task.Tags {
				// labels are free form in every destination, unknown tags pass through
				v := TransformValue(tag, match.Property.Options, rules.ValueMap[FieldTags])
				if v == "" || seen[v] {
					continue
				}
				seen[v] = true
				tags = append(tags, v)
			}
			out.Fields[match.Property.Key] = tags
		}
	}

	return out
}

func resolveValue(field string, value string, property dtos.DestinationProperty, explicit map[string]string) (string, bool) {
	if mapped, ok := lookupExplicit(value, explicit); ok {
		return mapped, true
	}
	if !property.Type.IsEnumerated() {
		return value, true
	}
	if o, ok := MapValues(field, property)[normalize(value)]; ok {
		return o.Name, true
	}
	if o, _, ok := BestOption(value, property.Options); ok {
		return o.Name, true
	}
	return value, false
}
