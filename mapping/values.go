// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package mapping

import (
	"maps"
	"slices"

	"github.com/l3montree-dev/threadline/dtos"
)

// Vocabulary the classifier is asked to answer in, per enumerated field.
var Vocabulary = map[string][]string{
	FieldPriority: {"low", "medium", "high", "urgent"},
	FieldType:     {"bug", "feature", "task", "improvement", "question"},
}

// BestOption returns the best scoring option for value above ValueThreshold.
// The first option wins on equal scores.
func BestOption(value string, options []dtos.PropertyOption) (dtos.PropertyOption, float64, bool) {
	var best dtos.PropertyOption
	bestScore := 0.0
	found := false
	for _, o := range options {
		score := Similarity(value, o.Name)
		if score <= ValueThreshold {
			continue
		}
		if !found || score > bestScore {
			best, bestScore, found = o, score, true
		}
	}
	return best, bestScore, found
}

// MapValues maps the fixed vocabulary of field onto the options of an enumerated property.
// Terms without a confident option are missing from the result.
func MapValues(field string, property dtos.DestinationProperty) map[string]dtos.PropertyOption {
	result := make(map[string]dtos.PropertyOption)
	if !property.Type.IsEnumerated() {
		return result
	}
	for _, term := range Vocabulary[field] {
		if o, _, ok := BestOption(term, property.Options); ok {
			result[term] = o
		}
	}
	return result
}

// TransformValue maps a classifier value onto a destination option name.
// An explicit map entry (case insensitive key) wins over fuzzy matching.
// Without any match the value is returned unchanged.
func TransformValue(aiValue string, options []dtos.PropertyOption, explicitMap map[string]string) string {
	if mapped, ok := lookupExplicit(aiValue, explicitMap); ok {
		return mapped
	}
	if o, _, ok := BestOption(aiValue, options); ok {
		return o.Name
	}
	return aiValue
}

func lookupExplicit(value string, explicitMap map[string]string) (string, bool) {
	if len(explicitMap) == 0 {
		return "", false
	}
	if mapped, ok := explicitMap[value]; ok {
		return mapped, true
	}
	// keys differing only in case resolve to the lexically smallest one
	needle := normalize(value)
	keys := slices.Sorted(maps.Keys(explicitMap))
	for _, k := range keys {
		if normalize(k) == needle {
			return explicitMap[k], true
		}
	}
	return "", false
}

// CaseCollisions returns the keys of explicitMap which only differ in case or surrounding whitespace.
func CaseCollisions(explicitMap map[string]string) []string {
	seen := map[string]string{}
	collisions := []string{}
	for _, k := range slices.Sorted(maps.Keys(explicitMap)) {
		n := normalize(k)
		if first, ok := seen[n]; ok {
			collisions = append(collisions, first+"/"+k)
			continue
		}
		seen[n] = k
	}
	return collisions
}
