// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commonint

import (
	"regexp"
	"strings"
)

var userSyncMarker = regexp.MustCompile(`(?i)user\s+sync:`)

// matches slack style <@U123|name> mentions and plain @handle mentions
var mentionPattern = regexp.MustCompile(`<@([A-Za-z0-9]+)(?:\|[^>]*)?>|(?:^|[\s(,;])@([\p{L}\p{N}._\-]+)`)

// ParseUserSync parses a bootstrap discovery comment of the form
//
//	<bot mention> User Sync: @alice @bob
//
// The marker has to be preceded by a mention on the same line. Everything after the
// marker is the discovered user list. Handles are returned without @, de-duplicated and in order.
func ParseUserSync(text string) ([]string, bool) {
	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		loc := userSyncMarker.FindStringIndex(line)
		if loc != nil && len(ParseMentions(line[:loc[0]])) > 0 {
			return ParseMentions(text[offset+loc[1]:]), true
		}
		offset += len(line)
	}
	return nil, false
}

// ParseMentions returns the mentioned handles of text without @, de-duplicated and in order.
func ParseMentions(text string) []string {
	handles := make([]string, 0)
	seen := make(map[string]bool)
	for _, m := range mentionPattern.FindAllStringSubmatch(text, -1) {
		handle := m[1]
		if handle == "" {
			handle = strings.TrimRight(m[2], ".-")
		}
		if handle == "" || seen[handle] {
			continue
		}
		seen[handle] = true
		handles = append(handles, handle)
	}
	return handles
}
