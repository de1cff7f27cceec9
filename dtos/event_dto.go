// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package dtos

import "encoding/json"

type NormalizedEventKind string

const (
	EventKindDiscussion NormalizedEventKind = "discussion"
	// bootstrap discovery comment: "<bot mention> User Sync: @a @b"
	EventKindUserSync NormalizedEventKind = "user_sync"
	// handshake of the provider, answered with Challenge
	EventKindChallenge NormalizedEventKind = "challenge"
	EventKindIgnored   NormalizedEventKind = "ignored"
)

// NormalizedEvent is the provider independent shape of one inbound webhook delivery.
type NormalizedEvent struct {
	Kind NormalizedEventKind `json:"kind"`

	Challenge    string `json:"challenge,omitempty"`
	IgnoreReason string `json:"ignoreReason,omitempty"`

	SourceDedupKey    string   `json:"sourceDedupKey"`
	SourceWorkspaceID string   `json:"sourceWorkspaceId"`
	SourceThreadID    string   `json:"sourceThreadId"`
	SourceURL         *string  `json:"sourceUrl,omitempty"`
	AuthorID          string   `json:"authorId"`
	AuthorName        string   `json:"authorName"`
	Title             string   `json:"title"`
	Content           string   `json:"content"`
	Participants      []string `json:"participants"`

	// handles without the leading @, only set for user_sync events
	DiscoveredUsers []string `json:"discoveredUsers,omitempty"`

	RawPayload json.RawMessage `json:"-"`
}

func Ignored(reason string) NormalizedEvent {
	return NormalizedEvent{Kind: EventKindIgnored, IgnoreReason: reason}
}

type WebhookResponse struct {
	Kind         NormalizedEventKind `json:"kind"`
	DiscussionID *string             `json:"discussionId,omitempty"`
	Created      bool                `json:"created"`
	JobID        *string             `json:"jobId,omitempty"`
	Discovered   int                 `json:"discovered,omitempty"`
	Reason       string              `json:"reason,omitempty"`
}
