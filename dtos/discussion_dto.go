// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
)

type DiscussionDetailsDTO struct {
	ID                uuid.UUID             `json:"id"`
	TeamID            uuid.UUID             `json:"teamId"`
	SourceType        string                `json:"sourceType"`
	SourceDedupKey    string                `json:"sourceDedupKey"`
	SourceWorkspaceID string                `json:"sourceWorkspaceId"`
	SourceThreadID    string                `json:"sourceThreadId"`
	SourceURL         *string               `json:"sourceUrl"`
	AuthorName        string                `json:"authorName"`
	Title             string                `json:"title"`
	Content           string                `json:"content"`
	Participants      []string              `json:"participants"`
	DetectedTasks     []models.DetectedTask `json:"detectedTasks"`
	Domain            *string               `json:"domain"`
	AnalyzedAt        *time.Time            `json:"analyzedAt"`
	ProcessingStatus  string                `json:"processingStatus"`
	CreatedAt         time.Time             `json:"createdAt"`

	Tasks []models.Task `json:"tasks"`
	Jobs  []models.Job  `json:"jobs"`
}
