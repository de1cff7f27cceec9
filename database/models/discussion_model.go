// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DiscussionStatus string

const (
	DiscussionStatusPending    DiscussionStatus = "pending"
	DiscussionStatusProcessing DiscussionStatus = "processing"
	DiscussionStatusCompleted  DiscussionStatus = "completed"
	DiscussionStatusFailed     DiscussionStatus = "failed"
)

// DetectedTask is a single work item the classifier found inside a discussion.
type DetectedTask struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Assignee    *string  `json:"assignee,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Domain      *string  `json:"domain,omitempty"`
}

// Discussion is the canonical record of one ingested conversational event.
// (team_id, source_type, source_dedup_key) is unique.
type Discussion struct {
	Model
	TeamID             uuid.UUID  `json:"teamId" gorm:"column:team_id;type:uuid;not null;uniqueIndex:idx_discussions_dedup,priority:1"`
	SourceType         Provider   `json:"sourceType" gorm:"column:source_type;not null;uniqueIndex:idx_discussions_dedup,priority:2"`
	SourceDedupKey     string     `json:"sourceDedupKey" gorm:"column:source_dedup_key;not null;uniqueIndex:idx_discussions_dedup,priority:3"`
	ConnectedAccountID *uuid.UUID `json:"connectedAccountId" gorm:"column:connected_account_id;type:uuid"`

	SourceWorkspaceID string                      `json:"sourceWorkspaceId" gorm:"column:source_workspace_id"`
	SourceThreadID    string                      `json:"sourceThreadId" gorm:"column:source_thread_id"`
	SourceURL         *string                     `json:"sourceUrl" gorm:"column:source_url"`
	AuthorID          string                      `json:"authorId" gorm:"column:author_id"`
	AuthorName        string                      `json:"authorName" gorm:"column:author_name"`
	Title             string                      `json:"title" gorm:"column:title"`
	Content           string                      `json:"content" gorm:"column:content;type:text"`
	Participants      datatypes.JSONSlice[string] `json:"participants" gorm:"column:participants;type:jsonb"`
	RawPayload        datatypes.JSON              `json:"rawPayload" gorm:"column:raw_payload;type:jsonb"`

	DetectedTasks datatypes.JSONSlice[DetectedTask] `json:"detectedTasks" gorm:"column:detected_tasks;type:jsonb"`
	Domain        *string                           `json:"domain" gorm:"column:domain"`
	AnalyzedAt    *time.Time                        `json:"analyzedAt" gorm:"column:analyzed_at"`

	ProcessingStatus DiscussionStatus `json:"processingStatus" gorm:"column:processing_status;not null;default:'pending'"`

	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:DiscussionID"`
}

func (Discussion) TableName() string {
	return "discussions"
}

func (d Discussion) IsAnalyzed() bool {
	return d.AnalyzedAt != nil
}
