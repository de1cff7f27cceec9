// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TaskSyncStatus string

const (
	TaskSyncStatusPending TaskSyncStatus = "pending"
	TaskSyncStatusSynced  TaskSyncStatus = "synced"
	TaskSyncStatusFailed  TaskSyncStatus = "failed"
)

// Task is a work item created in a destination system.
// A discussion produces at most one task per detected candidate and output.
type Task struct {
	Model
	TeamID         uuid.UUID `json:"teamId" gorm:"column:team_id;type:uuid;not null;index"`
	DiscussionID   uuid.UUID `json:"discussionId" gorm:"column:discussion_id;type:uuid;not null;uniqueIndex:idx_tasks_candidate,priority:1"`
	FlowOutputID   uuid.UUID `json:"flowOutputId" gorm:"column:flow_output_id;type:uuid;not null;uniqueIndex:idx_tasks_candidate,priority:2"`
	CandidateIndex int       `json:"candidateIndex" gorm:"column:candidate_index;not null;uniqueIndex:idx_tasks_candidate,priority:3"`
	JobID          uuid.UUID `json:"jobId" gorm:"column:job_id;type:uuid;not null"`

	Destination Provider `json:"destination" gorm:"column:destination;not null"`
	ExternalID  string   `json:"externalId" gorm:"column:external_id"`
	ExternalURL *string  `json:"externalUrl" gorm:"column:external_url"`
	Title       string   `json:"title" gorm:"column:title"`

	Fields         datatypes.JSONMap           `json:"fields" gorm:"column:fields;type:jsonb"`
	UnmappedFields datatypes.JSONSlice[string] `json:"unmappedFields" gorm:"column:unmapped_fields;type:jsonb"`
	SyncStatus     TaskSyncStatus              `json:"syncStatus" gorm:"column:sync_status;not null;default:'pending'"`
}

func (Task) TableName() string {
	return "tasks"
}
