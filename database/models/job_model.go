// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusRetrying   JobStatus = "retrying"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

type JobStage string

const (
	JobStageIngest   JobStage = "ingest"
	JobStageClassify JobStage = "classify"
	JobStageMap      JobStage = "map"
	JobStageCreate   JobStage = "create"
)

type JobTrigger string

const (
	JobTriggerIngest JobTrigger = "ingest"
	JobTriggerManual JobTrigger = "manual"
	JobTriggerRetry  JobTrigger = "retry"
)

// Job is one tracked execution of the classify, map and create pipeline for a discussion.
// Terminal jobs are kept as audit records and never change again.
type Job struct {
	Model
	TeamID       uuid.UUID `json:"teamId" gorm:"column:team_id;type:uuid;not null;index"`
	DiscussionID uuid.UUID `json:"discussionId" gorm:"column:discussion_id;type:uuid;not null;index"`

	Stage       JobStage   `json:"stage" gorm:"column:stage;not null"`
	Status      JobStatus  `json:"status" gorm:"column:status;not null;index"`
	Trigger     JobTrigger `json:"trigger" gorm:"column:trigger;not null"`
	Attempts    int        `json:"attempts" gorm:"column:attempts;not null"`
	MaxAttempts int        `json:"maxAttempts" gorm:"column:max_attempts;not null"`
	Error       *string    `json:"error" gorm:"column:error;type:text"`
	ErrorKind   *string    `json:"errorKind" gorm:"column:error_kind"`

	TaskIDs       datatypes.JSONSlice[uuid.UUID] `json:"taskIds" gorm:"column:task_ids;type:jsonb"`
	MappingIssues datatypes.JSONSlice[string]    `json:"mappingIssues" gorm:"column:mapping_issues;type:jsonb"`
	RetryOfJobID  *uuid.UUID                     `json:"retryOfJobId" gorm:"column:retry_of_job_id;type:uuid"`
	NextRunAt     *time.Time                     `json:"nextRunAt" gorm:"column:next_run_at"`
	StartedAt     *time.Time                     `json:"startedAt" gorm:"column:started_at"`
	CompletedAt   *time.Time                     `json:"completedAt" gorm:"column:completed_at"`
}

func (Job) TableName() string {
	return "jobs"
}

// IsDue reports whether a pending or retrying job may be picked up.
func (j Job) IsDue(now time.Time) bool {
	switch j.Status {
	case JobStatusPending:
		return true
	case JobStatusRetrying:
		return j.NextRunAt == nil || !now.Before(*j.NextRunAt)
	}
	return false
}
