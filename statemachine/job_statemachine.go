// Copyright (C) 2025 l3montree GmbH
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package statemachine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/shared"
	"gorm.io/datatypes"
)

// Job transitions:
//
//	pending    -> processing
//	processing -> completed | retrying | failed
//	retrying   -> processing
//
// completed and failed are terminal. Every function returns the job after the
// transition and leaves the passed value untouched.

var ErrInvalidTransition = errors.New("invalid job transition")

type Transition struct {
	From models.JobStatus
	To   models.JobStatus
}

type BackoffPolicy struct {
	Base time.Duration
	Max  time.Duration
}

var DefaultBackoff = BackoffPolicy{Base: 30 * time.Second, Max: 15 * time.Minute}

// DefaultLease bounds how long a job may stay processing before it is reclaimed.
const DefaultLease = 15 * time.Minute

// Delay returns min(base * 2^(attempts-1), max). It never decreases with attempts.
func (b BackoffPolicy) Delay(attempts int) time.Duration {
	if b.Base <= 0 {
		return 0
	}
	d := b.Base
	for i := 1; i < attempts; i++ {
		if b.Max > 0 && d >= b.Max {
			break
		}
		d *= 2
	}
	if b.Max > 0 && d > b.Max {
		return b.Max
	}
	return d
}

func invalid(job models.Job, to models.JobStatus) error {
	return fmt.Errorf("%w: %s -> %s (job %s)", ErrInvalidTransition, job.Status, to, job.ID)
}

// NewJob creates a pending job. The ingest stage is already done when a job is created.
func NewJob(discussion models.Discussion, trigger models.JobTrigger, maxAttempts int, retryOf *uuid.UUID) models.Job {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return models.Job{
		TeamID:        discussion.TeamID,
		DiscussionID:  discussion.ID,
		Stage:         models.JobStageIngest,
		Status:        models.JobStatusPending,
		Trigger:       trigger,
		Attempts:      0,
		MaxAttempts:   maxAttempts,
		TaskIDs:       datatypes.NewJSONSlice([]uuid.UUID{}),
		MappingIssues: datatypes.NewJSONSlice([]string{}),
		RetryOfJobID:  retryOf,
	}
}

func CanStart(job models.Job) bool {
	return (job.Status == models.JobStatusPending || job.Status == models.JobStatusRetrying) && job.Attempts < job.MaxAttempts
}

// Start moves a pending or retrying job to processing and counts the attempt.
func Start(job models.Job, now time.Time) (models.Job, Transition, error) {
	if !CanStart(job) {
		return job, Transition{}, invalid(job, models.JobStatusProcessing)
	}
	t := Transition{From: job.Status, To: models.JobStatusProcessing}
	job.Status = models.JobStatusProcessing
	job.Stage = models.JobStageClassify
	job.Attempts++
	job.StartedAt = &now
	job.NextRunAt = nil
	return job, t, nil
}

// EnterStage records the stage a processing job is currently in.
func EnterStage(job models.Job, stage models.JobStage) (models.Job, error) {
	if job.Status != models.JobStatusProcessing {
		return job, fmt.Errorf("%w: stage %s on %s job", ErrInvalidTransition, stage, job.Status)
	}
	job.Stage = stage
	return job, nil
}

func Complete(job models.Job, taskIDs []uuid.UUID, mappingIssues []string, now time.Time) (models.Job, Transition, error) {
	if job.Status != models.JobStatusProcessing {
		return job, Transition{}, invalid(job, models.JobStatusCompleted)
	}
	if taskIDs == nil {
		taskIDs = []uuid.UUID{}
	}
	if mappingIssues == nil {
		mappingIssues = []string{}
	}
	t := Transition{From: job.Status, To: models.JobStatusCompleted}
	job.Status = models.JobStatusCompleted
	job.TaskIDs = datatypes.NewJSONSlice(taskIDs)
	job.MappingIssues = datatypes.NewJSONSlice(mappingIssues)
	job.Error = nil
	job.ErrorKind = nil
	job.CompletedAt = &now
	return job, t, nil
}

// Fail decides between retrying and failed. Only transient errors are retried
// and only while attempts < maxAttempts. The stage the error happened in is kept.
func Fail(job models.Job, cause error, backoff BackoffPolicy, now time.Time) (models.Job, Transition, error) {
	if job.Status != models.JobStatusProcessing {
		return job, Transition{}, invalid(job, models.JobStatusFailed)
	}
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	kind := string(shared.KindOf(cause))
	job.Error = &msg
	job.ErrorKind = &kind

	if shared.IsRetryable(cause) && job.Attempts < job.MaxAttempts {
		next := now.Add(backoff.Delay(job.Attempts))
		job.Status = models.JobStatusRetrying
		job.NextRunAt = &next
		return job, Transition{From: models.JobStatusProcessing, To: models.JobStatusRetrying}, nil
	}

	job.Status = models.JobStatusFailed
	job.NextRunAt = nil
	job.CompletedAt = &now
	return job, Transition{From: models.JobStatusProcessing, To: models.JobStatusFailed}, nil
}

// Reclaim resolves a job which stayed processing past its lease, e.g. after a
// crash of the worker running it. The lost attempt counts like a transient failure.
func Reclaim(job models.Job, lease time.Duration, backoff BackoffPolicy, now time.Time) (models.Job, Transition, error) {
	cause := shared.NewTransientError("lease", fmt.Errorf("job did not finish stage %s within %s", job.Stage, lease))
	return Fail(job, cause, backoff, now)
}

// IsStale reports whether a processing job outlived its lease.
func IsStale(job models.Job, lease time.Duration, now time.Time) bool {
	return job.Status == models.JobStatusProcessing && job.StartedAt != nil && now.Sub(*job.StartedAt) > lease
}

// CanRetry reports whether a human may request a new job after latest.
// Failed jobs stay untouched, the retry is a new job linked via retryOf.
func CanRetry(latest models.Job) bool {
	return latest.Status == models.JobStatusFailed
}
