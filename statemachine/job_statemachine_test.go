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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func newDiscussion() models.Discussion {
	return models.Discussion{Model: models.Model{ID: uuid.New()}, TeamID: uuid.New()}
}

func TestJobLifecycle(t *testing.T) {
	t.Run("should retry transient failures until max attempts is reached", func(t *testing.T) {
		job := NewJob(newDiscussion(), models.JobTriggerIngest, 3, nil)
		statuses := []models.JobStatus{job.Status}
		transient := shared.NewTransientError("classify", errors.New("timeout"))

		var err error
		for i := 0; i < 3; i++ {
			job, _, err = Start(job, now)
			assert.NoError(t, err)
			statuses = append(statuses, job.Status)
			job, _, err = Fail(job, transient, DefaultBackoff, now)
			assert.NoError(t, err)
			statuses = append(statuses, job.Status)
			assert.LessOrEqual(t, job.Attempts, job.MaxAttempts)
		}

		assert.Equal(t, []models.JobStatus{
			models.JobStatusPending,
			models.JobStatusProcessing, models.JobStatusRetrying,
			models.JobStatusProcessing, models.JobStatusRetrying,
			models.JobStatusProcessing, models.JobStatusFailed,
		}, statuses)
		assert.Equal(t, 3, job.Attempts)
		assert.Equal(t, "transient", *job.ErrorKind)
		assert.NotNil(t, job.CompletedAt)
		assert.Nil(t, job.NextRunAt)
	})

	t.Run("should fail immediately on fatal errors", func(t *testing.T) {
		job := NewJob(newDiscussion(), models.JobTriggerIngest, 3, nil)
		job, _, _ = Start(job, now)
		for _, cause := range []error{
			shared.NewFatalError("map", errors.New("missing projectKey")),
			shared.NewAuthError("create", errors.New("revoked")),
			shared.NewRoutingError("map", errors.New("no output")),
		} {
			failed, tr, err := Fail(job, cause, DefaultBackoff, now)
			assert.NoError(t, err)
			assert.Equal(t, models.JobStatusFailed, failed.Status)
			assert.Equal(t, Transition{From: models.JobStatusProcessing, To: models.JobStatusFailed}, tr)
			assert.Equal(t, 1, failed.Attempts)
		}
	})

	t.Run("should never leave a terminal state", func(t *testing.T) {
		job := NewJob(newDiscussion(), models.JobTriggerIngest, 1, nil)
		job, _, _ = Start(job, now)
		completed, _, err := Complete(job, []uuid.UUID{uuid.New()}, nil, now)
		assert.NoError(t, err)
		assert.Equal(t, models.JobStatusCompleted, completed.Status)
		assert.Len(t, completed.TaskIDs, 1)

		_, _, err = Start(completed, now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		_, _, err = Fail(completed, errors.New("x"), DefaultBackoff, now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		_, _, err = Complete(completed, nil, nil, now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("should not start a job which used all attempts", func(t *testing.T) {
		job := models.Job{Status: models.JobStatusRetrying, Attempts: 3, MaxAttempts: 3}
		assert.False(t, CanStart(job))
	})

	t.Run("should schedule the next attempt with backoff", func(t *testing.T) {
		job := NewJob(newDiscussion(), models.JobTriggerIngest, 5, nil)
		job, _, _ = Start(job, now)
		job, _, _ = Fail(job, shared.NewTransientError("x", errors.New("503")), BackoffPolicy{Base: time.Second, Max: time.Minute}, now)
		assert.Equal(t, now.Add(time.Second), *job.NextRunAt)
		assert.False(t, job.IsDue(now))
		assert.True(t, job.IsDue(now.Add(time.Second)))
	})

	t.Run("should treat unknown errors as transient", func(t *testing.T) {
		job := NewJob(newDiscussion(), models.JobTriggerIngest, 2, nil)
		job, _, _ = Start(job, now)
		job, _, _ = Fail(job, errors.New("boom"), DefaultBackoff, now)
		assert.Equal(t, models.JobStatusRetrying, job.Status)
	})

	t.Run("should only allow retries of failed jobs", func(t *testing.T) {
		assert.True(t, CanRetry(models.Job{Status: models.JobStatusFailed}))
		assert.False(t, CanRetry(models.Job{Status: models.JobStatusRetrying}))
		assert.False(t, CanRetry(models.Job{Status: models.JobStatusCompleted}))
	})

	t.Run("should clamp max attempts to at least one", func(t *testing.T) {
		assert.Equal(t, 1, NewJob(newDiscussion(), models.JobTriggerManual, 0, nil).MaxAttempts)
	})
}

func TestReclaim(t *testing.T) {
	lease := 10 * time.Minute

	t.Run("should only consider processing jobs past their lease stale", func(t *testing.T) {
		job := NewJob(newDiscussion(), models.JobTriggerIngest, 3, nil)
		assert.False(t, IsStale(job, lease, now.Add(time.Hour)))

		started, _, err := Start(job, now)
		assert.NoError(t, err)
		assert.False(t, IsStale(started, lease, now.Add(lease)))
		assert.True(t, IsStale(started, lease, now.Add(lease+time.Second)))
	})

	t.Run("should move a stale job back to retrying while attempts are left", func(t *testing.T) {
		started, _, _ := Start(NewJob(newDiscussion(), models.JobTriggerIngest, 3, nil), now)

		reclaimed, transition, err := Reclaim(started, lease, DefaultBackoff, now.Add(time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, models.JobStatusRetrying, reclaimed.Status)
		assert.Equal(t, models.JobStatusProcessing, transition.From)
		assert.Equal(t, "transient", *reclaimed.ErrorKind)
		assert.Contains(t, *reclaimed.Error, "classify")
		assert.True(t, CanStart(reclaimed))
	})

	t.Run("should fail a stale job which used all attempts", func(t *testing.T) {
		started, _, _ := Start(NewJob(newDiscussion(), models.JobTriggerIngest, 1, nil), now)

		reclaimed, _, err := Reclaim(started, lease, DefaultBackoff, now.Add(time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, models.JobStatusFailed, reclaimed.Status)
		assert.True(t, CanRetry(reclaimed))
	})
}

func TestBackoffDelay(t *testing.T) {
	b := BackoffPolicy{Base: 10 * time.Second, Max: time.Minute}

	t.Run("should double per attempt up to the maximum", func(t *testing.T) {
		assert.Equal(t, 10*time.Second, b.Delay(1))
		assert.Equal(t, 20*time.Second, b.Delay(2))
		assert.Equal(t, 40*time.Second, b.Delay(3))
		assert.Equal(t, time.Minute, b.Delay(4))
		assert.Equal(t, time.Minute, b.Delay(60))
	})

	t.Run("should be monotonic non decreasing", func(t *testing.T) {
		prev := time.Duration(0)
		for attempts := 0; attempts < 100; attempts++ {
			d := b.Delay(attempts)
			assert.GreaterOrEqual(t, d, prev)
			prev = d
		}
	})
}
