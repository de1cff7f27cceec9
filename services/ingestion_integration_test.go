package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/database/repositories"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/integrationtestutil"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/l3montree-dev/threadline/statemachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestionAgainstPostgres(t *testing.T) {
	db, _, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	accountRepository := repositories.NewConnectedAccountRepository(db)
	discussionRepository := repositories.NewDiscussionRepository(db)
	jobRepository := repositories.NewJobRepository(db)

	account := models.ConnectedAccount{
		TeamID:        uuid.New(),
		Provider:      models.ProviderSlack,
		Label:         "workspace",
		AccessToken:   "xoxb-test",
		SigningSecret: shared.Ptr("secret"),
		Status:        models.AccountStatusConnected,
	}
	require.NoError(t, accountRepository.Create(nil, &account))

	discussionService := NewDiscussionService(discussionRepository)

	t.Run("should store a concurrently re-delivered event exactly once", func(t *testing.T) {
		event := dtos.NormalizedEvent{
			Kind:              dtos.EventKindDiscussion,
			SourceDedupKey:    "C1:1700000000.1:1700000000.2",
			SourceWorkspaceID: "T1",
			Title:             "checkout is broken",
			Content:           "checkout is broken on mobile, @alice can you look?",
		}

		var wg sync.WaitGroup
		var mu sync.Mutex
		ids := map[uuid.UUID]struct{}{}
		createdCount := 0
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				discussion, created, err := discussionService.Ingest(context.Background(), account, event)
				assert.NoError(t, err)
				job := statemachine.NewJob(discussion, models.JobTriggerIngest, 3, nil)
				_, err = jobRepository.CreateIngestJob(nil, &job)
				assert.NoError(t, err)
				mu.Lock()
				defer mu.Unlock()
				ids[discussion.ID] = struct{}{}
				if created {
					createdCount++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, createdCount)
		assert.Len(t, ids, 1)

		var count int64
		require.NoError(t, db.Model(&models.Discussion{}).Where("source_dedup_key = ?", event.SourceDedupKey).Count(&count).Error)
		assert.EqualValues(t, 1, count)

		var discussion models.Discussion
		require.NoError(t, db.Where("source_dedup_key = ?", event.SourceDedupKey).First(&discussion).Error)
		var jobCount int64
		require.NoError(t, db.Model(&models.Job{}).Where("discussion_id = ? AND trigger = ?", discussion.ID, models.JobTriggerIngest).Count(&jobCount).Error)
		assert.EqualValues(t, 1, jobCount)

		ingestJob, err := jobRepository.FindIngestJob(discussion.ID)
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusPending, ingestJob.Status)
	})

	t.Run("should let exactly one worker win a job transition", func(t *testing.T) {
		discussion, _, err := discussionService.Ingest(context.Background(), account, dtos.NormalizedEvent{
			Kind:           dtos.EventKindDiscussion,
			SourceDedupKey: "C1:1700000001.1:1700000001.2",
		})
		require.NoError(t, err)

		job := models.Job{
			TeamID:       account.TeamID,
			DiscussionID: discussion.ID,
			Stage:        models.JobStageIngest,
			Status:       models.JobStatusPending,
			Trigger:      models.JobTriggerIngest,
			MaxAttempts:  3,
		}
		require.NoError(t, jobRepository.Create(nil, &job))

		var wg sync.WaitGroup
		var mu sync.Mutex
		wins := 0
		for range 6 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				next := job
				next.Status = models.JobStatusProcessing
				next.Attempts = 1
				won, err := jobRepository.UpdateIfStatus(nil, &next, models.JobStatusPending)
				assert.NoError(t, err)
				if won {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, wins)
		stored, err := jobRepository.Read(job.ID)
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusProcessing, stored.Status)
		assert.Equal(t, 1, stored.Attempts)
	})

	t.Run("should only pick up retrying jobs once their backoff elapsed", func(t *testing.T) {
		discussion, _, err := discussionService.Ingest(context.Background(), account, dtos.NormalizedEvent{
			Kind:           dtos.EventKindDiscussion,
			SourceDedupKey: "C1:1700000002.1:1700000002.2",
		})
		require.NoError(t, err)

		now := time.Now()
		later := now.Add(time.Hour)
		job := models.Job{
			TeamID:       account.TeamID,
			DiscussionID: discussion.ID,
			Stage:        models.JobStageCreate,
			Status:       models.JobStatusRetrying,
			Trigger:      models.JobTriggerIngest,
			Attempts:     1,
			MaxAttempts:  3,
			NextRunAt:    &later,
		}
		require.NoError(t, jobRepository.Create(nil, &job))

		runnable, err := jobRepository.FindRunnable(now, 100)
		require.NoError(t, err)
		for _, j := range runnable {
			assert.NotEqual(t, job.ID, j.ID)
		}

		runnable, err = jobRepository.FindRunnable(later.Add(time.Second), 100)
		require.NoError(t, err)
		found := false
		for _, j := range runnable {
			if j.ID == job.ID {
				found = true
			}
		}
		assert.True(t, found)
	})
	t.Run("should find jobs which stayed processing past the lease", func(t *testing.T) {
		discussion, _, err := discussionService.Ingest(context.Background(), account, dtos.NormalizedEvent{
			Kind:           dtos.EventKindDiscussion,
			SourceDedupKey: "C1:1700000003.1:1700000003.2",
		})
		require.NoError(t, err)

		startedAt := time.Now().Add(-time.Hour)
		job := models.Job{
			TeamID:       account.TeamID,
			DiscussionID: discussion.ID,
			Stage:        models.JobStageClassify,
			Status:       models.JobStatusProcessing,
			Trigger:      models.JobTriggerManual,
			Attempts:     1,
			MaxAttempts:  3,
			StartedAt:    &startedAt,
		}
		require.NoError(t, jobRepository.Create(nil, &job))

		stale, err := jobRepository.FindStale(time.Now().Add(-30*time.Minute), 100)
		require.NoError(t, err)
		found := false
		for _, j := range stale {
			if j.ID == job.ID {
				found = true
			}
		}
		assert.True(t, found)

		stale, err = jobRepository.FindStale(startedAt.Add(-time.Minute), 100)
		require.NoError(t, err)
		for _, j := range stale {
			assert.NotEqual(t, job.ID, j.ID)
		}
	})
}
