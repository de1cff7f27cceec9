package router

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobsInfo(t *testing.T) {
	db, pool, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	now := time.Now()
	teamID := uuid.New()
	discussion := models.Discussion{TeamID: teamID, SourceType: models.ProviderSlack, SourceDedupKey: "C1:1:1"}
	require.NoError(t, db.Create(&discussion).Error)

	longAgo := now.Add(-time.Hour)
	recently := now.Add(-time.Minute)
	for _, job := range []models.Job{
		{TeamID: teamID, DiscussionID: discussion.ID, Status: models.JobStatusProcessing, Stage: models.JobStageClassify, Trigger: models.JobTriggerManual, MaxAttempts: 3, StartedAt: &longAgo},
		{TeamID: teamID, DiscussionID: discussion.ID, Status: models.JobStatusProcessing, Stage: models.JobStageClassify, Trigger: models.JobTriggerManual, MaxAttempts: 3, StartedAt: &recently},
		{TeamID: teamID, DiscussionID: discussion.ID, Status: models.JobStatusFailed, Stage: models.JobStageMap, Trigger: models.JobTriggerIngest, MaxAttempts: 3},
	} {
		require.NoError(t, db.Create(&job).Error)
	}

	t.Run("should count jobs per status and the stale ones", func(t *testing.T) {
		info, err := jobsInfo(db, 15*time.Minute, now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), info.ByStatus[string(models.JobStatusProcessing)])
		assert.Equal(t, int64(1), info.ByStatus[string(models.JobStatusFailed)])
		assert.Equal(t, int64(1), info.Stale)
	})

	t.Run("should report a healthy database with its pool config", func(t *testing.T) {
		info := databaseInfo(db, pool)
		assert.Equal(t, "healthy", info.Status)
		assert.NotNil(t, info.MigrationVersion)
	})
}
