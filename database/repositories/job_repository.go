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

package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/common"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/shared"
	"gorm.io/gorm/clause"
)

type jobRepository struct {
	common.Repository[uuid.UUID, models.Job, shared.DB]
	db shared.DB
}

func NewJobRepository(db shared.DB) *jobRepository {
	return &jobRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Job](db),
	}
}

func (r *jobRepository) ReadByTeam(teamID uuid.UUID, id uuid.UUID) (models.Job, error) {
	var job models.Job
	err := r.db.Where("team_id = ? AND id = ?", teamID, id).First(&job).Error
	return job, err
}

func (r *jobRepository) ListByTeam(teamID uuid.UUID, status *models.JobStatus) ([]models.Job, error) {
	var jobs []models.Job
	q := r.db.Where("team_id = ?", teamID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	err := q.Order("created_at DESC").Limit(500).Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) ListByDiscussion(discussionID uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("discussion_id = ?", discussionID).Order("created_at DESC, id DESC").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) FindRunnable(now time.Time, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("status = ? OR (status = ? AND (next_run_at IS NULL OR next_run_at <= ?))",
		models.JobStatusPending, models.JobStatusRetrying, now).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) FindStale(startedBefore time.Time, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("status = ? AND started_at < ?", models.JobStatusProcessing, startedBefore).
		Order("started_at ASC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

// the conflict target matches the partial index idx_jobs_ingest_unique
var ingestJobConflict = clause.OnConflict{
	Columns:     []clause.Column{{Name: "discussion_id"}},
	TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "trigger = 'ingest'"}}},
	DoNothing:   true,
}

func (r *jobRepository) CreateIngestJob(tx shared.DB, job *models.Job) (bool, error) {
	res := r.GetDB(tx).Clauses(ingestJobConflict).Create(job)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *jobRepository) FindIngestJob(discussionID uuid.UUID) (models.Job, error) {
	var job models.Job
	err := r.db.Where("discussion_id = ? AND trigger = ?", discussionID, models.JobTriggerIngest).First(&job).Error
	return job, err
}

var jobTransitionColumns = []string{
	"stage",
	"status",
	"attempts",
	"error",
	"error_kind",
	"task_ids",
	"mapping_issues",
	"next_run_at",
	"started_at",
	"completed_at",
	"updated_at",
}

func (r *jobRepository) UpdateIfStatus(tx shared.DB, job *models.Job, expected models.JobStatus) (bool, error) {
	job.UpdatedAt = time.Now()
	res := r.GetDB(tx).Model(&models.Job{}).
		Where("id = ? AND status = ?", job.ID, expected).
		Select(jobTransitionColumns).
		Updates(job)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
