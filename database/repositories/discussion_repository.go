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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type discussionRepository struct {
	common.Repository[uuid.UUID, models.Discussion, shared.DB]
	db shared.DB
}

func NewDiscussionRepository(db shared.DB) *discussionRepository {
	return &discussionRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Discussion](db),
	}
}

func (r *discussionRepository) CreateIfNotExists(tx shared.DB, discussion *models.Discussion) (bool, error) {
	return createIfNotExists(r.GetDB(tx), discussion)
}

func (r *discussionRepository) ReadByDedupKey(teamID uuid.UUID, sourceType models.Provider, dedupKey string) (models.Discussion, error) {
	var discussion models.Discussion
	err := r.db.Where("team_id = ? AND source_type = ? AND source_dedup_key = ?", teamID, sourceType, dedupKey).First(&discussion).Error
	return discussion, err
}

func (r *discussionRepository) ReadByTeam(teamID uuid.UUID, id uuid.UUID) (models.Discussion, error) {
	var discussion models.Discussion
	err := r.db.Preload("Tasks", func(db *gorm.DB) *gorm.DB {
		return db.Order("candidate_index ASC")
	}).Where("team_id = ? AND id = ?", teamID, id).First(&discussion).Error
	return discussion, err
}

func (r *discussionRepository) ListByTeam(teamID uuid.UUID, status *models.DiscussionStatus) ([]models.Discussion, error) {
	var discussions []models.Discussion
	q := r.db.Where("team_id = ?", teamID)
	if status != nil {
		q = q.Where("processing_status = ?", *status)
	}
	// the raw payload can be large and is only needed on the detail view
	err := q.Omit("raw_payload").Order("created_at DESC").Limit(500).Find(&discussions).Error
	return discussions, err
}

func (r *discussionRepository) SaveAnalysis(tx shared.DB, id uuid.UUID, tasks []models.DetectedTask, domain *string, analyzedAt time.Time) error {
	return r.GetDB(tx).Model(&models.Discussion{}).Where("id = ?", id).Updates(map[string]any{
		"detected_tasks": datatypes.NewJSONSlice(tasks),
		"domain":         domain,
		"analyzed_at":    analyzedAt,
	}).Error
}

func (r *discussionRepository) UpdateProcessingStatus(tx shared.DB, id uuid.UUID, status models.DiscussionStatus) error {
	return r.GetDB(tx).Model(&models.Discussion{}).Where("id = ?", id).Update("processing_status", status).Error
}
