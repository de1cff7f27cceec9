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
	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/common"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/shared"
)

type taskRepository struct {
	common.Repository[uuid.UUID, models.Task, shared.DB]
	db shared.DB
}

func NewTaskRepository(db shared.DB) *taskRepository {
	return &taskRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Task](db),
	}
}

func (r *taskRepository) FindByCandidate(discussionID uuid.UUID, flowOutputID uuid.UUID, candidateIndex int) (models.Task, error) {
	var task models.Task
	err := r.db.Where("discussion_id = ? AND flow_output_id = ? AND candidate_index = ?", discussionID, flowOutputID, candidateIndex).First(&task).Error
	return task, err
}

func (r *taskRepository) ListByDiscussion(discussionID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("discussion_id = ?", discussionID).Order("candidate_index ASC").Find(&tasks).Error
	return tasks, err
}
