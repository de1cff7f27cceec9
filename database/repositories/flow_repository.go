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
	"gorm.io/gorm"
)

type flowRepository struct {
	common.Repository[uuid.UUID, models.Flow, shared.DB]
	db shared.DB
}

func NewFlowRepository(db shared.DB) *flowRepository {
	return &flowRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Flow](db),
	}
}

func (r *flowRepository) withRelations() *gorm.DB {
	return r.db.Preload("Inputs", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC, id ASC")
	}).Preload("Outputs", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC, id ASC")
	})
}

func (r *flowRepository) ReadByTeam(teamID uuid.UUID, id uuid.UUID) (models.Flow, error) {
	var flow models.Flow
	err := r.withRelations().Where("team_id = ? AND id = ?", teamID, id).First(&flow).Error
	return flow, err
}

func (r *flowRepository) ReadBySlug(teamID uuid.UUID, slug string) (models.Flow, error) {
	var flow models.Flow
	err := r.withRelations().Where("team_id = ? AND slug = ?", teamID, slug).First(&flow).Error
	return flow, err
}

func (r *flowRepository) ListByTeam(teamID uuid.UUID) ([]models.Flow, error) {
	var flows []models.Flow
	err := r.withRelations().Where("team_id = ?", teamID).Order("created_at ASC, id ASC").Find(&flows).Error
	return flows, err
}

func (r *flowRepository) SetActive(tx shared.DB, id uuid.UUID, active bool) error {
	return r.GetDB(tx).Model(&models.Flow{}).Where("id = ?", id).Update("active", active).Error
}

func (r *flowRepository) CreateInput(tx shared.DB, input *models.FlowInput) error {
	return r.GetDB(tx).Create(input).Error
}

func (r *flowRepository) CreateOutput(tx shared.DB, output *models.FlowOutput) error {
	return r.GetDB(tx).Create(output).Error
}

func (r *flowRepository) ReadOutput(id uuid.UUID) (models.FlowOutput, error) {
	var output models.FlowOutput
	err := r.db.Where("id = ?", id).First(&output).Error
	return output, err
}
