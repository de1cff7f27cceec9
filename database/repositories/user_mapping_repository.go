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

type userMappingRepository struct {
	common.Repository[uuid.UUID, models.UserMapping, shared.DB]
	db shared.DB
}

func NewUserMappingRepository(db shared.DB) *userMappingRepository {
	return &userMappingRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.UserMapping](db),
	}
}

func (r *userMappingRepository) CreateIfNotExists(tx shared.DB, mapping *models.UserMapping) (bool, error) {
	return createIfNotExists(r.GetDB(tx), mapping)
}

func (r *userMappingRepository) ReadByTeam(teamID uuid.UUID, id uuid.UUID) (models.UserMapping, error) {
	var mapping models.UserMapping
	err := r.db.Where("team_id = ? AND id = ?", teamID, id).First(&mapping).Error
	return mapping, err
}

func (r *userMappingRepository) FindBySource(teamID uuid.UUID, sourceType models.Provider, workspaceID string, sourceUserID string) (models.UserMapping, error) {
	var mapping models.UserMapping
	err := r.db.Where("team_id = ? AND source_type = ? AND source_workspace_id = ? AND source_user_id = ?",
		teamID, sourceType, workspaceID, sourceUserID).First(&mapping).Error
	return mapping, err
}

func (r *userMappingRepository) FindByHandle(teamID uuid.UUID, sourceType models.Provider, workspaceID string, handle string) (models.UserMapping, error) {
	var candidates []models.UserMapping
	err := r.db.Where("team_id = ? AND source_type = ? AND source_workspace_id = ?", teamID, sourceType, workspaceID).
		Where("source_user_id = ? OR lower(source_user_name) = lower(?)", handle, handle).
		Order("created_at ASC").
		Find(&candidates).Error
	if err != nil {
		return models.UserMapping{}, err
	}
	if len(candidates) == 0 {
		return models.UserMapping{}, gorm.ErrRecordNotFound
	}
	// an exact id match wins over a name match
	for _, c := range candidates {
		if c.SourceUserID == handle {
			return c, nil
		}
	}
	return candidates[0], nil
}

func (r *userMappingRepository) ListByTeam(teamID uuid.UUID, unresolvedOnly bool) ([]models.UserMapping, error) {
	var mappings []models.UserMapping
	q := r.db.Where("team_id = ?", teamID)
	if unresolvedOnly {
		q = q.Where("active = false OR destination_user_id IS NULL OR destination_user_id = ''")
	}
	err := q.Order("created_at ASC").Find(&mappings).Error
	return mappings, err
}
