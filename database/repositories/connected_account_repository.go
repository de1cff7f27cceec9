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
)

type connectedAccountRepository struct {
	common.Repository[uuid.UUID, models.ConnectedAccount, shared.DB]
	db shared.DB
}

func NewConnectedAccountRepository(db shared.DB) *connectedAccountRepository {
	return &connectedAccountRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ConnectedAccount](db),
	}
}

func (r *connectedAccountRepository) ReadByTeam(teamID uuid.UUID, id uuid.UUID) (models.ConnectedAccount, error) {
	var account models.ConnectedAccount
	err := r.db.Where("team_id = ? AND id = ?", teamID, id).First(&account).Error
	return account, err
}

func (r *connectedAccountRepository) ListByTeam(teamID uuid.UUID) ([]models.ConnectedAccount, error) {
	var accounts []models.ConnectedAccount
	err := r.db.Where("team_id = ?", teamID).Order("created_at ASC").Find(&accounts).Error
	return accounts, err
}

func (r *connectedAccountRepository) UpdateStatus(tx shared.DB, id uuid.UUID, status models.AccountStatus, lastError *string, verifiedAt time.Time) error {
	return r.GetDB(tx).Model(&models.ConnectedAccount{}).Where("id = ?", id).Updates(map[string]any{
		"status":           status,
		"last_error":       lastError,
		"last_verified_at": verifiedAt,
	}).Error
}

func (r *connectedAccountRepository) UpdateTokens(tx shared.DB, id uuid.UUID, accessToken string, accessTokenHint string, refreshToken *string, expiresAt *time.Time) error {
	updates := map[string]any{
		"access_token":      accessToken,
		"access_token_hint": accessTokenHint,
		"token_expires_at":  expiresAt,
	}
	// providers without refresh token rotation return none, keep the stored one
	if refreshToken != nil {
		updates["refresh_token"] = *refreshToken
	}
	return r.GetDB(tx).Model(&models.ConnectedAccount{}).Where("id = ?", id).Updates(updates).Error
}
