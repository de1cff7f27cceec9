// Copyright (C) 2026 l3montree GmbH
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

package transformer

import (
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
)

func ConnectedAccountToDTO(account models.ConnectedAccount) dtos.ConnectedAccountDTO {
	scopes := []string(account.Scopes)
	if scopes == nil {
		scopes = []string{}
	}
	metadata := map[string]any(account.ProviderMetadata)
	if metadata == nil {
		metadata = map[string]any{}
	}
	return dtos.ConnectedAccountDTO{
		ID:                account.ID,
		TeamID:            account.TeamID,
		Provider:          string(account.Provider),
		Label:             account.Label,
		ProviderAccountID: account.ProviderAccountID,
		AccessTokenHint:   account.AccessTokenHint,
		HasSigningSecret:  account.SigningSecret != nil && *account.SigningSecret != "",
		TokenExpiresAt:    account.TokenExpiresAt,
		Scopes:            scopes,
		ProviderMetadata:  metadata,
		Status:            string(account.Status),
		LastVerifiedAt:    account.LastVerifiedAt,
		LastError:         account.LastError,
		CreatedAt:         account.CreatedAt,
	}
}

func ConnectedAccountsToDTOs(accounts []models.ConnectedAccount) []dtos.ConnectedAccountDTO {
	result := make([]dtos.ConnectedAccountDTO, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, ConnectedAccountToDTO(account))
	}
	return result
}
