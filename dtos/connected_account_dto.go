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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type ConnectedAccountCreateRequest struct {
	Provider          string         `json:"provider" validate:"required,oneof=slack figma email github jira gitlab"`
	Label             string         `json:"label" validate:"required,max=255"`
	Token             string         `json:"token" validate:"required"`
	ProviderAccountID string         `json:"providerAccountId"`
	SigningSecret     *string        `json:"signingSecret"`
	RefreshToken      *string        `json:"refreshToken"`
	TokenExpiresAt    *time.Time     `json:"tokenExpiresAt"`
	Scopes            []string       `json:"scopes"`
	ProviderMetadata  map[string]any `json:"providerMetadata"`
}

// ConnectedAccountDTO never carries the token or the signing secret.
type ConnectedAccountDTO struct {
	ID                uuid.UUID      `json:"id"`
	TeamID            uuid.UUID      `json:"teamId"`
	Provider          string         `json:"provider"`
	Label             string         `json:"label"`
	ProviderAccountID string         `json:"providerAccountId"`
	AccessTokenHint   string         `json:"accessTokenHint"`
	HasSigningSecret  bool           `json:"hasSigningSecret"`
	TokenExpiresAt    *time.Time     `json:"tokenExpiresAt"`
	Scopes            []string       `json:"scopes"`
	ProviderMetadata  map[string]any `json:"providerMetadata"`
	Status            string         `json:"status"`
	LastVerifiedAt    *time.Time     `json:"lastVerifiedAt"`
	LastError         *string        `json:"lastError"`
	CreatedAt         time.Time      `json:"createdAt"`
}

type VerificationResult struct {
	Success bool    `json:"success"`
	Status  string  `json:"status"`
	Error   *string `json:"error,omitempty"`
}
