// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AccountStatus string

const (
	AccountStatusConnected AccountStatus = "connected"
	AccountStatusExpired   AccountStatus = "expired"
	AccountStatusRevoked   AccountStatus = "revoked"
	AccountStatusError     AccountStatus = "error"
)

// ConnectedAccount is a team scoped credential for a third party system.
// The secret fields are never serialized.
type ConnectedAccount struct {
	Model
	TeamID            uuid.UUID `json:"teamId" gorm:"column:team_id;type:uuid;not null;index"`
	Provider          Provider  `json:"provider" gorm:"column:provider;not null"`
	Label             string    `json:"label" gorm:"column:label;not null"`
	ProviderAccountID string    `json:"providerAccountId" gorm:"column:provider_account_id"`

	AccessToken     string     `json:"-" gorm:"column:access_token;type:text;not null"`
	AccessTokenHint string     `json:"accessTokenHint" gorm:"column:access_token_hint"`
	RefreshToken    *string    `json:"-" gorm:"column:refresh_token;type:text"`
	TokenExpiresAt  *time.Time `json:"tokenExpiresAt" gorm:"column:token_expires_at"`
	// used to verify inbound webhooks delivered for this account
	SigningSecret *string `json:"-" gorm:"column:signing_secret;type:text"`

	Scopes           datatypes.JSONSlice[string] `json:"scopes" gorm:"column:scopes;type:jsonb"`
	ProviderMetadata datatypes.JSONMap           `json:"providerMetadata" gorm:"column:provider_metadata;type:jsonb"`

	Status         AccountStatus `json:"status" gorm:"column:status;not null;default:'connected'"`
	LastVerifiedAt *time.Time    `json:"lastVerifiedAt" gorm:"column:last_verified_at"`
	LastError      *string       `json:"lastError" gorm:"column:last_error"`
}

func (ConnectedAccount) TableName() string {
	return "connected_accounts"
}

// IsUsable reports whether the pipeline may use the credential right now.
func (a ConnectedAccount) IsUsable(now time.Time) bool {
	if a.Status != AccountStatusConnected {
		return false
	}
	if a.TokenExpiresAt != nil && now.After(*a.TokenExpiresAt) {
		return false
	}
	return true
}

// MetadataString returns a string value of the provider metadata or the empty string.
func (a ConnectedAccount) MetadataString(key string) string {
	if a.ProviderMetadata == nil {
		return ""
	}
	v, ok := a.ProviderMetadata[key].(string)
	if !ok {
		return ""
	}
	return v
}
