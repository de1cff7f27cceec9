// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"github.com/google/uuid"
)

type MappingType string

const (
	MappingTypeManual MappingType = "manual"
	MappingTypeAuto   MappingType = "auto"
)

// UserMapping links a user of a source system to a user of the destination system.
// A mapping without a destination user was discovered but is not resolved yet.
type UserMapping struct {
	Model
	TeamID            uuid.UUID `json:"teamId" gorm:"column:team_id;type:uuid;not null;uniqueIndex:idx_user_mappings_source,priority:1"`
	SourceType        Provider  `json:"sourceType" gorm:"column:source_type;not null;uniqueIndex:idx_user_mappings_source,priority:2"`
	SourceWorkspaceID string    `json:"sourceWorkspaceId" gorm:"column:source_workspace_id;not null;uniqueIndex:idx_user_mappings_source,priority:3"`
	SourceUserID      string    `json:"sourceUserId" gorm:"column:source_user_id;not null;uniqueIndex:idx_user_mappings_source,priority:4"`
	SourceUserEmail   *string   `json:"sourceUserEmail" gorm:"column:source_user_email"`
	SourceUserName    *string   `json:"sourceUserName" gorm:"column:source_user_name"`

	DestinationUserID   *string `json:"destinationUserId" gorm:"column:destination_user_id"`
	DestinationUserName *string `json:"destinationUserName" gorm:"column:destination_user_name"`

	MappingType MappingType `json:"mappingType" gorm:"column:mapping_type;not null"`
	Confidence  float64     `json:"confidence" gorm:"column:confidence;not null"`
	Active      bool        `json:"active" gorm:"column:active;not null"`
}

func (UserMapping) TableName() string {
	return "user_mappings"
}

func (m UserMapping) IsResolved() bool {
	return m.Active && m.DestinationUserID != nil && *m.DestinationUserID != ""
}
