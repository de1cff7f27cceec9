// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Flow binds the inputs of a team to its outputs.
// Several flows might be active at the same time - the database does not enforce uniqueness.
type Flow struct {
	Model
	TeamID           uuid.UUID                   `json:"teamId" gorm:"column:team_id;type:uuid;not null;index"`
	Name             string                      `json:"name" gorm:"column:name;not null"`
	Slug             string                      `json:"slug" gorm:"column:slug;not null"`
	Active           bool                        `json:"active" gorm:"column:active;not null"`
	AIEnabled        bool                        `json:"aiEnabled" gorm:"column:ai_enabled;not null"`
	AvailableDomains datatypes.JSONSlice[string] `json:"availableDomains" gorm:"column:available_domains;type:jsonb"`

	// prompt overrides for the classifier
	SystemPrompt *string `json:"systemPrompt" gorm:"column:system_prompt;type:text"`
	TaskPrompt   *string `json:"taskPrompt" gorm:"column:task_prompt;type:text"`

	MaxAttempts *int `json:"maxAttempts" gorm:"column:max_attempts"`

	Inputs  []FlowInput  `json:"inputs" gorm:"foreignKey:FlowID;constraint:OnDelete:CASCADE;"`
	Outputs []FlowOutput `json:"outputs" gorm:"foreignKey:FlowID;constraint:OnDelete:CASCADE;"`
}

func (Flow) TableName() string {
	return "flows"
}

func (f Flow) HasDomain(domain string) bool {
	for _, d := range f.AvailableDomains {
		if strings.EqualFold(d, domain) {
			return true
		}
	}
	return false
}

type FlowInput struct {
	Model
	FlowID             uuid.UUID         `json:"flowId" gorm:"column:flow_id;type:uuid;not null;index"`
	Provider           Provider          `json:"provider" gorm:"column:provider;not null"`
	ConnectedAccountID *uuid.UUID        `json:"connectedAccountId" gorm:"column:connected_account_id;type:uuid"`
	Settings           datatypes.JSONMap `json:"settings" gorm:"column:settings;type:jsonb"`
	Active             bool              `json:"active" gorm:"column:active;not null"`
}

func (FlowInput) TableName() string {
	return "flow_inputs"
}

// FlowOutput is a destination of a flow. An output without a domain or marked as default
// receives every task whose domain has no dedicated output.
type FlowOutput struct {
	Model
	FlowID             uuid.UUID         `json:"flowId" gorm:"column:flow_id;type:uuid;not null;index"`
	Provider           Provider          `json:"provider" gorm:"column:provider;not null"`
	ConnectedAccountID *uuid.UUID        `json:"connectedAccountId" gorm:"column:connected_account_id;type:uuid"`
	Settings           datatypes.JSONMap `json:"settings" gorm:"column:settings;type:jsonb"`
	Domain             *string           `json:"domain" gorm:"column:domain"`
	IsDefault          bool              `json:"isDefault" gorm:"column:is_default;not null"`

	// canonical field name -> destination property name
	FieldMapping datatypes.JSONType[map[string]string] `json:"fieldMapping" gorm:"column:field_mapping;type:jsonb"`
	// canonical field name -> (ai value -> destination value)
	ValueMap datatypes.JSONType[map[string]map[string]string] `json:"valueMap" gorm:"column:value_map;type:jsonb"`
}

func (FlowOutput) TableName() string {
	return "flow_outputs"
}

func (o FlowOutput) SettingString(key string) string {
	if o.Settings == nil {
		return ""
	}
	v, ok := o.Settings[key].(string)
	if !ok {
		return ""
	}
	return v
}

// CacheKey identifies the destination scope an output points to.
func (o FlowOutput) CacheKey() string {
	account := ""
	if o.ConnectedAccountID != nil {
		account = o.ConnectedAccountID.String()
	}
	return string(o.Provider) + ":" + account + ":" + o.SettingString("projectKey") + o.SettingString("projectId") + o.SettingString("repository")
}
