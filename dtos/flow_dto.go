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

import "github.com/google/uuid"

type FlowCreateRequest struct {
	Name             string   `json:"name" validate:"required,max=255"`
	Active           bool     `json:"active"`
	AIEnabled        bool     `json:"aiEnabled"`
	AvailableDomains []string `json:"availableDomains" validate:"dive,required"`
	SystemPrompt     *string  `json:"systemPrompt"`
	TaskPrompt       *string  `json:"taskPrompt"`
	MaxAttempts      *int     `json:"maxAttempts" validate:"omitempty,min=1,max=20"`
}

type FlowInputCreateRequest struct {
	Provider           string         `json:"provider" yaml:"provider" validate:"required,oneof=slack figma email github"`
	ConnectedAccountID *uuid.UUID     `json:"connectedAccountId" yaml:"connectedAccountId"`
	Settings           map[string]any `json:"settings" yaml:"settings"`
}

type FlowOutputCreateRequest struct {
	Provider           string                       `json:"provider" yaml:"provider" validate:"required,oneof=jira gitlab github"`
	ConnectedAccountID *uuid.UUID                   `json:"connectedAccountId" yaml:"connectedAccountId" validate:"required"`
	Settings           map[string]any               `json:"settings" yaml:"settings"`
	Domain             *string                      `json:"domain" yaml:"domain"`
	IsDefault          bool                         `json:"isDefault" yaml:"isDefault"`
	FieldMapping       map[string]string            `json:"fieldMapping" yaml:"fieldMapping"`
	ValueMap           map[string]map[string]string `json:"valueMap" yaml:"valueMap"`
}

// FlowDefinition is the file format of `threadline-cli flows import`.
type FlowDefinition struct {
	Name             string                    `yaml:"name" validate:"required"`
	Active           bool                      `yaml:"active"`
	AIEnabled        bool                      `yaml:"aiEnabled"`
	AvailableDomains []string                  `yaml:"availableDomains"`
	SystemPrompt     *string                   `yaml:"systemPrompt"`
	TaskPrompt       *string                   `yaml:"taskPrompt"`
	MaxAttempts      *int                      `yaml:"maxAttempts" validate:"omitempty,min=1,max=20"`
	Inputs           []FlowInputCreateRequest  `yaml:"inputs" validate:"dive"`
	Outputs          []FlowOutputCreateRequest `yaml:"outputs" validate:"dive"`
}
