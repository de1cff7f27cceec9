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

type PropertyType string

const (
	PropertyTypeSelect      PropertyType = "select"
	PropertyTypeMultiSelect PropertyType = "multi_select"
	PropertyTypeStatus      PropertyType = "status"
	PropertyTypeUser        PropertyType = "user"
	PropertyTypeDate        PropertyType = "date"
	PropertyTypeText        PropertyType = "text"
)

func (t PropertyType) IsEnumerated() bool {
	return t == PropertyTypeSelect || t == PropertyTypeMultiSelect || t == PropertyTypeStatus
}

type PropertyOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DestinationProperty is one field of the tracker a task is created in.
// Name is what fuzzy matching looks at, Key is what the destination API expects.
type DestinationProperty struct {
	Key     string           `json:"key"`
	Name    string           `json:"name"`
	Type    PropertyType     `json:"type"`
	Options []PropertyOption `json:"options,omitempty"`
}

type DestinationUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// DestinationTask is a fully mapped task ready to be posted.
// Fields is keyed by DestinationProperty.Key.
type DestinationTask struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Fields      map[string]any `json:"fields"`
	AssigneeID  *string        `json:"assigneeId,omitempty"`
}

type CreatedTask struct {
	ExternalID string  `json:"externalId"`
	URL        *string `json:"url,omitempty"`
}
