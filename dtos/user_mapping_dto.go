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

type UserMappingCreateRequest struct {
	SourceType          string  `json:"sourceType" validate:"required,oneof=slack figma email github"`
	SourceWorkspaceID   string  `json:"sourceWorkspaceId"`
	SourceUserID        string  `json:"sourceUserId" validate:"required"`
	SourceUserEmail     *string `json:"sourceUserEmail" validate:"omitempty,email"`
	SourceUserName      *string `json:"sourceUserName"`
	DestinationUserID   string  `json:"destinationUserId" validate:"required"`
	DestinationUserName *string `json:"destinationUserName"`
}

type UserMappingConfirmRequest struct {
	DestinationUserID   string  `json:"destinationUserId" validate:"required"`
	DestinationUserName *string `json:"destinationUserName"`
}

type UserMappingSuggestRequest struct {
	FlowOutputID uuid.UUID `json:"flowOutputId" validate:"required"`
}
