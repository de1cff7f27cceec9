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

package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/mapping"
	"github.com/l3montree-dev/threadline/shared"
	"gorm.io/gorm"
)

// suggestions at or below this score are not recorded
const userSuggestionThreshold = 0.5

type userMappingService struct {
	repository shared.UserMappingRepository
}

var _ shared.UserMappingService = (*userMappingService)(nil)

func NewUserMappingService(repository shared.UserMappingRepository) *userMappingService {
	return &userMappingService{repository: repository}
}

func (s *userMappingService) Resolve(teamID uuid.UUID, sourceType models.Provider, workspaceID string, sourceUserID string) (models.UserMapping, error) {
	m, err := s.repository.FindBySource(teamID, sourceType, workspaceID, sourceUserID)
	if err != nil {
		return models.UserMapping{}, notFoundOr("resolve user", err)
	}
	return m, nil
}

func (s *userMappingService) ResolveHandle(teamID uuid.UUID, sourceType models.Provider, workspaceID string, handle string) (models.UserMapping, error) {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if handle == "" {
		return models.UserMapping{}, shared.NewNotFoundError("resolve user", errors.New("empty handle"))
	}
	m, err := s.repository.FindByHandle(teamID, sourceType, workspaceID, handle)
	if err != nil {
		return models.UserMapping{}, notFoundOr("resolve user", err)
	}
	return m, nil
}

// Confirm links a mapping to a destination user. Confirmed mappings are manual, fully confident and active.
func (s *userMappingService) Confirm(teamID uuid.UUID, mappingID uuid.UUID, destinationUserID string, destinationUserName *string) (models.UserMapping, error) {
	if strings.TrimSpace(destinationUserID) == "" {
		return models.UserMapping{}, shared.NewValidationError("confirm user mapping", errors.New("destination user id is required"))
	}
	m, err := s.repository.ReadByTeam(teamID, mappingID)
	if err != nil {
		return models.UserMapping{}, notFoundOr("confirm user mapping", err)
	}
	m.DestinationUserID = &destinationUserID
	if destinationUserName != nil {
		m.DestinationUserName = destinationUserName
	}
	m.MappingType = models.MappingTypeManual
	m.Confidence = 1.0
	m.Active = true
	if err := s.repository.Save(nil, &m); err != nil {
		return models.UserMapping{}, fmt.Errorf("could not confirm user mapping: %w", err)
	}
	return m, nil
}

// Discover registers source handles as inactive mappings without a destination user.
// Handles which are already known are returned untouched.
func (s *userMappingService) Discover(teamID uuid.UUID, sourceType models.Provider, workspaceID string, handles []string) ([]models.UserMapping, error) {
	result := make([]models.UserMapping, 0, len(handles))
	seen := make(map[string]bool, len(handles))
	for _, handle := range handles {
		handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
		if handle == "" || seen[strings.ToLower(handle)] {
			continue
		}
		seen[strings.ToLower(handle)] = true

		existing, err := s.repository.FindByHandle(teamID, sourceType, workspaceID, handle)
		if err == nil {
			result = append(result, existing)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("could not look up user mapping: %w", err)
		}

		name := handle
		m := models.UserMapping{
			TeamID:            teamID,
			SourceType:        sourceType,
			SourceWorkspaceID: workspaceID,
			SourceUserID:      handle,
			SourceUserName:    &name,
			MappingType:       models.MappingTypeAuto,
			Confidence:        0,
			Active:            false,
		}
		created, err := s.repository.CreateIfNotExists(nil, &m)
		if err != nil {
			return nil, fmt.Errorf("could not create user mapping: %w", err)
		}
		if !created {
			// a concurrent delivery registered the same handle
			m, err = s.repository.FindBySource(teamID, sourceType, workspaceID, handle)
			if err != nil {
				return nil, fmt.Errorf("could not read user mapping: %w", err)
			}
		} else {
			slog.Info("discovered source user", "teamID", teamID, "sourceType", sourceType, "handle", handle)
		}
		result = append(result, m)
	}
	return result, nil
}

func (s *userMappingService) CreateManual(teamID uuid.UUID, req dtos.UserMappingCreateRequest) (models.UserMapping, error) {
	sourceType := models.Provider(req.SourceType)
	sourceUserID := strings.TrimPrefix(strings.TrimSpace(req.SourceUserID), "@")
	destinationUserID := req.DestinationUserID

	m, err := s.repository.FindBySource(teamID, sourceType, req.SourceWorkspaceID, sourceUserID)
	switch {
	case err == nil:
		// confirm the discovered mapping instead of creating a duplicate
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = models.UserMapping{
			TeamID:            teamID,
			SourceType:        sourceType,
			SourceWorkspaceID: req.SourceWorkspaceID,
			SourceUserID:      sourceUserID,
		}
	default:
		return models.UserMapping{}, fmt.Errorf("could not look up user mapping: %w", err)
	}

	if req.SourceUserEmail != nil {
		m.SourceUserEmail = req.SourceUserEmail
	}
	if req.SourceUserName != nil {
		m.SourceUserName = req.SourceUserName
	}
	m.DestinationUserID = &destinationUserID
	m.DestinationUserName = req.DestinationUserName
	m.MappingType = models.MappingTypeManual
	m.Confidence = 1.0
	m.Active = true

	if m.ID == uuid.Nil {
		err = s.repository.Create(nil, &m)
	} else {
		err = s.repository.Save(nil, &m)
	}
	if err != nil {
		return models.UserMapping{}, fmt.Errorf("could not save user mapping: %w", err)
	}
	return m, nil
}

func userScore(m models.UserMapping, u dtos.DestinationUser) float64 {
	sourceNames := []string{m.SourceUserID}
	if m.SourceUserName != nil {
		sourceNames = append(sourceNames, *m.SourceUserName)
	}
	if m.SourceUserEmail != nil {
		sourceNames = append(sourceNames, *m.SourceUserEmail)
	}
	destNames := []string{u.Name, u.Username, u.Email}

	best := 0.0
	for _, a := range sourceNames {
		for _, b := range destNames {
			if b == "" {
				continue
			}
			if s := mapping.Similarity(a, b); s > best {
				best = s
			}
		}
	}
	return best
}

// Suggest fuzzy matches unresolved mappings against destination users.
// A suggestion is recorded as auto mapping but stays inactive until a human confirms it.
func (s *userMappingService) Suggest(teamID uuid.UUID, users []dtos.DestinationUser) ([]models.UserMapping, error) {
	unresolved, err := s.repository.ListByTeam(teamID, true)
	if err != nil {
		return nil, err
	}

	suggested := make([]models.UserMapping, 0)
	for _, m := range unresolved {
		if m.MappingType == models.MappingTypeManual {
			continue
		}
		var best *dtos.DestinationUser
		bestScore := 0.0
		for i := range users {
			if score := userScore(m, users[i]); score > bestScore {
				bestScore = score
				best = &users[i]
			}
		}
		if best == nil || bestScore <= userSuggestionThreshold {
			continue
		}
		if m.DestinationUserID != nil && *m.DestinationUserID == best.ID && m.Confidence >= bestScore {
			continue
		}

		id := best.ID
		name := best.Name
		m.DestinationUserID = &id
		m.DestinationUserName = &name
		m.MappingType = models.MappingTypeAuto
		m.Confidence = bestScore
		m.Active = false
		if err := s.repository.Save(nil, &m); err != nil {
			return nil, fmt.Errorf("could not save user mapping suggestion: %w", err)
		}
		suggested = append(suggested, m)
	}
	return suggested, nil
}

func (s *userMappingService) List(teamID uuid.UUID, unresolvedOnly bool) ([]models.UserMapping, error) {
	return s.repository.ListByTeam(teamID, unresolvedOnly)
}
