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
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/monitoring"
	"github.com/l3montree-dev/threadline/shared"
	"gorm.io/datatypes"
)

type discussionService struct {
	repository shared.DiscussionRepository
	timeNow    func() time.Time
}

var _ shared.DiscussionService = (*discussionService)(nil)

func NewDiscussionService(repository shared.DiscussionRepository) *discussionService {
	return &discussionService{
		repository: repository,
		timeNow:    time.Now,
	}
}

// Ingest stores a normalized discussion event. A re-delivered event returns the stored discussion with created=false.
func (s *discussionService) Ingest(ctx context.Context, account models.ConnectedAccount, event dtos.NormalizedEvent) (models.Discussion, bool, error) {
	if event.Kind != dtos.EventKindDiscussion {
		return models.Discussion{}, false, shared.NewValidationError("ingest", fmt.Errorf("cannot ingest %s event", event.Kind))
	}
	if strings.TrimSpace(event.SourceDedupKey) == "" {
		return models.Discussion{}, false, shared.NewValidationError("ingest", fmt.Errorf("missing dedup key"))
	}

	participants := event.Participants
	if participants == nil {
		participants = []string{}
	}
	raw := datatypes.JSON(event.RawPayload)
	if len(raw) == 0 {
		raw = datatypes.JSON("{}")
	}

	accountID := account.ID
	discussion := models.Discussion{
		TeamID:             account.TeamID,
		SourceType:         account.Provider,
		SourceDedupKey:     event.SourceDedupKey,
		ConnectedAccountID: &accountID,
		SourceWorkspaceID:  event.SourceWorkspaceID,
		SourceThreadID:     event.SourceThreadID,
		SourceURL:          event.SourceURL,
		AuthorID:           event.AuthorID,
		AuthorName:         event.AuthorName,
		Title:              event.Title,
		Content:            event.Content,
		Participants:       datatypes.NewJSONSlice(participants),
		RawPayload:         raw,
		DetectedTasks:      datatypes.NewJSONSlice([]models.DetectedTask{}),
		ProcessingStatus:   models.DiscussionStatusPending,
	}

	created, err := s.repository.CreateIfNotExists(nil, &discussion)
	if err != nil {
		return models.Discussion{}, false, fmt.Errorf("could not store discussion: %w", err)
	}
	monitoring.DiscussionsIngested.WithLabelValues(string(account.Provider), strconv.FormatBool(created)).Inc()

	if !created {
		existing, err := s.repository.ReadByDedupKey(account.TeamID, account.Provider, event.SourceDedupKey)
		if err != nil {
			return models.Discussion{}, false, fmt.Errorf("could not read existing discussion: %w", err)
		}
		slog.Debug("discussion already ingested", "discussionID", existing.ID, "dedupKey", event.SourceDedupKey)
		return existing, false, nil
	}

	slog.Info("ingested discussion", "discussionID", discussion.ID, "teamID", discussion.TeamID, "provider", discussion.SourceType)
	return discussion, true, nil
}

func (s *discussionService) RecordAnalysis(discussionID uuid.UUID, classification dtos.Classification) error {
	tasks := classification.Tasks
	if tasks == nil {
		tasks = []models.DetectedTask{}
	}
	var domain *string
	if classification.Domain != "" {
		domain = &classification.Domain
	}
	if err := s.repository.SaveAnalysis(nil, discussionID, tasks, domain, s.timeNow()); err != nil {
		return fmt.Errorf("could not save analysis: %w", err)
	}
	return nil
}

func (s *discussionService) SetProcessingStatus(discussionID uuid.UUID, status models.DiscussionStatus) error {
	return s.repository.UpdateProcessingStatus(nil, discussionID, status)
}

func (s *discussionService) Get(discussionID uuid.UUID) (models.Discussion, error) {
	discussion, err := s.repository.Read(discussionID)
	if err != nil {
		return models.Discussion{}, notFoundOr("read discussion", err)
	}
	return discussion, nil
}

func (s *discussionService) Read(teamID uuid.UUID, discussionID uuid.UUID) (models.Discussion, error) {
	discussion, err := s.repository.ReadByTeam(teamID, discussionID)
	if err != nil {
		return models.Discussion{}, notFoundOr("read discussion", err)
	}
	return discussion, nil
}

func (s *discussionService) List(teamID uuid.UUID, status *models.DiscussionStatus) ([]models.Discussion, error) {
	return s.repository.ListByTeam(teamID, status)
}
