// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/mocks"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDiscussionServiceIngest(t *testing.T) {
	account := models.ConnectedAccount{
		Model:    models.Model{ID: uuid.New()},
		TeamID:   uuid.New(),
		Provider: models.ProviderSlack,
	}
	event := dtos.NormalizedEvent{
		Kind:              dtos.EventKindDiscussion,
		SourceDedupKey:    "T1:C1:1700000000.000100",
		SourceWorkspaceID: "T1",
		SourceThreadID:    "1700000000.000100",
		Content:           "deploy is broken",
		RawPayload:        json.RawMessage(`{"type":"event_callback"}`),
	}

	t.Run("should store a new discussion as pending", func(t *testing.T) {
		repository := mocks.NewDiscussionRepository(t)
		s := NewDiscussionService(repository)
		repository.On("CreateIfNotExists", mock.Anything, mock.MatchedBy(func(d *models.Discussion) bool {
			return d.TeamID == account.TeamID &&
				d.SourceType == models.ProviderSlack &&
				d.SourceDedupKey == event.SourceDedupKey &&
				*d.ConnectedAccountID == account.ID &&
				d.ProcessingStatus == models.DiscussionStatusPending &&
				string(d.RawPayload) == `{"type":"event_callback"}`
		})).Return(true, nil)

		discussion, created, err := s.Ingest(context.Background(), account, event)
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "deploy is broken", discussion.Content)
		assert.NotNil(t, discussion.Participants)
	})

	t.Run("should return the stored discussion when the event is delivered again", func(t *testing.T) {
		repository := mocks.NewDiscussionRepository(t)
		s := NewDiscussionService(repository)
		stored := models.Discussion{Model: models.Model{ID: uuid.New()}, TeamID: account.TeamID, SourceDedupKey: event.SourceDedupKey}
		repository.On("CreateIfNotExists", mock.Anything, mock.Anything).Return(false, nil)
		repository.On("ReadByDedupKey", account.TeamID, models.ProviderSlack, event.SourceDedupKey).Return(stored, nil)

		discussion, created, err := s.Ingest(context.Background(), account, event)
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, stored.ID, discussion.ID)
	})

	t.Run("should reject events without a dedup key", func(t *testing.T) {
		s := NewDiscussionService(mocks.NewDiscussionRepository(t))
		e := event
		e.SourceDedupKey = " "
		_, _, err := s.Ingest(context.Background(), account, e)
		assert.True(t, shared.IsKind(err, shared.ErrorKindValidation))
	})

	t.Run("should reject events which are not discussions", func(t *testing.T) {
		s := NewDiscussionService(mocks.NewDiscussionRepository(t))
		_, _, err := s.Ingest(context.Background(), account, dtos.Ignored("bot message"))
		assert.True(t, shared.IsKind(err, shared.ErrorKindValidation))
	})
}

func TestDiscussionServiceRecordAnalysis(t *testing.T) {
	t.Run("should store an empty domain as null", func(t *testing.T) {
		repository := mocks.NewDiscussionRepository(t)
		s := NewDiscussionService(repository)
		id := uuid.New()
		repository.On("SaveAnalysis", mock.Anything, id, []models.DetectedTask{}, (*string)(nil), mock.Anything).Return(nil)

		assert.NoError(t, s.RecordAnalysis(id, dtos.Classification{}))
	})
}
