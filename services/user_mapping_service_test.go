// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/mocks"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestUserMappingServiceDiscover(t *testing.T) {
	teamID := uuid.New()

	t.Run("should register every handle of a user sync comment once", func(t *testing.T) {
		repository := mocks.NewUserMappingRepository(t)
		s := NewUserMappingService(repository)
		repository.On("FindByHandle", teamID, models.ProviderFigma, "file-1", mock.Anything).Return(models.UserMapping{}, gorm.ErrRecordNotFound)
		repository.On("CreateIfNotExists", mock.Anything, mock.MatchedBy(func(m *models.UserMapping) bool {
			return m.MappingType == models.MappingTypeAuto && !m.Active && m.Confidence == 0 && m.DestinationUserID == nil
		})).Return(true, nil).Twice()

		mappings, err := s.Discover(teamID, models.ProviderFigma, "file-1", []string{"@alice", "@bob", "@Alice"})
		assert.NoError(t, err)
		assert.Len(t, mappings, 2)
		assert.Equal(t, "alice", mappings[0].SourceUserID)
		assert.Equal(t, "bob", mappings[1].SourceUserID)
		for _, m := range mappings {
			assert.False(t, m.IsResolved())
		}
	})

	t.Run("should leave existing mappings untouched", func(t *testing.T) {
		repository := mocks.NewUserMappingRepository(t)
		s := NewUserMappingService(repository)
		existing := models.UserMapping{
			SourceUserID:      "alice",
			DestinationUserID: shared.Ptr("acc-1"),
			MappingType:       models.MappingTypeManual,
			Confidence:        1,
			Active:            true,
		}
		repository.On("FindByHandle", teamID, models.ProviderFigma, "file-1", "alice").Return(existing, nil)

		mappings, err := s.Discover(teamID, models.ProviderFigma, "file-1", []string{"alice"})
		assert.NoError(t, err)
		assert.Equal(t, []models.UserMapping{existing}, mappings)
	})

	t.Run("should read back a mapping registered concurrently", func(t *testing.T) {
		repository := mocks.NewUserMappingRepository(t)
		s := NewUserMappingService(repository)
		stored := models.UserMapping{Model: models.Model{ID: uuid.New()}, SourceUserID: "bob"}
		repository.On("FindByHandle", teamID, models.ProviderFigma, "file-1", "bob").Return(models.UserMapping{}, gorm.ErrRecordNotFound)
		repository.On("CreateIfNotExists", mock.Anything, mock.Anything).Return(false, nil)
		repository.On("FindBySource", teamID, models.ProviderFigma, "file-1", "bob").Return(stored, nil)

		mappings, err := s.Discover(teamID, models.ProviderFigma, "file-1", []string{"bob"})
		assert.NoError(t, err)
		assert.Equal(t, stored.ID, mappings[0].ID)
	})
}

func TestUserMappingServiceConfirm(t *testing.T) {
	t.Run("should turn a discovered mapping into an active manual one", func(t *testing.T) {
		repository := mocks.NewUserMappingRepository(t)
		s := NewUserMappingService(repository)
		teamID := uuid.New()
		discovered := models.UserMapping{Model: models.Model{ID: uuid.New()}, TeamID: teamID, SourceUserID: "bob", MappingType: models.MappingTypeAuto}
		repository.On("ReadByTeam", teamID, discovered.ID).Return(discovered, nil)
		repository.On("Save", mock.Anything, mock.Anything).Return(nil)

		confirmed, err := s.Confirm(teamID, discovered.ID, "acc-2", shared.Ptr("Bob"))
		assert.NoError(t, err)
		assert.Equal(t, models.MappingTypeManual, confirmed.MappingType)
		assert.Equal(t, 1.0, confirmed.Confidence)
		assert.True(t, confirmed.IsResolved())
		assert.Equal(t, "Bob", *confirmed.DestinationUserName)
	})

	t.Run("should require a destination user", func(t *testing.T) {
		s := NewUserMappingService(mocks.NewUserMappingRepository(t))
		_, err := s.Confirm(uuid.New(), uuid.New(), "", nil)
		assert.True(t, shared.IsKind(err, shared.ErrorKindValidation))
	})

	t.Run("should return not found for mappings of other teams", func(t *testing.T) {
		repository := mocks.NewUserMappingRepository(t)
		s := NewUserMappingService(repository)
		repository.On("ReadByTeam", mock.Anything, mock.Anything).Return(models.UserMapping{}, gorm.ErrRecordNotFound)

		_, err := s.Confirm(uuid.New(), uuid.New(), "acc-1", nil)
		assert.True(t, shared.IsKind(err, shared.ErrorKindNotFound))
	})
}

func TestUserMappingServiceResolveHandle(t *testing.T) {
	t.Run("should strip the mention prefix", func(t *testing.T) {
		repository := mocks.NewUserMappingRepository(t)
		s := NewUserMappingService(repository)
		teamID := uuid.New()
		repository.On("FindByHandle", teamID, models.ProviderSlack, "T1", "alice").Return(models.UserMapping{SourceUserID: "U1"}, nil)

		m, err := s.ResolveHandle(teamID, models.ProviderSlack, "T1", " @alice")
		assert.NoError(t, err)
		assert.Equal(t, "U1", m.SourceUserID)
	})

	t.Run("should report unknown handles as not found", func(t *testing.T) {
		repository := mocks.NewUserMappingRepository(t)
		s := NewUserMappingService(repository)
		repository.On("FindByHandle", mock.Anything, mock.Anything, mock.Anything, "ghost").Return(models.UserMapping{}, gorm.ErrRecordNotFound)

		_, err := s.ResolveHandle(uuid.New(), models.ProviderSlack, "T1", "ghost")
		assert.True(t, shared.IsKind(err, shared.ErrorKindNotFound))
	})
}

func TestUserMappingServiceSuggest(t *testing.T) {
	teamID := uuid.New()
	users := []dtos.DestinationUser{
		{ID: "acc-1", Name: "Alice Smith", Username: "alice.smith", Email: "alice@example.com"},
		{ID: "acc-2", Name: "Carol Jones", Username: "cjones"},
	}

	t.Run("should record confident matches as inactive suggestions", func(t *testing.T) {
		repository := mocks.NewUserMappingRepository(t)
		s := NewUserMappingService(repository)
		unresolved := []models.UserMapping{
			{Model: models.Model{ID: uuid.New()}, SourceUserID: "alice.smith", MappingType: models.MappingTypeAuto},
			{Model: models.Model{ID: uuid.New()}, SourceUserID: "xq", MappingType: models.MappingTypeAuto},
		}
		repository.On("ListByTeam", teamID, true).Return(unresolved, nil)
		repository.On("Save", mock.Anything, mock.MatchedBy(func(m *models.UserMapping) bool {
			return m.ID == unresolved[0].ID
		})).Return(nil).Once()

		suggested, err := s.Suggest(teamID, users)
		assert.NoError(t, err)
		assert.Len(t, suggested, 1)
		assert.Equal(t, "acc-1", *suggested[0].DestinationUserID)
		assert.False(t, suggested[0].Active)
		assert.Equal(t, models.MappingTypeAuto, suggested[0].MappingType)
		assert.Greater(t, suggested[0].Confidence, userSuggestionThreshold)
	})

	t.Run("should never touch manual mappings", func(t *testing.T) {
		repository := mocks.NewUserMappingRepository(t)
		s := NewUserMappingService(repository)
		repository.On("ListByTeam", teamID, true).Return([]models.UserMapping{
			{SourceUserID: "alice.smith", MappingType: models.MappingTypeManual},
		}, nil)

		suggested, err := s.Suggest(teamID, users)
		assert.NoError(t, err)
		assert.Empty(t, suggested)
	})
}
