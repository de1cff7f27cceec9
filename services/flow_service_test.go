// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"errors"
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

func TestFlowServiceCanonicalFlow(t *testing.T) {
	teamID := uuid.New()

	t.Run("should prefer the first active flow", func(t *testing.T) {
		repository := mocks.NewFlowRepository(t)
		s := NewFlowService(repository, mocks.NewConnectedAccountRepository(t))
		repository.On("ListByTeam", teamID).Return([]models.Flow{
			{Name: "draft"}, {Name: "main", Active: true}, {Name: "other", Active: true},
		}, nil)

		flow, err := s.CanonicalFlow(teamID)
		assert.NoError(t, err)
		assert.Equal(t, "main", flow.Name)
	})

	t.Run("should fall back to the oldest flow", func(t *testing.T) {
		repository := mocks.NewFlowRepository(t)
		s := NewFlowService(repository, mocks.NewConnectedAccountRepository(t))
		repository.On("ListByTeam", teamID).Return([]models.Flow{{Name: "first"}, {Name: "second"}}, nil)

		flow, err := s.CanonicalFlow(teamID)
		assert.NoError(t, err)
		assert.Equal(t, "first", flow.Name)
	})

	t.Run("should fail permanently without any flow", func(t *testing.T) {
		repository := mocks.NewFlowRepository(t)
		s := NewFlowService(repository, mocks.NewConnectedAccountRepository(t))
		repository.On("ListByTeam", teamID).Return([]models.Flow{}, nil)

		_, err := s.CanonicalFlow(teamID)
		assert.True(t, shared.IsKind(err, shared.ErrorKindFatal))
	})
}

func TestFlowServiceRouteOutput(t *testing.T) {
	s := NewFlowService(nil, nil)
	backend := models.FlowOutput{Model: models.Model{ID: uuid.New()}, Domain: shared.Ptr("Backend")}
	design := models.FlowOutput{Model: models.Model{ID: uuid.New()}, Domain: shared.Ptr("design")}
	fallback := models.FlowOutput{Model: models.Model{ID: uuid.New()}, IsDefault: true}

	t.Run("should pick the output bound to the domain", func(t *testing.T) {
		out, err := s.RouteOutput(models.Flow{Outputs: []models.FlowOutput{fallback, backend, design}}, "backend")
		assert.NoError(t, err)
		assert.Equal(t, backend.ID, out.ID)
	})

	t.Run("should use the default output for unknown domains", func(t *testing.T) {
		out, err := s.RouteOutput(models.Flow{Outputs: []models.FlowOutput{backend, fallback}}, "mobile")
		assert.NoError(t, err)
		assert.Equal(t, fallback.ID, out.ID)
	})

	t.Run("should use the only output", func(t *testing.T) {
		out, err := s.RouteOutput(models.Flow{Outputs: []models.FlowOutput{design}}, "")
		assert.NoError(t, err)
		assert.Equal(t, design.ID, out.ID)
	})

	t.Run("should fail with a routing error otherwise", func(t *testing.T) {
		_, err := s.RouteOutput(models.Flow{Outputs: []models.FlowOutput{backend, design}}, "mobile")
		assert.True(t, shared.IsKind(err, shared.ErrorKindRouting))

		_, err = s.RouteOutput(models.Flow{}, "backend")
		assert.True(t, shared.IsKind(err, shared.ErrorKindRouting))
	})
}

func TestFlowServiceCreate(t *testing.T) {
	t.Run("should derive a unique slug from the name", func(t *testing.T) {
		repository := mocks.NewFlowRepository(t)
		s := NewFlowService(repository, mocks.NewConnectedAccountRepository(t))
		teamID := uuid.New()
		repository.On("ReadBySlug", teamID, "support-inbox").Return(models.Flow{}, nil)
		repository.On("ReadBySlug", teamID, "support-inbox-2").Return(models.Flow{}, gorm.ErrRecordNotFound)
		repository.On("Create", mock.Anything, mock.Anything).Return(nil)

		flow, err := s.Create(teamID, dtos.FlowCreateRequest{Name: "Support Inbox"})
		assert.NoError(t, err)
		assert.Equal(t, "support-inbox-2", flow.Slug)
		assert.NotNil(t, flow.AvailableDomains)
	})
}

func TestFlowServiceAddOutput(t *testing.T) {
	teamID := uuid.New()
	flowID := uuid.New()
	accountID := uuid.New()

	t.Run("should reject accounts of another provider", func(t *testing.T) {
		repository := mocks.NewFlowRepository(t)
		accounts := mocks.NewConnectedAccountRepository(t)
		s := NewFlowService(repository, accounts)
		repository.On("ReadByTeam", teamID, flowID).Return(models.Flow{Model: models.Model{ID: flowID}}, nil)
		accounts.On("ReadByTeam", teamID, accountID).Return(models.ConnectedAccount{Provider: models.ProviderSlack}, nil)

		_, err := s.AddOutput(teamID, flowID, dtos.FlowOutputCreateRequest{Provider: "jira", ConnectedAccountID: &accountID})
		assert.True(t, shared.IsKind(err, shared.ErrorKindValidation))
	})

	t.Run("should reject value maps with keys differing only in case", func(t *testing.T) {
		repository := mocks.NewFlowRepository(t)
		accounts := mocks.NewConnectedAccountRepository(t)
		s := NewFlowService(repository, accounts)
		repository.On("ReadByTeam", teamID, flowID).Return(models.Flow{Model: models.Model{ID: flowID}}, nil)
		accounts.On("ReadByTeam", teamID, accountID).Return(models.ConnectedAccount{Provider: models.ProviderJira}, nil)

		_, err := s.AddOutput(teamID, flowID, dtos.FlowOutputCreateRequest{
			Provider:           "jira",
			ConnectedAccountID: &accountID,
			ValueMap:           map[string]map[string]string{"priority": {"High": "P1", "high": "P2"}},
		})
		assert.True(t, shared.IsKind(err, shared.ErrorKindValidation))
		assert.ErrorContains(t, err, "High/high")
		repository.AssertNotCalled(t, "CreateOutput", mock.Anything, mock.Anything)
	})

	t.Run("should store the output with empty rule maps", func(t *testing.T) {
		repository := mocks.NewFlowRepository(t)
		accounts := mocks.NewConnectedAccountRepository(t)
		s := NewFlowService(repository, accounts)
		repository.On("ReadByTeam", teamID, flowID).Return(models.Flow{Model: models.Model{ID: flowID}}, nil)
		accounts.On("ReadByTeam", teamID, accountID).Return(models.ConnectedAccount{Provider: models.ProviderJira}, nil)
		repository.On("CreateOutput", mock.Anything, mock.Anything).Return(nil)

		output, err := s.AddOutput(teamID, flowID, dtos.FlowOutputCreateRequest{Provider: "jira", ConnectedAccountID: &accountID, IsDefault: true})
		assert.NoError(t, err)
		assert.Equal(t, flowID, output.FlowID)
		assert.NotNil(t, output.FieldMapping.Data())
		assert.True(t, output.IsDefault)
	})
}

func TestFlowServiceImport(t *testing.T) {
	teamID := uuid.New()
	accountID := uuid.New()
	def := dtos.FlowDefinition{
		Name:      "Design feedback",
		Active:    true,
		AIEnabled: true,
		Inputs:    []dtos.FlowInputCreateRequest{{Provider: "figma"}},
		Outputs:   []dtos.FlowOutputCreateRequest{{Provider: "jira", ConnectedAccountID: &accountID, IsDefault: true}},
	}

	t.Run("should create the flow with inputs and outputs in one transaction", func(t *testing.T) {
		repository := mocks.NewFlowRepository(t)
		accounts := mocks.NewConnectedAccountRepository(t)
		s := NewFlowService(repository, accounts)
		repository.On("ReadBySlug", teamID, "design-feedback").Return(models.Flow{}, gorm.ErrRecordNotFound)
		repository.On("Transaction", mock.Anything).Return(func(fn func(tx shared.DB) error) error {
			return fn(nil)
		})
		repository.On("Create", mock.Anything, mock.Anything).Return(nil)
		repository.On("CreateInput", mock.Anything, mock.Anything).Return(nil)
		repository.On("CreateOutput", mock.Anything, mock.Anything).Return(nil)
		accounts.On("ReadByTeam", teamID, accountID).Return(models.ConnectedAccount{Provider: models.ProviderJira}, nil)

		flow, err := s.Import(teamID, def)
		assert.NoError(t, err)
		assert.Equal(t, "design-feedback", flow.Slug)
		assert.Len(t, flow.Inputs, 1)
		assert.Len(t, flow.Outputs, 1)
	})

	t.Run("should reject invalid definitions before touching the database", func(t *testing.T) {
		s := NewFlowService(mocks.NewFlowRepository(t), mocks.NewConnectedAccountRepository(t))
		invalid := def
		invalid.Name = ""
		_, err := s.Import(teamID, invalid)
		assert.True(t, shared.IsKind(err, shared.ErrorKindValidation))
	})

	t.Run("should surface errors raised inside the transaction", func(t *testing.T) {
		repository := mocks.NewFlowRepository(t)
		accounts := mocks.NewConnectedAccountRepository(t)
		s := NewFlowService(repository, accounts)
		repository.On("ReadBySlug", teamID, "design-feedback").Return(models.Flow{}, gorm.ErrRecordNotFound)
		repository.On("Transaction", mock.Anything).Return(func(fn func(tx shared.DB) error) error {
			return fn(nil)
		})
		repository.On("Create", mock.Anything, mock.Anything).Return(nil)
		repository.On("CreateInput", mock.Anything, mock.Anything).Return(nil)
		accounts.On("ReadByTeam", teamID, accountID).Return(models.ConnectedAccount{}, errors.New("connection reset"))

		_, err := s.Import(teamID, def)
		assert.Error(t, err)
	})
}
