// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
)

func TestDestinationDirectory(t *testing.T) {
	account := models.ConnectedAccount{Model: models.Model{ID: uuid.New()}, Provider: models.ProviderGitLab}
	output := models.FlowOutput{
		Model:    models.Model{ID: uuid.New()},
		Provider: models.ProviderGitLab,
		Settings: datatypes.JSONMap{"projectId": "42"},
	}
	schema := []dtos.DestinationProperty{{Key: "labels", Name: "Labels", Type: dtos.PropertyTypeMultiSelect}}

	t.Run("should fetch the schema once and serve it from the cache", func(t *testing.T) {
		registry := mocks.NewIntegrationRegistry(t)
		destination := mocks.NewTaskDestination(t)
		registry.On("Destination", models.ProviderGitLab).Return(destination, true)
		destination.On("FetchSchema", mock.Anything, account, output).Return(schema, nil).Once()

		d := newDestinationDirectory(registry, 8, time.Minute)
		for i := 0; i < 3; i++ {
			got, err := d.Schema(context.Background(), account, output)
			assert.NoError(t, err)
			assert.Equal(t, schema, got)
		}
	})

	t.Run("should share one request between concurrent callers", func(t *testing.T) {
		registry := mocks.NewIntegrationRegistry(t)
		destination := mocks.NewTaskDestination(t)
		registry.On("Destination", models.ProviderGitLab).Return(destination, true)
		destination.On("ListUsers", mock.Anything, account, output).After(20*time.Millisecond).
			Return([]dtos.DestinationUser{{ID: "7", Name: "Alice"}}, nil)

		d := newDestinationDirectory(registry, 8, time.Minute)
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				users, err := d.Users(context.Background(), account, output)
				assert.NoError(t, err)
				assert.Len(t, users, 1)
			}()
		}
		wg.Wait()
		destination.AssertNumberOfCalls(t, "ListUsers", 1)
	})

	t.Run("should fetch again after invalidation", func(t *testing.T) {
		registry := mocks.NewIntegrationRegistry(t)
		destination := mocks.NewTaskDestination(t)
		registry.On("Destination", models.ProviderGitLab).Return(destination, true)
		destination.On("FetchSchema", mock.Anything, account, output).Return(schema, nil).Twice()

		d := newDestinationDirectory(registry, 8, time.Minute)
		_, err := d.Schema(context.Background(), account, output)
		assert.NoError(t, err)
		d.Invalidate(output)
		_, err = d.Schema(context.Background(), account, output)
		assert.NoError(t, err)
	})

	t.Run("should not cache failures", func(t *testing.T) {
		registry := mocks.NewIntegrationRegistry(t)
		destination := mocks.NewTaskDestination(t)
		registry.On("Destination", models.ProviderGitLab).Return(destination, true)
		destination.On("FetchSchema", mock.Anything, account, output).Return(nil, assert.AnError).Once()
		destination.On("FetchSchema", mock.Anything, account, output).Return(schema, nil).Once()

		d := newDestinationDirectory(registry, 8, time.Minute)
		_, err := d.Schema(context.Background(), account, output)
		assert.ErrorIs(t, err, assert.AnError)
		got, err := d.Schema(context.Background(), account, output)
		assert.NoError(t, err)
		assert.Equal(t, schema, got)
	})
}
