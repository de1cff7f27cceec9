// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/shared"
	"golang.org/x/sync/singleflight"
)

// destinationDirectory caches schema and user lists per flow output.
// Concurrent jobs for the same output share one upstream request.
type destinationDirectory struct {
	registry          shared.IntegrationRegistry
	schemas           *expirable.LRU[string, []dtos.DestinationProperty]
	users             *expirable.LRU[string, []dtos.DestinationUser]
	singleFlightGroup *singleflight.Group
}

var _ shared.DestinationDirectory = (*destinationDirectory)(nil)

func NewDestinationDirectory(registry shared.IntegrationRegistry) *destinationDirectory {
	return newDestinationDirectory(registry, 256, shared.EnvDuration("DIRECTORY_CACHE_TTL", 10*time.Minute))
}

func newDestinationDirectory(registry shared.IntegrationRegistry, size int, ttl time.Duration) *destinationDirectory {
	return &destinationDirectory{
		registry:          registry,
		schemas:           expirable.NewLRU[string, []dtos.DestinationProperty](size, nil, ttl),
		users:             expirable.NewLRU[string, []dtos.DestinationUser](size, nil, ttl),
		singleFlightGroup: &singleflight.Group{},
	}
}

func (d *destinationDirectory) destination(output models.FlowOutput) (shared.TaskDestination, error) {
	destination, ok := d.registry.Destination(output.Provider)
	if !ok {
		return nil, shared.NewFatalError("destination", fmt.Errorf("provider %s cannot be used as destination", output.Provider))
	}
	return destination, nil
}

func (d *destinationDirectory) Schema(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput) ([]dtos.DestinationProperty, error) {
	key := output.CacheKey()
	if schema, ok := d.schemas.Get(key); ok {
		return schema, nil
	}
	destination, err := d.destination(output)
	if err != nil {
		return nil, err
	}
	v, err, _ := d.singleFlightGroup.Do("schema/"+key, func() (any, error) {
		if schema, ok := d.schemas.Get(key); ok {
			return schema, nil
		}
		schema, err := destination.FetchSchema(ctx, account, output)
		if err != nil {
			return nil, err
		}
		d.schemas.Add(key, schema)
		return schema, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dtos.DestinationProperty), nil
}

func (d *destinationDirectory) Users(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput) ([]dtos.DestinationUser, error) {
	key := output.CacheKey()
	if users, ok := d.users.Get(key); ok {
		return users, nil
	}
	destination, err := d.destination(output)
	if err != nil {
		return nil, err
	}
	v, err, _ := d.singleFlightGroup.Do("users/"+key, func() (any, error) {
		if users, ok := d.users.Get(key); ok {
			return users, nil
		}
		users, err := destination.ListUsers(ctx, account, output)
		if err != nil {
			return nil, err
		}
		d.users.Add(key, users)
		return users, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dtos.DestinationUser), nil
}

func (d *destinationDirectory) Invalidate(output models.FlowOutput) {
	key := output.CacheKey()
	d.schemas.Remove(key)
	d.users.Remove(key)
}
