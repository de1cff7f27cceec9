// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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

package integrations

import (
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/shared"
	"go.uber.org/fx"
)

// registry selects the adapter of a provider once at dispatch time.
type registry struct {
	sources      map[models.Provider]shared.SourceAdapter
	destinations map[models.Provider]shared.TaskDestination
}

var _ shared.IntegrationRegistry = &registry{}

type RegistryParams struct {
	fx.In
	Sources      []shared.SourceAdapter   `group:"sources"`
	Destinations []shared.TaskDestination `group:"destinations"`
}

func NewRegistry(sources []shared.SourceAdapter, destinations []shared.TaskDestination) *registry {
	r := &registry{
		sources:      make(map[models.Provider]shared.SourceAdapter, len(sources)),
		destinations: make(map[models.Provider]shared.TaskDestination, len(destinations)),
	}
	for _, s := range sources {
		r.sources[s.Provider()] = s
	}
	for _, d := range destinations {
		r.destinations[d.Provider()] = d
	}
	return r
}

func newRegistryFromParams(p RegistryParams) *registry {
	return NewRegistry(p.Sources, p.Destinations)
}

func (r *registry) Source(provider models.Provider) (shared.SourceAdapter, bool) {
	s, ok := r.sources[provider]
	return s, ok
}

func (r *registry) Destination(provider models.Provider) (shared.TaskDestination, bool) {
	d, ok := r.destinations[provider]
	return d, ok
}

// ConnectionTester prefers the destination, github accounts are used for both directions
// and a destination test additionally proves api access.
func (r *registry) ConnectionTester(provider models.Provider) (shared.ConnectionTester, bool) {
	if d, ok := r.destinations[provider]; ok {
		return d, true
	}
	if s, ok := r.sources[provider]; ok {
		return s, true
	}
	return nil, false
}
