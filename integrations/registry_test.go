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
	"testing"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModule(t *testing.T) {
	t.Run("should register every provider", func(t *testing.T) {
		var reg shared.IntegrationRegistry
		app := fxtest.New(t, Module, fx.Populate(&reg))
		defer app.RequireStart().RequireStop()

		for _, p := range []models.Provider{models.ProviderSlack, models.ProviderFigma, models.ProviderEmail, models.ProviderGitHub} {
			_, ok := reg.Source(p)
			assert.True(t, ok, "source %s", p)
		}
		for _, p := range []models.Provider{models.ProviderJira, models.ProviderGitLab, models.ProviderGitHub} {
			_, ok := reg.Destination(p)
			assert.True(t, ok, "destination %s", p)
		}
		for _, p := range []models.Provider{models.ProviderSlack, models.ProviderFigma, models.ProviderEmail, models.ProviderGitHub, models.ProviderJira, models.ProviderGitLab} {
			_, ok := reg.ConnectionTester(p)
			assert.True(t, ok, "connection tester %s", p)
		}
	})

	t.Run("should not know unsupported providers", func(t *testing.T) {
		reg := NewRegistry(nil, nil)
		_, ok := reg.Source(models.ProviderJira)
		assert.False(t, ok)
		_, ok = reg.ConnectionTester("notion")
		assert.False(t, ok)
	})
}
