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
	"github.com/l3montree-dev/threadline/integrations/emailint"
	"github.com/l3montree-dev/threadline/integrations/figmaint"
	"github.com/l3montree-dev/threadline/integrations/githubint"
	"github.com/l3montree-dev/threadline/integrations/gitlabint"
	"github.com/l3montree-dev/threadline/integrations/jiraint"
	"github.com/l3montree-dev/threadline/integrations/slackint"
	"github.com/l3montree-dev/threadline/shared"
	"go.uber.org/fx"
)

func asSource(f any) any {
	return fx.Annotate(f, fx.As(new(shared.SourceAdapter)), fx.ResultTags(`group:"sources"`))
}

func asDestination(f any) any {
	return fx.Annotate(f, fx.As(new(shared.TaskDestination)), fx.ResultTags(`group:"destinations"`))
}

// Module provides all source adapters, destinations and the registry
var Module = fx.Options(
	fx.Provide(asSource(slackint.NewSlackAdapter)),
	fx.Provide(asSource(figmaint.NewFigmaAdapter)),
	fx.Provide(asSource(emailint.NewEmailAdapter)),

	// github is a source and a destination, both share one instance
	fx.Provide(githubint.NewGithubIntegration),
	fx.Provide(asSource(func(g *githubint.GithubIntegration) *githubint.GithubIntegration { return g })),
	fx.Provide(asDestination(func(g *githubint.GithubIntegration) *githubint.GithubIntegration { return g })),

	fx.Provide(asDestination(jiraint.NewJiraDestination)),
	fx.Provide(asDestination(gitlabint.NewGitlabDestination)),

	fx.Provide(fx.Annotate(newRegistryFromParams, fx.As(new(shared.IntegrationRegistry)))),
)
