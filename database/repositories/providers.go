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

package repositories

import (
	"github.com/l3montree-dev/threadline/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewConfigRepository, fx.As(new(shared.ConfigRepository)))),
	fx.Provide(fx.Annotate(NewConnectedAccountRepository, fx.As(new(shared.ConnectedAccountRepository)))),
	fx.Provide(fx.Annotate(NewFlowRepository, fx.As(new(shared.FlowRepository)))),
	fx.Provide(fx.Annotate(NewDiscussionRepository, fx.As(new(shared.DiscussionRepository)))),
	fx.Provide(fx.Annotate(NewTaskRepository, fx.As(new(shared.TaskRepository)))),
	fx.Provide(fx.Annotate(NewJobRepository, fx.As(new(shared.JobRepository)))),
	fx.Provide(fx.Annotate(NewUserMappingRepository, fx.As(new(shared.UserMappingRepository)))),
)
