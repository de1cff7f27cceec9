package services

import (
	"github.com/l3montree-dev/threadline/classifier"
	"github.com/l3montree-dev/threadline/shared"
	"go.uber.org/fx"
)

// ServiceModule provides all service-layer constructors as their interfaces
var ServiceModule = fx.Options(
	fx.Provide(fx.Annotate(NewConfigService, fx.As(new(shared.ConfigService)))),
	fx.Provide(fx.Annotate(NewDatabaseLeaderElector, fx.As(new(shared.LeaderElector)))),
	fx.Provide(fx.Annotate(NewConnectedAccountService, fx.As(new(shared.ConnectedAccountService)))),
	fx.Provide(fx.Annotate(NewDiscussionService, fx.As(new(shared.DiscussionService)))),
	fx.Provide(fx.Annotate(NewUserMappingService, fx.As(new(shared.UserMappingService)))),
	fx.Provide(fx.Annotate(NewFlowService, fx.As(new(shared.FlowService)))),
	fx.Provide(fx.Annotate(NewDestinationDirectory, fx.As(new(shared.DestinationDirectory)))),
	fx.Provide(fx.Annotate(classifier.NewClientFromEnv, fx.As(new(shared.Classifier)))),
	fx.Provide(fx.Annotate(NewJobService, fx.As(new(shared.JobService)))),
)
