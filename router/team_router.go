// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"os"

	"github.com/l3montree-dev/threadline/controllers"
	"github.com/l3montree-dev/threadline/middlewares"
	"github.com/labstack/echo/v4"
)

type TeamRouter struct {
	*echo.Group
}

func NewTeamRouter(
	apiV1Router APIV1Router,
	connectedAccountController *controllers.ConnectedAccountController,
	flowController *controllers.FlowController,
	discussionController *controllers.DiscussionController,
	jobController *controllers.JobController,
	userMappingController *controllers.UserMappingController,
) TeamRouter {
	/**
	Team scoped router
	All routes below this line require the api token and are scoped to one team.
	*/
	teamRouter := apiV1Router.Group.Group("/teams/:teamID",
		middlewares.APITokenAuth(os.Getenv("API_TOKEN")),
		middlewares.TeamMiddleware(),
	)

	accountRouter := teamRouter.Group("/accounts")
	accountRouter.GET("/", connectedAccountController.List)
	accountRouter.POST("/", connectedAccountController.Create)
	accountRouter.POST("/:accountID/verify/", connectedAccountController.Verify)
	accountRouter.DELETE("/:accountID/", connectedAccountController.Delete)

	flowRouter := teamRouter.Group("/flows")
	flowRouter.GET("/", flowController.List)
	flowRouter.POST("/", flowController.Create)
	flowRouter.GET("/:flowID/", flowController.Read)
	flowRouter.POST("/:flowID/activate/", flowController.Activate)
	flowRouter.POST("/:flowID/deactivate/", flowController.Deactivate)
	flowRouter.POST("/:flowID/inputs/", flowController.AddInput)
	flowRouter.POST("/:flowID/outputs/", flowController.AddOutput)
	flowRouter.DELETE("/:flowID/", flowController.Delete)

	discussionRouter := teamRouter.Group("/discussions")
	discussionRouter.GET("/", discussionController.List)
	discussionRouter.GET("/:discussionID/", discussionController.Read)
	discussionRouter.POST("/:discussionID/process/", discussionController.Process)
	discussionRouter.POST("/:discussionID/retry/", discussionController.Retry)

	jobRouter := teamRouter.Group("/jobs")
	jobRouter.GET("/", jobController.List)
	jobRouter.GET("/:jobID/", jobController.Read)

	userMappingRouter := teamRouter.Group("/user-mappings")
	userMappingRouter.GET("/", userMappingController.List)
	userMappingRouter.POST("/", userMappingController.Create)
	userMappingRouter.POST("/suggest/", userMappingController.Suggest)
	userMappingRouter.POST("/:mappingID/confirm/", userMappingController.Confirm)

	return TeamRouter{Group: teamRouter}
}
