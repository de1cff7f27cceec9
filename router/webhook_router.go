// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/l3montree-dev/threadline/cmd/threadline/api"
	"github.com/l3montree-dev/threadline/controllers"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type WebhookRouter struct {
	*echo.Group
}

// NewWebhookRouter registers the inbound endpoint of all source providers.
// It is authenticated by the signature of each delivery, not by the api token.
func NewWebhookRouter(srv api.Server, webhookController *controllers.WebhookController) WebhookRouter {
	webhookRouter := srv.Echo.Group("/webhooks", middleware.BodyLimit("2M"))
	webhookRouter.POST("/:provider/:accountID/", webhookController.Handle)
	return WebhookRouter{Group: webhookRouter}
}
