// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/monitoring"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/labstack/echo/v4"
)

// inbound payloads above this size are rejected before verification
const maxWebhookBodySize = 2 << 20 // 2 MB

type WebhookController struct {
	registry                shared.IntegrationRegistry
	connectedAccountService shared.ConnectedAccountService
	discussionService       shared.DiscussionService
	userMappingService      shared.UserMappingService
	jobService              shared.JobService
}

func NewWebhookController(
	registry shared.IntegrationRegistry,
	connectedAccountService shared.ConnectedAccountService,
	discussionService shared.DiscussionService,
	userMappingService shared.UserMappingService,
	jobService shared.JobService,
) *WebhookController {
	return &WebhookController{
		registry:                registry,
		connectedAccountService: connectedAccountService,
		discussionService:       discussionService,
		userMappingService:      userMappingService,
		jobService:              jobService,
	}
}

func countWebhook(provider models.Provider, outcome string) {
	monitoring.WebhooksReceived.WithLabelValues(string(provider), outcome).Inc()
}

// @Summary Receive a webhook delivery of a source provider
// @Tags Webhooks
// @Param provider path string true "Provider"
// @Param accountID path string true "Connected account ID"
// @Success 200 {object} dtos.WebhookResponse
// @Router /webhooks/{provider}/{accountID} [post]
func (c *WebhookController) Handle(ctx shared.Context) error {
	provider := models.Provider(shared.GetParam(ctx, "provider"))
	source, ok := c.registry.Source(provider)
	if !ok {
		return echo.NewHTTPError(404, fmt.Sprintf("unknown source provider %q", provider))
	}

	accountID, err := shared.GetUUIDParam(ctx, "accountID")
	if err != nil {
		countWebhook(provider, "rejected")
		return err
	}

	account, err := c.connectedAccountService.ReadForWebhook(accountID)
	if err != nil {
		countWebhook(provider, "rejected")
		if shared.IsKind(err, shared.ErrorKindNotFound) {
			return echo.NewHTTPError(404, "unknown account")
		}
		return err
	}
	// the account id alone must not open the endpoint of another provider
	if account.Provider != provider {
		countWebhook(provider, "rejected")
		return echo.NewHTTPError(404, "unknown account")
	}

	body, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxWebhookBodySize+1))
	if err != nil {
		countWebhook(provider, "rejected")
		return echo.NewHTTPError(400, "could not read request body").WithInternal(err)
	}
	if len(body) > maxWebhookBodySize {
		countWebhook(provider, "rejected")
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "payload too large")
	}

	if account.SigningSecret == nil || *account.SigningSecret == "" {
		countWebhook(provider, "rejected")
		slog.Warn("webhook delivered for account without signing secret", "accountID", account.ID, "provider", provider)
		return echo.NewHTTPError(401, "invalid signature")
	}
	if !source.VerifySignature(ctx.Request().Header, body, *account.SigningSecret) {
		countWebhook(provider, "rejected")
		return echo.NewHTTPError(401, "invalid signature")
	}

	event, err := source.Normalize(ctx.Request().Header, body)
	if err != nil {
		countWebhook(provider, "rejected")
		return echo.NewHTTPError(400, "could not process payload").WithInternal(err)
	}

	switch event.Kind {
	case dtos.EventKindChallenge:
		countWebhook(provider, "challenge")
		return ctx.JSON(200, echo.Map{"challenge": event.Challenge})
	case dtos.EventKindIgnored:
		countWebhook(provider, "ignored")
		return ctx.JSON(200, dtos.WebhookResponse{Kind: event.Kind, Reason: event.IgnoreReason})
	case dtos.EventKindUserSync:
		mappings, err := c.userMappingService.Discover(account.TeamID, provider, event.SourceWorkspaceID, event.DiscoveredUsers)
		if err != nil {
			countWebhook(provider, "error")
			return err
		}
		countWebhook(provider, "user_sync")
		return ctx.JSON(200, dtos.WebhookResponse{Kind: event.Kind, Discovered: len(mappings)})
	case dtos.EventKindDiscussion:
		return c.ingest(ctx, account, event)
	}

	countWebhook(provider, "rejected")
	return echo.NewHTTPError(400, fmt.Sprintf("unsupported event kind %q", event.Kind))
}

func (c *WebhookController) ingest(ctx shared.Context, account models.ConnectedAccount, event dtos.NormalizedEvent) error {
	discussion, created, err := c.discussionService.Ingest(ctx.Request().Context(), account, event)
	if err != nil {
		countWebhook(account.Provider, "error")
		return err
	}

	response := dtos.WebhookResponse{
		Kind:         event.Kind,
		DiscussionID: shared.Ptr(discussion.ID.String()),
		Created:      created,
	}

	// a re-delivery gets the ingest job of the first delivery back
	job, err := c.jobService.Enqueue(ctx.Request().Context(), discussion, models.JobTriggerIngest)
	if err != nil {
		countWebhook(account.Provider, "error")
		return fmt.Errorf("discussion %s stored but could not enqueue job: %w", discussion.ID, err)
	}
	response.JobID = shared.Ptr(job.ID.String())

	if created {
		countWebhook(account.Provider, "accepted")
	} else {
		countWebhook(account.Provider, "duplicate")
	}
	slog.Info("ingested discussion", "discussionID", discussion.ID, "jobID", job.ID, "provider", account.Provider, "created", created)

	// providers expect a plain 200, also for newly created discussions
	return ctx.JSON(200, response)
}
