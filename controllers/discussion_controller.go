// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/l3montree-dev/threadline/transformer"
	"github.com/labstack/echo/v4"
)

type DiscussionController struct {
	discussionService shared.DiscussionService
	jobService        shared.JobService
}

func NewDiscussionController(discussionService shared.DiscussionService, jobService shared.JobService) *DiscussionController {
	return &DiscussionController{
		discussionService: discussionService,
		jobService:        jobService,
	}
}

func discussionStatusQuery(ctx shared.Context) (*models.DiscussionStatus, error) {
	raw := ctx.QueryParam("status")
	if raw == "" {
		return nil, nil
	}
	status := models.DiscussionStatus(raw)
	switch status {
	case models.DiscussionStatusPending, models.DiscussionStatusProcessing, models.DiscussionStatusCompleted, models.DiscussionStatusFailed:
		return &status, nil
	}
	return nil, echo.NewHTTPError(400, fmt.Sprintf("invalid status %q", raw))
}

// @Summary List discussions
// @Tags Discussions
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param status query string false "Processing status"
// @Success 200 {array} models.Discussion
// @Router /teams/{teamID}/discussions [get]
func (c *DiscussionController) List(ctx shared.Context) error {
	status, err := discussionStatusQuery(ctx)
	if err != nil {
		return err
	}
	discussions, err := c.discussionService.List(shared.GetTeamID(ctx), status)
	if err != nil {
		return echo.NewHTTPError(500, "could not list discussions").WithInternal(err)
	}
	return ctx.JSON(200, discussions)
}

// @Summary Read a discussion with its tasks and jobs
// @Tags Discussions
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param discussionID path string true "Discussion ID"
// @Success 200 {object} dtos.DiscussionDetailsDTO
// @Router /teams/{teamID}/discussions/{discussionID} [get]
func (c *DiscussionController) Read(ctx shared.Context) error {
	discussionID, err := shared.GetUUIDParam(ctx, "discussionID")
	if err != nil {
		return err
	}
	teamID := shared.GetTeamID(ctx)

	discussion, err := c.discussionService.Read(teamID, discussionID)
	if err != nil {
		return err
	}
	jobs, err := c.jobService.ListByDiscussion(teamID, discussion.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list jobs").WithInternal(err)
	}
	return ctx.JSON(200, transformer.DiscussionToDetailsDTO(discussion, jobs))
}

// @Summary Process a discussion now
// @Description Advances a pending or retrying job, otherwise a new job is created.
// @Tags Discussions
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param discussionID path string true "Discussion ID"
// @Success 202 {object} models.Job
// @Router /teams/{teamID}/discussions/{discussionID}/process [post]
func (c *DiscussionController) Process(ctx shared.Context) error {
	discussionID, err := shared.GetUUIDParam(ctx, "discussionID")
	if err != nil {
		return err
	}
	job, err := c.jobService.Trigger(ctx.Request().Context(), shared.GetTeamID(ctx), discussionID)
	if err != nil {
		return err
	}
	return ctx.JSON(202, job)
}

// @Summary Retry the failed job of a discussion
// @Tags Discussions
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param discussionID path string true "Discussion ID"
// @Success 202 {object} models.Job
// @Router /teams/{teamID}/discussions/{discussionID}/retry [post]
func (c *DiscussionController) Retry(ctx shared.Context) error {
	discussionID, err := shared.GetUUIDParam(ctx, "discussionID")
	if err != nil {
		return err
	}
	job, err := c.jobService.Retry(ctx.Request().Context(), shared.GetTeamID(ctx), discussionID)
	if err != nil {
		return err
	}
	return ctx.JSON(202, job)
}
