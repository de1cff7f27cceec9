// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/labstack/echo/v4"
)

type JobController struct {
	jobService shared.JobService
}

func NewJobController(jobService shared.JobService) *JobController {
	return &JobController{
		jobService: jobService,
	}
}

func jobStatusQuery(ctx shared.Context) (*models.JobStatus, error) {
	raw := ctx.QueryParam("status")
	if raw == "" {
		return nil, nil
	}
	status := models.JobStatus(raw)
	switch status {
	case models.JobStatusPending, models.JobStatusProcessing, models.JobStatusRetrying, models.JobStatusCompleted, models.JobStatusFailed:
		return &status, nil
	}
	return nil, echo.NewHTTPError(400, fmt.Sprintf("invalid status %q", raw))
}

// @Summary List jobs
// @Tags Jobs
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param status query string false "Job status"
// @Success 200 {array} models.Job
// @Router /teams/{teamID}/jobs [get]
func (c *JobController) List(ctx shared.Context) error {
	status, err := jobStatusQuery(ctx)
	if err != nil {
		return err
	}
	jobs, err := c.jobService.List(shared.GetTeamID(ctx), status)
	if err != nil {
		return echo.NewHTTPError(500, "could not list jobs").WithInternal(err)
	}
	return ctx.JSON(200, jobs)
}

// @Summary Read a job
// @Tags Jobs
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param jobID path string true "Job ID"
// @Success 200 {object} models.Job
// @Router /teams/{teamID}/jobs/{jobID} [get]
func (c *JobController) Read(ctx shared.Context) error {
	jobID, err := shared.GetUUIDParam(ctx, "jobID")
	if err != nil {
		return err
	}
	job, err := c.jobService.Read(shared.GetTeamID(ctx), jobID)
	if err != nil {
		return err
	}
	return ctx.JSON(200, job)
}
