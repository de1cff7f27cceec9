// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"

	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/labstack/echo/v4"
)

type FlowController struct {
	flowService shared.FlowService
}

func NewFlowController(flowService shared.FlowService) *FlowController {
	return &FlowController{
		flowService: flowService,
	}
}

// @Summary List flows
// @Tags Flows
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Success 200 {array} models.Flow
// @Router /teams/{teamID}/flows [get]
func (c *FlowController) List(ctx shared.Context) error {
	flows, err := c.flowService.List(shared.GetTeamID(ctx))
	if err != nil {
		return echo.NewHTTPError(500, "could not list flows").WithInternal(err)
	}
	return ctx.JSON(200, flows)
}

// @Summary Create a flow
// @Tags Flows
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param body body dtos.FlowCreateRequest true "Request body"
// @Success 201 {object} models.Flow
// @Router /teams/{teamID}/flows [post]
func (c *FlowController) Create(ctx shared.Context) error {
	var req dtos.FlowCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	flow, err := c.flowService.Create(shared.GetTeamID(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(201, flow)
}

// @Summary Read a flow with its inputs and outputs
// @Tags Flows
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param flowID path string true "Flow ID"
// @Success 200 {object} models.Flow
// @Router /teams/{teamID}/flows/{flowID} [get]
func (c *FlowController) Read(ctx shared.Context) error {
	flowID, err := shared.GetUUIDParam(ctx, "flowID")
	if err != nil {
		return err
	}
	flow, err := c.flowService.Read(shared.GetTeamID(ctx), flowID)
	if err != nil {
		return err
	}
	return ctx.JSON(200, flow)
}

func (c *FlowController) setActive(ctx shared.Context, active bool) error {
	flowID, err := shared.GetUUIDParam(ctx, "flowID")
	if err != nil {
		return err
	}
	flow, err := c.flowService.SetActive(shared.GetTeamID(ctx), flowID, active)
	if err != nil {
		return err
	}
	return ctx.JSON(200, flow)
}

// @Summary Activate a flow
// @Tags Flows
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param flowID path string true "Flow ID"
// @Success 200 {object} models.Flow
// @Router /teams/{teamID}/flows/{flowID}/activate [post]
func (c *FlowController) Activate(ctx shared.Context) error {
	return c.setActive(ctx, true)
}

// @Summary Deactivate a flow
// @Tags Flows
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param flowID path string true "Flow ID"
// @Success 200 {object} models.Flow
// @Router /teams/{teamID}/flows/{flowID}/deactivate [post]
func (c *FlowController) Deactivate(ctx shared.Context) error {
	return c.setActive(ctx, false)
}

// @Summary Add an input to a flow
// @Tags Flows
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param flowID path string true "Flow ID"
// @Param body body dtos.FlowInputCreateRequest true "Request body"
// @Success 201 {object} models.FlowInput
// @Router /teams/{teamID}/flows/{flowID}/inputs [post]
func (c *FlowController) AddInput(ctx shared.Context) error {
	flowID, err := shared.GetUUIDParam(ctx, "flowID")
	if err != nil {
		return err
	}
	var req dtos.FlowInputCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	input, err := c.flowService.AddInput(shared.GetTeamID(ctx), flowID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(201, input)
}

// @Summary Add an output to a flow
// @Tags Flows
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param flowID path string true "Flow ID"
// @Param body body dtos.FlowOutputCreateRequest true "Request body"
// @Success 201 {object} models.FlowOutput
// @Router /teams/{teamID}/flows/{flowID}/outputs [post]
func (c *FlowController) AddOutput(ctx shared.Context) error {
	flowID, err := shared.GetUUIDParam(ctx, "flowID")
	if err != nil {
		return err
	}
	var req dtos.FlowOutputCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	output, err := c.flowService.AddOutput(shared.GetTeamID(ctx), flowID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(201, output)
}

// @Summary Delete a flow
// @Tags Flows
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param flowID path string true "Flow ID"
// @Success 204
// @Router /teams/{teamID}/flows/{flowID} [delete]
func (c *FlowController) Delete(ctx shared.Context) error {
	flowID, err := shared.GetUUIDParam(ctx, "flowID")
	if err != nil {
		return err
	}
	if err := c.flowService.Delete(shared.GetTeamID(ctx), flowID); err != nil {
		return err
	}
	return ctx.NoContent(204)
}
