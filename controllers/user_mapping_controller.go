// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"

	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/labstack/echo/v4"
)

type UserMappingController struct {
	userMappingService      shared.UserMappingService
	flowService             shared.FlowService
	connectedAccountService shared.ConnectedAccountService
	directory               shared.DestinationDirectory
}

func NewUserMappingController(
	userMappingService shared.UserMappingService,
	flowService shared.FlowService,
	connectedAccountService shared.ConnectedAccountService,
	directory shared.DestinationDirectory,
) *UserMappingController {
	return &UserMappingController{
		userMappingService:      userMappingService,
		flowService:             flowService,
		connectedAccountService: connectedAccountService,
		directory:               directory,
	}
}

// @Summary List user mappings
// @Tags UserMappings
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param unresolved query bool false "Only mappings without a confirmed destination user"
// @Success 200 {array} models.UserMapping
// @Router /teams/{teamID}/user-mappings [get]
func (c *UserMappingController) List(ctx shared.Context) error {
	unresolvedOnly := ctx.QueryParam("unresolved") == "true"
	mappings, err := c.userMappingService.List(shared.GetTeamID(ctx), unresolvedOnly)
	if err != nil {
		return echo.NewHTTPError(500, "could not list user mappings").WithInternal(err)
	}
	return ctx.JSON(200, mappings)
}

// @Summary Create a confirmed user mapping
// @Tags UserMappings
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param body body dtos.UserMappingCreateRequest true "Request body"
// @Success 201 {object} models.UserMapping
// @Router /teams/{teamID}/user-mappings [post]
func (c *UserMappingController) Create(ctx shared.Context) error {
	var req dtos.UserMappingCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	mapping, err := c.userMappingService.CreateManual(shared.GetTeamID(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(201, mapping)
}

// @Summary Confirm a user mapping
// @Tags UserMappings
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param mappingID path string true "Mapping ID"
// @Param body body dtos.UserMappingConfirmRequest true "Request body"
// @Success 200 {object} models.UserMapping
// @Router /teams/{teamID}/user-mappings/{mappingID}/confirm [post]
func (c *UserMappingController) Confirm(ctx shared.Context) error {
	mappingID, err := shared.GetUUIDParam(ctx, "mappingID")
	if err != nil {
		return err
	}
	var req dtos.UserMappingConfirmRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	mapping, err := c.userMappingService.Confirm(shared.GetTeamID(ctx), mappingID, req.DestinationUserID, req.DestinationUserName)
	if err != nil {
		return err
	}
	return ctx.JSON(200, mapping)
}

// @Summary Suggest destination users for unresolved mappings
// @Description Fuzzy matches unresolved mappings against the users of a flow output. Suggestions stay inactive until confirmed.
// @Tags UserMappings
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param body body dtos.UserMappingSuggestRequest true "Request body"
// @Success 200 {array} models.UserMapping
// @Router /teams/{teamID}/user-mappings/suggest [post]
func (c *UserMappingController) Suggest(ctx shared.Context) error {
	var req dtos.UserMappingSuggestRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	teamID := shared.GetTeamID(ctx)

	output, err := c.flowService.ReadOutput(teamID, req.FlowOutputID)
	if err != nil {
		return err
	}
	if output.ConnectedAccountID == nil {
		return shared.NewValidationError("suggest user mappings", fmt.Errorf("flow output %s has no connected account", output.ID))
	}
	account, err := c.connectedAccountService.Read(teamID, *output.ConnectedAccountID)
	if err != nil {
		return err
	}

	users, err := c.directory.Users(ctx.Request().Context(), account, output)
	if err != nil {
		return err
	}
	mappings, err := c.userMappingService.Suggest(teamID, users)
	if err != nil {
		return err
	}
	return ctx.JSON(200, mappings)
}
