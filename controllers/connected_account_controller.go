// Copyright (C) 2026 l3montree GmbH
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"fmt"

	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/l3montree-dev/threadline/transformer"
	"github.com/labstack/echo/v4"
)

type ConnectedAccountController struct {
	connectedAccountService shared.ConnectedAccountService
}

func NewConnectedAccountController(connectedAccountService shared.ConnectedAccountService) *ConnectedAccountController {
	return &ConnectedAccountController{
		connectedAccountService: connectedAccountService,
	}
}

// @Summary List connected accounts
// @Tags Accounts
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Success 200 {array} dtos.ConnectedAccountDTO
// @Router /teams/{teamID}/accounts [get]
func (c *ConnectedAccountController) List(ctx shared.Context) error {
	accounts, err := c.connectedAccountService.List(shared.GetTeamID(ctx))
	if err != nil {
		return echo.NewHTTPError(500, "could not list accounts").WithInternal(err)
	}
	return ctx.JSON(200, transformer.ConnectedAccountsToDTOs(accounts))
}

// @Summary Connect an account
// @Tags Accounts
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param body body dtos.ConnectedAccountCreateRequest true "Request body"
// @Success 201 {object} dtos.ConnectedAccountDTO
// @Router /teams/{teamID}/accounts [post]
func (c *ConnectedAccountController) Create(ctx shared.Context) error {
	var req dtos.ConnectedAccountCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	account, err := c.connectedAccountService.Create(ctx.Request().Context(), shared.GetTeamID(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(201, transformer.ConnectedAccountToDTO(account))
}

// @Summary Verify the credential of an account
// @Tags Accounts
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param accountID path string true "Account ID"
// @Success 200 {object} dtos.VerificationResult
// @Router /teams/{teamID}/accounts/{accountID}/verify [post]
func (c *ConnectedAccountController) Verify(ctx shared.Context) error {
	accountID, err := shared.GetUUIDParam(ctx, "accountID")
	if err != nil {
		return err
	}
	// a failed verification is a valid answer, only persistence problems are errors
	result, err := c.connectedAccountService.Verify(ctx.Request().Context(), shared.GetTeamID(ctx), accountID)
	if err != nil {
		return err
	}
	return ctx.JSON(200, result)
}

// @Summary Delete an account
// @Tags Accounts
// @Security BearerAuth
// @Param teamID path string true "Team ID"
// @Param accountID path string true "Account ID"
// @Success 204
// @Router /teams/{teamID}/accounts/{accountID} [delete]
func (c *ConnectedAccountController) Delete(ctx shared.Context) error {
	accountID, err := shared.GetUUIDParam(ctx, "accountID")
	if err != nil {
		return err
	}
	if err := c.connectedAccountService.Delete(shared.GetTeamID(ctx), accountID); err != nil {
		return err
	}
	return ctx.NoContent(204)
}
