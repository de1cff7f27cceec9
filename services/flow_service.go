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

package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/mapping"
	"github.com/l3montree-dev/threadline/shared"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type flowService struct {
	flowRepository             shared.FlowRepository
	connectedAccountRepository shared.ConnectedAccountRepository
}

var _ shared.FlowService = (*flowService)(nil)

func NewFlowService(flowRepository shared.FlowRepository, connectedAccountRepository shared.ConnectedAccountRepository) *flowService {
	return &flowService{
		flowRepository:             flowRepository,
		connectedAccountRepository: connectedAccountRepository,
	}
}

// CanonicalFlow returns the first active flow of the team, or the first flow if none is active.
// Flows are ordered by creation time, then id.
func (s *flowService) CanonicalFlow(teamID uuid.UUID) (models.Flow, error) {
	flows, err := s.flowRepository.ListByTeam(teamID)
	if err != nil {
		return models.Flow{}, fmt.Errorf("could not list flows: %w", err)
	}
	if len(flows) == 0 {
		return models.Flow{}, shared.NewFatalError("select flow", fmt.Errorf("team %s has no flow configured", teamID))
	}
	for _, f := range flows {
		if f.Active {
			return f, nil
		}
	}
	return flows[0], nil
}

// RouteOutput selects the destination of a detected domain:
// an output bound to the domain, else the default output, else the only output.
func (s *flowService) RouteOutput(flow models.Flow, domain string) (models.FlowOutput, error) {
	domain = strings.TrimSpace(domain)
	if domain != "" {
		for _, o := range flow.Outputs {
			if o.Domain != nil && strings.EqualFold(strings.TrimSpace(*o.Domain), domain) {
				return o, nil
			}
		}
	}
	for _, o := range flow.Outputs {
		if o.IsDefault {
			return o, nil
		}
	}
	if len(flow.Outputs) == 1 {
		return flow.Outputs[0], nil
	}
	if len(flow.Outputs) == 0 {
		return models.FlowOutput{}, shared.NewRoutingError("route output", fmt.Errorf("flow %q has no outputs", flow.Name))
	}
	return models.FlowOutput{}, shared.NewRoutingError("route output", fmt.Errorf("no output of flow %q matches domain %q and no default output is configured", flow.Name, domain))
}

func (s *flowService) List(teamID uuid.UUID) ([]models.Flow, error) {
	return s.flowRepository.ListByTeam(teamID)
}

func (s *flowService) uniqueSlug(teamID uuid.UUID, name string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "flow"
	}
	candidate := base
	for i := 2; i < 100; i++ {
		_, err := s.flowRepository.ReadBySlug(teamID, candidate)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", shared.NewValidationError("create flow", fmt.Errorf("too many flows named %q", name))
}

func (s *flowService) newFlow(teamID uuid.UUID, req dtos.FlowCreateRequest) (models.Flow, error) {
	flowSlug, err := s.uniqueSlug(teamID, req.Name)
	if err != nil {
		return models.Flow{}, err
	}
	domains := req.AvailableDomains
	if domains == nil {
		domains = []string{}
	}
	return models.Flow{
		TeamID:           teamID,
		Name:             strings.TrimSpace(req.Name),
		Slug:             flowSlug,
		Active:           req.Active,
		AIEnabled:        req.AIEnabled,
		AvailableDomains: datatypes.NewJSONSlice(domains),
		SystemPrompt:     req.SystemPrompt,
		TaskPrompt:       req.TaskPrompt,
		MaxAttempts:      req.MaxAttempts,
	}, nil
}

func (s *flowService) Create(teamID uuid.UUID, req dtos.FlowCreateRequest) (models.Flow, error) {
	flow, err := s.newFlow(teamID, req)
	if err != nil {
		return models.Flow{}, err
	}
	if err := s.flowRepository.Create(nil, &flow); err != nil {
		return models.Flow{}, fmt.Errorf("could not create flow: %w", err)
	}
	return flow, nil
}

func (s *flowService) Read(teamID uuid.UUID, flowID uuid.UUID) (models.Flow, error) {
	flow, err := s.flowRepository.ReadByTeam(teamID, flowID)
	if err != nil {
		return models.Flow{}, notFoundOr("read flow", err)
	}
	return flow, nil
}

func (s *flowService) SetActive(teamID uuid.UUID, flowID uuid.UUID, active bool) (models.Flow, error) {
	flow, err := s.Read(teamID, flowID)
	if err != nil {
		return models.Flow{}, err
	}
	if err := s.flowRepository.SetActive(nil, flow.ID, active); err != nil {
		return models.Flow{}, fmt.Errorf("could not update flow: %w", err)
	}
	flow.Active = active
	return flow, nil
}

func (s *flowService) checkAccount(teamID uuid.UUID, accountID *uuid.UUID, provider models.Provider) error {
	if accountID == nil {
		return nil
	}
	account, err := s.connectedAccountRepository.ReadByTeam(teamID, *accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewValidationError("flow account", fmt.Errorf("connected account %s not found", accountID))
		}
		return err
	}
	if account.Provider != provider {
		return shared.NewValidationError("flow account", fmt.Errorf("connected account %s is a %s account, expected %s", accountID, account.Provider, provider))
	}
	return nil
}

func (s *flowService) buildInput(teamID uuid.UUID, flowID uuid.UUID, req dtos.FlowInputCreateRequest) (models.FlowInput, error) {
	provider := models.Provider(req.Provider)
	if err := s.checkAccount(teamID, req.ConnectedAccountID, provider); err != nil {
		return models.FlowInput{}, err
	}
	settings := req.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	return models.FlowInput{
		FlowID:             flowID,
		Provider:           provider,
		ConnectedAccountID: req.ConnectedAccountID,
		Settings:           datatypes.JSONMap(settings),
		Active:             true,
	}, nil
}

func (s *flowService) buildOutput(teamID uuid.UUID, flowID uuid.UUID, req dtos.FlowOutputCreateRequest) (models.FlowOutput, error) {
	provider := models.Provider(req.Provider)
	if err := s.checkAccount(teamID, req.ConnectedAccountID, provider); err != nil {
		return models.FlowOutput{}, err
	}
	settings := req.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	fieldMapping := req.FieldMapping
	if fieldMapping == nil {
		fieldMapping = map[string]string{}
	}
	valueMap := req.ValueMap
	if valueMap == nil {
		valueMap = map[string]map[string]string{}
	}
	for field, values := range valueMap {
		if collisions := mapping.CaseCollisions(values); len(collisions) > 0 {
			return models.FlowOutput{}, shared.NewValidationError("flow output", fmt.Errorf("value map of %q has keys differing only in case: %s", field, strings.Join(collisions, ", ")))
		}
	}
	return models.FlowOutput{
		FlowID:             flowID,
		Provider:           provider,
		ConnectedAccountID: req.ConnectedAccountID,
		Settings:           datatypes.JSONMap(settings),
		Domain:             req.Domain,
		IsDefault:          req.IsDefault,
		FieldMapping:       datatypes.NewJSONType(fieldMapping),
		ValueMap:           datatypes.NewJSONType(valueMap),
	}, nil
}

func (s *flowService) AddInput(teamID uuid.UUID, flowID uuid.UUID, req dtos.FlowInputCreateRequest) (models.FlowInput, error) {
	flow, err := s.Read(teamID, flowID)
	if err != nil {
		return models.FlowInput{}, err
	}
	input, err := s.buildInput(teamID, flow.ID, req)
	if err != nil {
		return models.FlowInput{}, err
	}
	if err := s.flowRepository.CreateInput(nil, &input); err != nil {
		return models.FlowInput{}, fmt.Errorf("could not create flow input: %w", err)
	}
	return input, nil
}

func (s *flowService) AddOutput(teamID uuid.UUID, flowID uuid.UUID, req dtos.FlowOutputCreateRequest) (models.FlowOutput, error) {
	flow, err := s.Read(teamID, flowID)
	if err != nil {
		return models.FlowOutput{}, err
	}
	output, err := s.buildOutput(teamID, flow.ID, req)
	if err != nil {
		return models.FlowOutput{}, err
	}
	if err := s.flowRepository.CreateOutput(nil, &output); err != nil {
		return models.FlowOutput{}, fmt.Errorf("could not create flow output: %w", err)
	}
	return output, nil
}

func (s *flowService) ReadOutput(teamID uuid.UUID, outputID uuid.UUID) (models.FlowOutput, error) {
	output, err := s.flowRepository.ReadOutput(outputID)
	if err != nil {
		return models.FlowOutput{}, notFoundOr("read flow output", err)
	}
	// the output is only visible if its flow belongs to the team
	if _, err := s.Read(teamID, output.FlowID); err != nil {
		return models.FlowOutput{}, err
	}
	return output, nil
}

func (s *flowService) Delete(teamID uuid.UUID, flowID uuid.UUID) error {
	flow, err := s.Read(teamID, flowID)
	if err != nil {
		return err
	}
	return s.flowRepository.Delete(nil, flow.ID)
}

// Import creates a flow with its inputs and outputs in one transaction.
func (s *flowService) Import(teamID uuid.UUID, def dtos.FlowDefinition) (models.Flow, error) {
	if err := shared.V.Struct(def); err != nil {
		return models.Flow{}, shared.NewValidationError("import flow", err)
	}
	flow, err := s.newFlow(teamID, dtos.FlowCreateRequest{
		Name:             def.Name,
		Active:           def.Active,
		AIEnabled:        def.AIEnabled,
		AvailableDomains: def.AvailableDomains,
		SystemPrompt:     def.SystemPrompt,
		TaskPrompt:       def.TaskPrompt,
		MaxAttempts:      def.MaxAttempts,
	})
	if err != nil {
		return models.Flow{}, err
	}

	err = s.flowRepository.Transaction(func(tx shared.DB) error {
		if err := s.flowRepository.Create(tx, &flow); err != nil {
			return err
		}
		for _, in := range def.Inputs {
			input, err := s.buildInput(teamID, flow.ID, in)
			if err != nil {
				return err
			}
			if err := s.flowRepository.CreateInput(tx, &input); err != nil {
				return err
			}
			flow.Inputs = append(flow.Inputs, input)
		}
		for _, out := range def.Outputs {
			output, err := s.buildOutput(teamID, flow.ID, out)
			if err != nil {
				return err
			}
			if err := s.flowRepository.CreateOutput(tx, &output); err != nil {
				return err
			}
			flow.Outputs = append(flow.Outputs, output)
		}
		return nil
	})
	if err != nil {
		return models.Flow{}, fmt.Errorf("could not import flow: %w", err)
	}
	slog.Info("imported flow", "teamID", teamID, "flowID", flow.ID, "slug", flow.Slug)
	return flow, nil
}
