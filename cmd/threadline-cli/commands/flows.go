package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// parseFlowDefinition reads a yaml flow definition. Unknown keys are rejected
// so typos in field names do not silently drop configuration.
func parseFlowDefinition(r io.Reader) (dtos.FlowDefinition, error) {
	var def dtos.FlowDefinition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return dtos.FlowDefinition{}, fmt.Errorf("could not parse flow definition: %w", err)
	}
	if err := shared.V.Struct(def); err != nil {
		return dtos.FlowDefinition{}, fmt.Errorf("invalid flow definition: %w", err)
	}
	return def, nil
}

func NewFlowsCommand() *cobra.Command {
	flows := cobra.Command{
		Use:   "flows",
		Short: "Manage flows",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the flows of a team",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := teamFlag(cmd)
			if err != nil {
				return err
			}
			return withApp(func(a app) error {
				flows, err := a.FlowService.List(teamID)
				if err != nil {
					return err
				}
				printFlows(cmd.OutOrStdout(), flows)
				return nil
			})
		},
	}
	addTeamFlag(list)

	importCmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create a flow with its inputs and outputs from a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := teamFlag(cmd)
			if err != nil {
				return err
			}
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("could not read %s: %w", args[0], err)
			}
			def, err := parseFlowDefinition(bytes.NewReader(content))
			if err != nil {
				return err
			}
			return withApp(func(a app) error {
				flow, err := a.FlowService.Import(teamID, def)
				if err != nil {
					return err
				}
				printFlows(cmd.OutOrStdout(), []models.Flow{flow})
				return nil
			})
		},
	}
	addTeamFlag(importCmd)

	flows.AddCommand(list, importCmd)
	return &flows
}
