package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/transformer"
	"github.com/spf13/cobra"
)

func NewAccountsCommand() *cobra.Command {
	accounts := cobra.Command{
		Use:   "accounts",
		Short: "Manage connected accounts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the connected accounts of a team",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := teamFlag(cmd)
			if err != nil {
				return err
			}
			return withApp(func(a app) error {
				accounts, err := a.ConnectedAccountService.List(teamID)
				if err != nil {
					return err
				}
				printAccounts(cmd.OutOrStdout(), transformer.ConnectedAccountsToDTOs(accounts))
				return nil
			})
		},
	}
	addTeamFlag(list)

	verify := &cobra.Command{
		Use:   "verify <accountID>",
		Short: "Verify the credentials of a connected account against its provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := teamFlag(cmd)
			if err != nil {
				return err
			}
			accountID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid account id %q: %w", args[0], err)
			}
			return withApp(func(a app) error {
				result, err := a.ConnectedAccountService.Verify(cmd.Context(), teamID, accountID)
				if err != nil {
					return err
				}
				if !result.Success {
					msg := result.Status
					if result.Error != nil {
						msg = *result.Error
					}
					return fmt.Errorf("verification failed: %s", msg)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "account %s is %s\n", accountID, result.Status)
				return nil
			})
		},
	}
	addTeamFlag(verify)

	accounts.AddCommand(list, verify)
	return &accounts
}
