package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/l3montree-dev/threadline/database"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

func keyringService(cfg database.PoolConfig) string {
	return fmt.Sprintf("threadline/%s:%s/%s", cfg.Host, cfg.Port, cfg.DBName)
}

func keyringUser(cfg database.PoolConfig) string {
	if cfg.User == "" {
		return "threadline"
	}
	return cfg.User
}

// withKeyringPassword fills an empty POSTGRES_PASSWORD from the os keyring.
func withKeyringPassword(cfg database.PoolConfig) database.PoolConfig {
	if cfg.Password != "" {
		return cfg
	}
	password, err := keyring.Get(keyringService(cfg), keyringUser(cfg))
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			slog.Debug("could not read password from keyring", "err", err)
		}
		return cfg
	}
	cfg.Password = password
	return cfg
}

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("empty password")
	}
	return password, nil
}

func NewCredentialsCommand() *cobra.Command {
	credentials := &cobra.Command{
		Use:   "credentials",
		Short: "Manage the database password stored in the os keyring",
	}

	credentials.AddCommand(&cobra.Command{
		Use:   "store",
		Short: "Read the database password from stdin and store it in the keyring",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.InOrStdin())
			if err != nil {
				return err
			}
			cfg := database.GetPoolConfigFromEnv()
			if err := keyring.Set(keyringService(cfg), keyringUser(cfg), password); err != nil {
				return fmt.Errorf("could not store password: %w", err)
			}
			slog.Info("stored database password", "service", keyringService(cfg), "user", keyringUser(cfg))
			return nil
		},
	})

	credentials.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Remove the stored database password",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := database.GetPoolConfigFromEnv()
			if err := keyring.Delete(keyringService(cfg), keyringUser(cfg)); err != nil && !errors.Is(err, keyring.ErrNotFound) {
				return fmt.Errorf("could not delete password: %w", err)
			}
			return nil
		},
	})

	return credentials
}
