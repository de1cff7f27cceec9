package commands

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/threadline/database"
	"github.com/l3montree-dev/threadline/database/repositories"
	"github.com/l3montree-dev/threadline/integrations"
	"github.com/l3montree-dev/threadline/services"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// app holds what the management commands need. It is populated from the same
// fx modules the server uses, without starting any lifecycle hooks.
type app struct {
	DB                      shared.DB
	ConnectedAccountService shared.ConnectedAccountService
	FlowService             shared.FlowService
	JobService              shared.JobService
}

func openDatabase() (shared.DB, *pgxpool.Pool, error) {
	pool, err := database.NewPgxConnPool(withKeyringPassword(database.GetPoolConfigFromEnv()))
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	db, err := database.NewGormDB(pool)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return db, pool, nil
}

func withApp(fn func(a app) error) error {
	db, pool, err := openDatabase()
	if err != nil {
		return err
	}
	defer pool.Close()

	var a app
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(database.BrokerFactory),
		repositories.Module,
		services.ServiceModule,
		integrations.Module,
		fx.Populate(&a.ConnectedAccountService, &a.FlowService, &a.JobService),
	)
	if err := fxApp.Err(); err != nil {
		return fmt.Errorf("could not build services: %w", err)
	}
	a.DB = db

	slog.Debug("services ready")
	return fn(a)
}

func teamFlag(cmd *cobra.Command) (uuid.UUID, error) {
	raw, err := cmd.Flags().GetString("team")
	if err != nil {
		return uuid.Nil, err
	}
	if raw == "" {
		return uuid.Nil, fmt.Errorf("--team is required")
	}
	teamID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid team id %q: %w", raw, err)
	}
	return teamID, nil
}

func addTeamFlag(cmd *cobra.Command) {
	cmd.Flags().String("team", "", "The team id (env THREADLINE_TEAM)")
}
