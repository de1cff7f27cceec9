// Copyright (C) 2025 l3montree GmbH
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

package daemons

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/l3montree-dev/threadline/shared"
)

const accountMaintenanceKey = "daemons.accountMaintenance"

func getLastRunTime(configService shared.ConfigService, key string) (time.Time, error) {
	var lastRun struct {
		Time time.Time `json:"time"`
	}

	err := configService.GetJSONConfig(key, &lastRun)
	if err != nil && !shared.IsKind(err, shared.ErrorKindNotFound) {
		slog.Error("could not get last run time", "err", err, "key", key)
		return time.Time{}, err
	} else if err != nil {
		slog.Info("no last run time found. Setting to 0", "key", key)
		return time.Time{}, nil
	}
	return lastRun.Time, nil
}

func shouldRun(configService shared.ConfigService, key string, interval time.Duration) bool {
	lastTime, err := getLastRunTime(configService, key)
	if err != nil {
		return false
	}
	return time.Since(lastTime) > interval
}

func markRun(configService shared.ConfigService, key string) error {
	return configService.SetJSONConfig(key, struct {
		Time time.Time `json:"time"`
	}{
		Time: time.Now(),
	})
}

// DaemonRunner encapsulates daemon dependencies and lifecycle
type DaemonRunner struct {
	configService           shared.ConfigService
	leaderElector           shared.LeaderElector
	connectedAccountService shared.ConnectedAccountService
	worker                  *JobWorker

	maintenanceInterval time.Duration
	cancel              context.CancelFunc
}

var _ shared.DaemonRunner = (*DaemonRunner)(nil)

// NewDaemonRunner creates a new daemon runner with injected dependencies
func NewDaemonRunner(
	configService shared.ConfigService,
	leaderElector shared.LeaderElector,
	connectedAccountService shared.ConnectedAccountService,
	jobService shared.JobService,
	broker shared.PubSubBroker,
) *DaemonRunner {
	return &DaemonRunner{
		configService:           configService,
		leaderElector:           leaderElector,
		connectedAccountService: connectedAccountService,
		worker:                  NewJobWorker(jobService, broker),
		maintenanceInterval:     shared.EnvDuration("ACCOUNT_MAINTENANCE_INTERVAL", 6*time.Hour),
	}
}

// Start initiates the job worker and the account maintenance daemon.
// Every instance runs the worker, maintenance only runs on the leader.
func (runner *DaemonRunner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	runner.cancel = cancel

	go runner.worker.Run(ctx)
	go func() {
		runner.tick(ctx)
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runner.tick(ctx)
			}
		}
	}()
}

func (runner *DaemonRunner) Stop() error {
	if runner.cancel == nil {
		return errors.New("daemon runner was not started")
	}
	runner.cancel()
	return nil
}

func (runner *DaemonRunner) tick(ctx context.Context) {
	if !runner.leaderElector.IsLeader() {
		slog.Debug("not the leader - skipping account maintenance")
		return
	}
	if !shouldRun(runner.configService, accountMaintenanceKey, runner.maintenanceInterval) {
		return
	}

	start := time.Now()
	slog.Info("this instance is the leader - running account maintenance")
	runner.RunAccountPipeline(ctx)
	if err := markRun(runner.configService, accountMaintenanceKey); err != nil {
		slog.Error("could not mark account maintenance as done", "err", err)
	}
	slog.Info("account maintenance finished", "duration", time.Since(start))
}
