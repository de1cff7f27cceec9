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
	"log/slog"
	"time"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/monitoring"
	"github.com/prometheus/client_golang/prometheus"
)

// tokens expiring within this window are refreshed ahead of time
const refreshAhead = 15 * time.Minute

// RunAccountPipeline refreshes expiring tokens and re-verifies every connected account.
func (runner *DaemonRunner) RunAccountPipeline(ctx context.Context) {
	accounts := runner.FetchAccounts()
	refreshed := monitorStage(monitoring.AccountMaintenanceStageDuration.WithLabelValues("refresh"), runner.RefreshExpiring(ctx))(accounts)
	verified := monitorStage(monitoring.AccountMaintenanceStageDuration.WithLabelValues("verify"), runner.VerifyAccounts(ctx))(refreshed)
	waitForChannelDrain(verified)
}

func monitorStage[In any, Out any](
	hist prometheus.Observer,
	stageFunc func(<-chan In) <-chan Out,
) func(<-chan In) <-chan Out {
	return func(input <-chan In) <-chan Out {
		output := make(chan Out)
		go func() {
			defer close(output)
			start := time.Now()
			for item := range stageFunc(input) {
				hist.Observe(time.Since(start).Seconds())
				output <- item
				start = time.Now()
			}
		}()
		return output
	}
}

func waitForChannelDrain[T any](ch <-chan T) {
	for range ch {
	}
}

func (runner *DaemonRunner) FetchAccounts() <-chan models.ConnectedAccount {
	out := make(chan models.ConnectedAccount)
	go func() {
		defer close(out)
		accounts, err := runner.connectedAccountService.All()
		if err != nil {
			monitoring.Alert("could not fetch connected accounts for maintenance", err)
			return
		}
		for _, account := range accounts {
			out <- account
		}
	}()
	return out
}

func (runner *DaemonRunner) RefreshExpiring(ctx context.Context) func(<-chan models.ConnectedAccount) <-chan models.ConnectedAccount {
	return func(input <-chan models.ConnectedAccount) <-chan models.ConnectedAccount {
		out := make(chan models.ConnectedAccount)
		go func() {
			defer close(out)
			for account := range input {
				if account.RefreshToken == nil || account.TokenExpiresAt == nil || time.Until(*account.TokenExpiresAt) > refreshAhead {
					out <- account
					continue
				}
				refreshed, err := runner.connectedAccountService.RefreshToken(ctx, account)
				if err != nil {
					// marked expired, no need to verify again
					slog.Warn("could not refresh token", "accountID", account.ID, "provider", account.Provider, "err", err)
					continue
				}
				out <- refreshed
			}
		}()
		return out
	}
}

func (runner *DaemonRunner) VerifyAccounts(ctx context.Context) func(<-chan models.ConnectedAccount) <-chan models.ConnectedAccount {
	return func(input <-chan models.ConnectedAccount) <-chan models.ConnectedAccount {
		out := make(chan models.ConnectedAccount)
		go func() {
			defer close(out)
			for account := range input {
				result, err := runner.connectedAccountService.Verify(ctx, account.TeamID, account.ID)
				if err != nil {
					slog.Error("could not verify connected account", "accountID", account.ID, "err", err)
					continue
				}
				if !result.Success {
					slog.Warn("connected account is not healthy", "accountID", account.ID, "provider", account.Provider, "status", result.Status)
				}
				account.Status = models.AccountStatus(result.Status)
				out <- account
			}
		}()
		return out
	}
}
