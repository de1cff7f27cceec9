package services

import (
	"context"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/shared"
	"go.uber.org/fx"
)

const leaderElectionKey = "leaderElection"

type leaderLease struct {
	LeaderID string `json:"leaderId"`
	LastPing int64  `json:"lastPing"`
}

// databaseLeaderElector keeps a lease in the config table.
// Only the leader runs the account maintenance.
type databaseLeaderElector struct {
	id            string
	configService shared.ConfigService
	isLeader      atomic.Bool
	leaseTTL      time.Duration
	timeNow       func() time.Time
}

var _ shared.LeaderElector = (*databaseLeaderElector)(nil)

func NewDatabaseLeaderElector(lc fx.Lifecycle, configService shared.ConfigService) *databaseLeaderElector {
	e := newDatabaseLeaderElector(configService)
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go e.run(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return e
}

func newDatabaseLeaderElector(configService shared.ConfigService) *databaseLeaderElector {
	return &databaseLeaderElector{
		id:            uuid.New().String(),
		configService: configService,
		leaseTTL:      6 * time.Minute,
		timeNow:       time.Now,
	}
}

func (e *databaseLeaderElector) IsLeader() bool {
	return e.isLeader.Load()
}

func (e *databaseLeaderElector) run(ctx context.Context) {
	for {
		isLeader, err := e.checkIfLeader()
		if err != nil {
			slog.Error("could not check if leader", "err", err)
		}
		e.isLeader.Store(isLeader)

		// renew well before the lease runs out, jittered so replicas do not race
		wait := time.Duration(60+rand.Intn(240)) * time.Second // #nosec
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

func (e *databaseLeaderElector) takeLease() error {
	return e.configService.SetJSONConfig(leaderElectionKey, leaderLease{
		LeaderID: e.id,
		LastPing: e.timeNow().Unix(),
	})
}

func (e *databaseLeaderElector) checkIfLeader() (bool, error) {
	var lease leaderLease
	if err := e.configService.GetJSONConfig(leaderElectionKey, &lease); err != nil {
		if !shared.IsKind(err, shared.ErrorKindNotFound) {
			return false, err
		}
		return true, e.takeLease()
	}

	expired := e.timeNow().Unix()-lease.LastPing > int64(e.leaseTTL.Seconds())
	if lease.LeaderID == e.id || expired {
		return true, e.takeLease()
	}
	return false, nil
}
