package router

import (
	"encoding/json"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/threadline/cmd/threadline/api"
	"github.com/l3montree-dev/threadline/database"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/l3montree-dev/threadline/statemachine"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

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

type APIV1Router struct {
	*echo.Group
}

func databaseInfo(db shared.DB, pool *pgxpool.Pool) DatabaseInfo {
	poolCfg := database.GetPoolConfigFromEnv()
	dbInfo := DatabaseInfo{
		Status: "unknown",
		Pool: PoolConfigInfo{
			DBName:          poolCfg.DBName,
			MaxOpenConns:    poolCfg.MaxOpenConns,
			ConnMaxLifetime: poolCfg.ConnMaxLifetime.String(),
			ConnMaxIdleTime: poolCfg.ConnMaxIdleTime.String(),
		},
	}
	sqlDB, err := db.DB()
	if err != nil {
		errMsg := "failed to get database instance"
		dbInfo.Status = "unhealthy"
		dbInfo.Error = &errMsg
		return dbInfo
	}
	if err := sqlDB.Ping(); err != nil {
		errMsg := "database ping failed"
		dbInfo.Status = "unhealthy"
		dbInfo.Error = &errMsg
		return dbInfo
	}
	dbInfo.Status = "healthy"

	// the pgx pool backs the sql.DB, its stats are the accurate ones
	if pool != nil {
		stats := pool.Stat()
		dbInfo.OpenConnections = int(stats.TotalConns())
		dbInfo.InUse = int(stats.AcquiredConns())
		dbInfo.Idle = int(stats.IdleConns())
		dbInfo.MaxOpenConnections = int(stats.MaxConns())
	} else {
		dbInfo.DBStats = sqlDB.Stats()
	}

	if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
		v := ver
		dbInfo.MigrationVersion = &v
		dbInfo.MigrationDirty = &dirty
	} else {
		errStr := err.Error()
		dbInfo.MigrationError = &errStr
	}

	var cfg models.Config
	if err := db.Where("key = ?", "daemons.accountMaintenance").First(&cfg).Error; err == nil {
		var last struct {
			Time time.Time `json:"time"`
		}
		if err := json.Unmarshal([]byte(cfg.Val), &last); err == nil {
			formatted := last.Time.Format(time.RFC3339)
			dbInfo.LastAccountMaintenance = &formatted
		}
	}
	return dbInfo
}

func jobsInfo(db shared.DB, lease time.Duration, now time.Time) (*JobsInfo, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := db.Model(&models.Job{}).Select("status, count(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	info := JobsInfo{ByStatus: make(map[string]int64, len(rows))}
	for _, row := range rows {
		info.ByStatus[row.Status] = row.Count
	}
	err := db.Model(&models.Job{}).
		Where("status = ? AND started_at < ?", models.JobStatusProcessing, now.Add(-lease)).
		Count(&info.Stale).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func NewAPIV1Router(srv api.Server, db shared.DB, pool *pgxpool.Pool) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	apiV1Router.GET("/info/", func(c echo.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		resp := InfoResponse{
			Version: api.Version,
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
				HeapAlloc:     mem.HeapAlloc,
				Sys:           mem.Sys,
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(api.StartedAt).Seconds()),
			},
			Database: databaseInfo(db, pool),
		}
		if resp.Database.Status == "healthy" {
			jobs, err := jobsInfo(db, shared.EnvDuration("JOB_LEASE_TIMEOUT", statemachine.DefaultLease), time.Now())
			if err != nil {
				slog.Warn("could not summarize jobs", "err", err)
			}
			resp.Jobs = jobs
		}

		host, _ := os.Hostname()
		if host != "" {
			resp.Process.Hostname = host
		}

		return c.JSON(200, resp)
	})

	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		// Check database connectivity
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.Ping(); err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(200, map[string]string{
			"status": "healthy",
		})
	})

	return APIV1Router{
		Group: apiV1Router,
	}
}
