package router

import "database/sql"

// InfoResponse is returned by /api/v1/info/.
type InfoResponse struct {
	Version  string       `json:"version,omitempty"`
	Process  ProcessInfo  `json:"process"`
	Runtime  RuntimeInfo  `json:"runtime"`
	Database DatabaseInfo `json:"database"`
	Jobs     *JobsInfo    `json:"jobs,omitempty"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptimeSeconds"`
}

type RuntimeInfo struct {
	GoVersion     string `json:"goVersion,omitempty"`
	NumGoroutines int    `json:"numGoroutines,omitempty"`
	HeapAlloc     uint64 `json:"heapAlloc"`
	Sys           uint64 `json:"sys"`
}

// PoolConfigInfo exposes the pool configuration without credentials.
type PoolConfigInfo struct {
	DBName          string `json:"dbName,omitempty"`
	MaxOpenConns    int32  `json:"maxOpenConns,omitempty"`
	ConnMaxLifetime string `json:"connMaxLifetime,omitempty"`
	ConnMaxIdleTime string `json:"connMaxIdleTime,omitempty"`
}

type DatabaseInfo struct {
	sql.DBStats
	Status string  `json:"status"`
	Error  *string `json:"error,omitempty"`

	MigrationVersion *uint   `json:"migrationVersion,omitempty"`
	MigrationDirty   *bool   `json:"migrationDirty,omitempty"`
	MigrationError   *string `json:"migrationError,omitempty"`

	// the last account maintenance run of the leader
	LastAccountMaintenance *string `json:"lastAccountMaintenance,omitempty"`

	Pool PoolConfigInfo `json:"pool"`
}

// JobsInfo summarizes the job queue over all teams.
type JobsInfo struct {
	ByStatus map[string]int64 `json:"byStatus"`
	// processing jobs older than the lease, the worker reclaims them on its next pass
	Stale int64 `json:"stale"`
}
