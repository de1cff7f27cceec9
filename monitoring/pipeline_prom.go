// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var WebhooksReceived = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "threadline_webhooks_received_total",
	Help: "Inbound webhook deliveries by provider and outcome",
}, []string{"provider", "outcome"})

var DiscussionsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "threadline_discussions_ingested_total",
	Help: "Ingested discussions by provider; created=false means a re-delivery",
}, []string{"provider", "created"})

var JobTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "threadline_job_transitions_total",
	Help: "Job status transitions",
}, []string{"from", "to"})

var JobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "threadline_job_duration_seconds",
	Help:    "Duration of a single job execution attempt in seconds",
	Buckets: prometheus.DefBuckets,
})

var ClassifierDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "threadline_classifier_duration_seconds",
	Help:    "Duration of classifier calls in seconds",
	Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
})

var MappingIssues = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "threadline_mapping_issues_total",
	Help: "Fields left unmapped while building destination tasks",
}, []string{"field"})

var AccountVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "threadline_account_verifications_total",
	Help: "Connected account verifications by provider and resulting status",
}, []string{"provider", "status"})

var AccountMaintenanceStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "threadline_account_maintenance_stage_duration_seconds",
	Help:    "Time an account spends in a stage of the account maintenance pipeline",
	Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30},
}, []string{"stage"})

var WorkerBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "threadline_worker_batch_size",
	Help:    "Number of runnable jobs picked up per worker pass",
	Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
})
