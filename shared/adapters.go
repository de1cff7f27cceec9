// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"context"
	"net/http"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
)

type ConnectionTester interface {
	// TestConnection returns an auth kind error if the provider rejected the credential.
	TestConnection(ctx context.Context, account models.ConnectedAccount) error
}

// SourceAdapter verifies and normalizes inbound events of one provider.
type SourceAdapter interface {
	ConnectionTester
	Provider() models.Provider
	VerifySignature(header http.Header, body []byte, secret string) bool
	// Normalize turns a verified payload into a canonical event. The dedup key is derived from provider native ids.
	Normalize(header http.Header, body []byte) (dtos.NormalizedEvent, error)
}

// TaskDestination is a tracker tasks get created in.
type TaskDestination interface {
	ConnectionTester
	Provider() models.Provider
	FetchSchema(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput) ([]dtos.DestinationProperty, error)
	ListUsers(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput) ([]dtos.DestinationUser, error)
	CreateTask(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput, task dtos.DestinationTask) (dtos.CreatedTask, error)
}

type IntegrationRegistry interface {
	Source(provider models.Provider) (SourceAdapter, bool)
	Destination(provider models.Provider) (TaskDestination, bool)
	ConnectionTester(provider models.Provider) (ConnectionTester, bool)
}

// DestinationDirectory caches the schema and users of a destination per flow output.
type DestinationDirectory interface {
	Schema(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput) ([]dtos.DestinationProperty, error)
	Users(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput) ([]dtos.DestinationUser, error)
	Invalidate(output models.FlowOutput)
}

type Classifier interface {
	Classify(ctx context.Context, text string, opts dtos.ClassifyOptions) (dtos.Classification, error)
}
