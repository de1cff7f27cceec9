// Copyright (C) 2026 l3montree GmbH
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

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
)

type DaemonRunner interface {
	Start()
}

type LeaderElector interface {
	IsLeader() bool
}

type ConfigRepository interface {
	Save(tx DB, config *models.Config) error
	GetDB(tx DB) DB
}

type ConfigService interface {
	// retrieves the value for the given key and marshals it into v
	GetJSONConfig(key string, v any) error
	SetJSONConfig(key string, v any) error
}

type ConnectedAccountRepository interface {
	Create(tx DB, account *models.ConnectedAccount) error
	Read(id uuid.UUID) (models.ConnectedAccount, error)
	ReadByTeam(teamID uuid.UUID, id uuid.UUID) (models.ConnectedAccount, error)
	ListByTeam(teamID uuid.UUID) ([]models.ConnectedAccount, error)
	All() ([]models.ConnectedAccount, error)
	Delete(tx DB, id uuid.UUID) error
	UpdateStatus(tx DB, id uuid.UUID, status models.AccountStatus, lastError *string, verifiedAt time.Time) error
	UpdateTokens(tx DB, id uuid.UUID, accessToken string, accessTokenHint string, refreshToken *string, expiresAt *time.Time) error
}

type FlowRepository interface {
	Create(tx DB, flow *models.Flow) error
	Save(tx DB, flow *models.Flow) error
	Delete(tx DB, id uuid.UUID) error
	ReadByTeam(teamID uuid.UUID, id uuid.UUID) (models.Flow, error)
	ReadBySlug(teamID uuid.UUID, slug string) (models.Flow, error)
	// ordered by creation time, then id
	ListByTeam(teamID uuid.UUID) ([]models.Flow, error)
	SetActive(tx DB, id uuid.UUID, active bool) error
	CreateInput(tx DB, input *models.FlowInput) error
	CreateOutput(tx DB, output *models.FlowOutput) error
	ReadOutput(id uuid.UUID) (models.FlowOutput, error)
	Transaction(fn func(tx DB) error) error
}

type DiscussionRepository interface {
	// CreateIfNotExists inserts the discussion unless its dedup key is already known.
	CreateIfNotExists(tx DB, discussion *models.Discussion) (bool, error)
	ReadByDedupKey(teamID uuid.UUID, sourceType models.Provider, dedupKey string) (models.Discussion, error)
	Read(id uuid.UUID) (models.Discussion, error)
	ReadByTeam(teamID uuid.UUID, id uuid.UUID) (models.Discussion, error)
	ListByTeam(teamID uuid.UUID, status *models.DiscussionStatus) ([]models.Discussion, error)
	SaveAnalysis(tx DB, id uuid.UUID, tasks []models.DetectedTask, domain *string, analyzedAt time.Time) error
	UpdateProcessingStatus(tx DB, id uuid.UUID, status models.DiscussionStatus) error
}

type TaskRepository interface {
	Create(tx DB, task *models.Task) error
	Save(tx DB, task *models.Task) error
	FindByCandidate(discussionID uuid.UUID, flowOutputID uuid.UUID, candidateIndex int) (models.Task, error)
	ListByDiscussion(discussionID uuid.UUID) ([]models.Task, error)
}

type JobRepository interface {
	Create(tx DB, job *models.Job) error
	Read(id uuid.UUID) (models.Job, error)
	ReadByTeam(teamID uuid.UUID, id uuid.UUID) (models.Job, error)
	ListByTeam(teamID uuid.UUID, status *models.JobStatus) ([]models.Job, error)
	// newest first
	ListByDiscussion(discussionID uuid.UUID) ([]models.Job, error)
	FindRunnable(now time.Time, limit int) ([]models.Job, error)
	// FindStale returns processing jobs started before startedBefore.
	FindStale(startedBefore time.Time, limit int) ([]models.Job, error)
	// CreateIngestJob inserts the job unless the discussion already has an ingest job.
	CreateIngestJob(tx DB, job *models.Job) (bool, error)
	FindIngestJob(discussionID uuid.UUID) (models.Job, error)
	// UpdateIfStatus persists the job only if its stored status still equals expected.
	// It reports whether this call won the transition.
	UpdateIfStatus(tx DB, job *models.Job, expected models.JobStatus) (bool, error)
}

type UserMappingRepository interface {
	Create(tx DB, mapping *models.UserMapping) error
	CreateIfNotExists(tx DB, mapping *models.UserMapping) (bool, error)
	Save(tx DB, mapping *models.UserMapping) error
	ReadByTeam(teamID uuid.UUID, id uuid.UUID) (models.UserMapping, error)
	FindBySource(teamID uuid.UUID, sourceType models.Provider, workspaceID string, sourceUserID string) (models.UserMapping, error)
	// FindByHandle matches the source user id or the source user name, case insensitive.
	FindByHandle(teamID uuid.UUID, sourceType models.Provider, workspaceID string, handle string) (models.UserMapping, error)
	ListByTeam(teamID uuid.UUID, unresolvedOnly bool) ([]models.UserMapping, error)
}

type ConnectedAccountService interface {
	Create(ctx context.Context, teamID uuid.UUID, req dtos.ConnectedAccountCreateRequest) (models.ConnectedAccount, error)
	Verify(ctx context.Context, teamID uuid.UUID, accountID uuid.UUID) (dtos.VerificationResult, error)
	Delete(teamID uuid.UUID, accountID uuid.UUID) error
	List(teamID uuid.UUID) ([]models.ConnectedAccount, error)
	Read(teamID uuid.UUID, accountID uuid.UUID) (models.ConnectedAccount, error)
	// ReadForWebhook loads an account by id only. The route carries no team.
	ReadForWebhook(accountID uuid.UUID) (models.ConnectedAccount, error)
	RefreshToken(ctx context.Context, account models.ConnectedAccount) (models.ConnectedAccount, error)
	All() ([]models.ConnectedAccount, error)
}

type DiscussionService interface {
	Ingest(ctx context.Context, account models.ConnectedAccount, event dtos.NormalizedEvent) (models.Discussion, bool, error)
	RecordAnalysis(discussionID uuid.UUID, classification dtos.Classification) error
	SetProcessingStatus(discussionID uuid.UUID, status models.DiscussionStatus) error
	Get(discussionID uuid.UUID) (models.Discussion, error)
	Read(teamID uuid.UUID, discussionID uuid.UUID) (models.Discussion, error)
	List(teamID uuid.UUID, status *models.DiscussionStatus) ([]models.Discussion, error)
}

type UserMappingService interface {
	Resolve(teamID uuid.UUID, sourceType models.Provider, workspaceID string, sourceUserID string) (models.UserMapping, error)
	ResolveHandle(teamID uuid.UUID, sourceType models.Provider, workspaceID string, handle string) (models.UserMapping, error)
	Confirm(teamID uuid.UUID, mappingID uuid.UUID, destinationUserID string, destinationUserName *string) (models.UserMapping, error)
	Discover(teamID uuid.UUID, sourceType models.Provider, workspaceID string, handles []string) ([]models.UserMapping, error)
	CreateManual(teamID uuid.UUID, req dtos.UserMappingCreateRequest) (models.UserMapping, error)
	Suggest(teamID uuid.UUID, users []dtos.DestinationUser) ([]models.UserMapping, error)
	List(teamID uuid.UUID, unresolvedOnly bool) ([]models.UserMapping, error)
}

type FlowService interface {
	CanonicalFlow(teamID uuid.UUID) (models.Flow, error)
	RouteOutput(flow models.Flow, domain string) (models.FlowOutput, error)
	List(teamID uuid.UUID) ([]models.Flow, error)
	Create(teamID uuid.UUID, req dtos.FlowCreateRequest) (models.Flow, error)
	Read(teamID uuid.UUID, flowID uuid.UUID) (models.Flow, error)
	SetActive(teamID uuid.UUID, flowID uuid.UUID, active bool) (models.Flow, error)
	AddInput(teamID uuid.UUID, flowID uuid.UUID, req dtos.FlowInputCreateRequest) (models.FlowInput, error)
	AddOutput(teamID uuid.UUID, flowID uuid.UUID, req dtos.FlowOutputCreateRequest) (models.FlowOutput, error)
	ReadOutput(teamID uuid.UUID, outputID uuid.UUID) (models.FlowOutput, error)
	Delete(teamID uuid.UUID, flowID uuid.UUID) error
	Import(teamID uuid.UUID, def dtos.FlowDefinition) (models.Flow, error)
}

type JobService interface {
	Enqueue(ctx context.Context, discussion models.Discussion, trigger models.JobTrigger) (models.Job, error)
	Trigger(ctx context.Context, teamID uuid.UUID, discussionID uuid.UUID) (models.Job, error)
	Retry(ctx context.Context, teamID uuid.UUID, discussionID uuid.UUID) (models.Job, error)
	Execute(ctx context.Context, jobID uuid.UUID) (models.Job, error)
	ListRunnable(limit int) ([]models.Job, error)
	ReclaimStale() (int, error)
	List(teamID uuid.UUID, status *models.JobStatus) ([]models.Job, error)
	Read(teamID uuid.UUID, jobID uuid.UUID) (models.Job, error)
	ListByDiscussion(teamID uuid.UUID, discussionID uuid.UUID) ([]models.Job, error)
}
