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

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/integrations/commonint"
	"github.com/l3montree-dev/threadline/mapping"
	"github.com/l3montree-dev/threadline/monitoring"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/l3montree-dev/threadline/statemachine"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobConfig struct {
	DefaultMaxAttempts int
	Backoff            statemachine.BackoffPolicy
	// bound of a single destination create call
	CreateTimeout time.Duration
	// a job processing longer than this is considered abandoned
	LeaseTimeout time.Duration
}

func JobConfigFromEnv() JobConfig {
	return JobConfig{
		DefaultMaxAttempts: shared.EnvInt("JOB_DEFAULT_MAX_ATTEMPTS", 3),
		Backoff: statemachine.BackoffPolicy{
			Base: shared.EnvDuration("JOB_BACKOFF_BASE", statemachine.DefaultBackoff.Base),
			Max:  shared.EnvDuration("JOB_BACKOFF_MAX", statemachine.DefaultBackoff.Max),
		},
		CreateTimeout: 60 * time.Second,
		LeaseTimeout:  shared.EnvDuration("JOB_LEASE_TIMEOUT", statemachine.DefaultLease),
	}
}

type jobService struct {
	jobRepository              shared.JobRepository
	taskRepository             shared.TaskRepository
	connectedAccountRepository shared.ConnectedAccountRepository
	discussionService          shared.DiscussionService
	flowService                shared.FlowService
	userMappingService         shared.UserMappingService
	directory                  shared.DestinationDirectory
	classifier                 shared.Classifier
	registry                   shared.IntegrationRegistry
	broker                     shared.PubSubBroker

	config  JobConfig
	timeNow func() time.Time
}

var _ shared.JobService = (*jobService)(nil)

func NewJobService(
	jobRepository shared.JobRepository,
	taskRepository shared.TaskRepository,
	connectedAccountRepository shared.ConnectedAccountRepository,
	discussionService shared.DiscussionService,
	flowService shared.FlowService,
	userMappingService shared.UserMappingService,
	directory shared.DestinationDirectory,
	classifier shared.Classifier,
	registry shared.IntegrationRegistry,
	broker shared.PubSubBroker,
) *jobService {
	return &jobService{
		jobRepository:              jobRepository,
		taskRepository:             taskRepository,
		connectedAccountRepository: connectedAccountRepository,
		discussionService:          discussionService,
		flowService:                flowService,
		userMappingService:         userMappingService,
		directory:                  directory,
		classifier:                 classifier,
		registry:                   registry,
		broker:                     broker,
		config:                     JobConfigFromEnv(),
		timeNow:                    time.Now,
	}
}

func (s *jobService) maxAttempts(teamID uuid.UUID) int {
	flow, err := s.flowService.CanonicalFlow(teamID)
	if err == nil && flow.MaxAttempts != nil && *flow.MaxAttempts > 0 {
		return *flow.MaxAttempts
	}
	return s.config.DefaultMaxAttempts
}

func (s *jobService) publish(ctx context.Context, job models.Job) {
	if s.broker == nil {
		return
	}
	if err := s.broker.Publish(ctx, shared.NewSimplePubSubMessage(shared.JobsEnqueued, map[string]any{
		"jobID": job.ID.String(),
	})); err != nil {
		// the worker still picks the job up on its next poll
		slog.Warn("could not publish enqueued job", "jobID", job.ID, "err", err)
	}
}

func (s *jobService) create(ctx context.Context, discussion models.Discussion, trigger models.JobTrigger, retryOf *uuid.UUID) (models.Job, error) {
	job := statemachine.NewJob(discussion, trigger, s.maxAttempts(discussion.TeamID), retryOf)
	if err := s.jobRepository.Create(nil, &job); err != nil {
		return models.Job{}, fmt.Errorf("could not create job: %w", err)
	}
	slog.Info("job enqueued", "jobID", job.ID, "discussionID", discussion.ID, "trigger", trigger)
	s.publish(ctx, job)
	return job, nil
}

// Enqueue creates a pending job for a discussion. A discussion gets at most one
// ingest job, enqueueing it again returns the existing one.
func (s *jobService) Enqueue(ctx context.Context, discussion models.Discussion, trigger models.JobTrigger) (models.Job, error) {
	if trigger != models.JobTriggerIngest {
		return s.create(ctx, discussion, trigger, nil)
	}

	job := statemachine.NewJob(discussion, trigger, s.maxAttempts(discussion.TeamID), nil)
	created, err := s.jobRepository.CreateIngestJob(nil, &job)
	if err != nil {
		return models.Job{}, fmt.Errorf("could not create job: %w", err)
	}
	if !created {
		existing, err := s.jobRepository.FindIngestJob(discussion.ID)
		if err != nil {
			return models.Job{}, fmt.Errorf("could not read existing ingest job: %w", err)
		}
		slog.Debug("discussion already has an ingest job", "jobID", existing.ID, "discussionID", discussion.ID)
		return existing, nil
	}
	slog.Info("job enqueued", "jobID", job.ID, "discussionID", discussion.ID, "trigger", trigger)
	s.publish(ctx, job)
	return job, nil
}

// Trigger advances the open job of a discussion or creates a new one.
func (s *jobService) Trigger(ctx context.Context, teamID uuid.UUID, discussionID uuid.UUID) (models.Job, error) {
	discussion, err := s.discussionService.Read(teamID, discussionID)
	if err != nil {
		return models.Job{}, err
	}
	jobs, err := s.jobRepository.ListByDiscussion(discussion.ID)
	if err != nil {
		return models.Job{}, fmt.Errorf("could not list jobs: %w", err)
	}

	if len(jobs) > 0 {
		latest := jobs[0]
		switch latest.Status {
		case models.JobStatusProcessing:
			return latest, nil
		case models.JobStatusPending:
			s.publish(ctx, latest)
			return latest, nil
		case models.JobStatusRetrying:
			now := s.timeNow()
			advanced := latest
			advanced.NextRunAt = &now
			won, err := s.jobRepository.UpdateIfStatus(nil, &advanced, models.JobStatusRetrying)
			if err != nil {
				return models.Job{}, fmt.Errorf("could not advance job: %w", err)
			}
			if !won {
				// somebody else moved the job in the meantime
				return s.jobRepository.Read(latest.ID)
			}
			s.publish(ctx, advanced)
			return advanced, nil
		}
	}
	return s.create(ctx, discussion, models.JobTriggerManual, nil)
}

// Retry creates a new job for a discussion whose latest job failed. The failed job stays untouched.
func (s *jobService) Retry(ctx context.Context, teamID uuid.UUID, discussionID uuid.UUID) (models.Job, error) {
	discussion, err := s.discussionService.Read(teamID, discussionID)
	if err != nil {
		return models.Job{}, err
	}
	jobs, err := s.jobRepository.ListByDiscussion(discussion.ID)
	if err != nil {
		return models.Job{}, fmt.Errorf("could not list jobs: %w", err)
	}
	if len(jobs) == 0 {
		return models.Job{}, shared.NewValidationError("retry", errors.New("discussion has no job to retry"))
	}
	latest := jobs[0]
	if !statemachine.CanRetry(latest) {
		return models.Job{}, shared.NewValidationError("retry", fmt.Errorf("latest job is %s, only failed jobs can be retried", latest.Status))
	}
	return s.create(ctx, discussion, models.JobTriggerRetry, &latest.ID)
}

func (s *jobService) ListRunnable(limit int) ([]models.Job, error) {
	return s.jobRepository.FindRunnable(s.timeNow(), limit)
}

// ReclaimStale resolves jobs which stayed processing longer than the lease.
// They go back to retrying, or to failed once all attempts are used.
func (s *jobService) ReclaimStale() (int, error) {
	now := s.timeNow()
	stale, err := s.jobRepository.FindStale(now.Add(-s.config.LeaseTimeout), 100)
	if err != nil {
		return 0, fmt.Errorf("could not list stale jobs: %w", err)
	}

	reclaimed := 0
	for _, job := range stale {
		if !statemachine.IsStale(job, s.config.LeaseTimeout, now) {
			continue
		}
		next, _, err := statemachine.Reclaim(job, s.config.LeaseTimeout, s.config.Backoff, now)
		if err != nil {
			return reclaimed, err
		}
		won, err := s.transition(next, models.JobStatusProcessing)
		if err != nil {
			return reclaimed, fmt.Errorf("could not reclaim job %s: %w", job.ID, err)
		}
		if !won {
			// finished in the meantime
			continue
		}
		reclaimed++
		if next.Status == models.JobStatusFailed {
			s.setDiscussionStatus(next.DiscussionID, models.DiscussionStatusFailed)
		}
		slog.Warn("reclaimed stale job", "jobID", next.ID, "stage", next.Stage, "status", next.Status, "attempts", next.Attempts, "startedAt", job.StartedAt)
	}
	return reclaimed, nil
}

func (s *jobService) List(teamID uuid.UUID, status *models.JobStatus) ([]models.Job, error) {
	return s.jobRepository.ListByTeam(teamID, status)
}

func (s *jobService) Read(teamID uuid.UUID, jobID uuid.UUID) (models.Job, error) {
	job, err := s.jobRepository.ReadByTeam(teamID, jobID)
	if err != nil {
		return models.Job{}, notFoundOr("read job", err)
	}
	return job, nil
}

func (s *jobService) ListByDiscussion(teamID uuid.UUID, discussionID uuid.UUID) ([]models.Job, error) {
	discussion, err := s.discussionService.Read(teamID, discussionID)
	if err != nil {
		return nil, err
	}
	return s.jobRepository.ListByDiscussion(discussion.ID)
}

// transition persists next only if the stored job still has the status from.
func (s *jobService) transition(next models.Job, from models.JobStatus) (bool, error) {
	won, err := s.jobRepository.UpdateIfStatus(nil, &next, from)
	if err != nil {
		return false, err
	}
	if won && next.Status != from {
		monitoring.JobTransitions.WithLabelValues(string(from), string(next.Status)).Inc()
	}
	return won, nil
}

func (s *jobService) setDiscussionStatus(discussionID uuid.UUID, status models.DiscussionStatus) {
	if err := s.discussionService.SetProcessingStatus(discussionID, status); err != nil {
		slog.Error("could not update discussion status", "discussionID", discussionID, "status", status, "err", err)
	}
}

// Execute runs one attempt of a job. Jobs which are not due, terminal or
// already picked up by another worker are returned unchanged.
func (s *jobService) Execute(ctx context.Context, jobID uuid.UUID) (models.Job, error) {
	job, err := s.jobRepository.Read(jobID)
	if err != nil {
		return models.Job{}, notFoundOr("execute job", err)
	}
	now := s.timeNow()
	if !statemachine.CanStart(job) || !job.IsDue(now) {
		return job, nil
	}

	started, _, err := statemachine.Start(job, now)
	if err != nil {
		return job, err
	}
	won, err := s.transition(started, job.Status)
	if err != nil {
		return job, fmt.Errorf("could not start job: %w", err)
	}
	if !won {
		slog.Debug("job picked up by another worker", "jobID", job.ID)
		return job, nil
	}
	s.setDiscussionStatus(started.DiscussionID, models.DiscussionStatusProcessing)

	begin := time.Now()
	current := started
	result, runErr := s.runGuarded(ctx, &current)
	monitoring.JobDuration.Observe(time.Since(begin).Seconds())

	var next models.Job
	if runErr == nil {
		next, _, err = statemachine.Complete(current, result.taskIDs, result.issues, s.timeNow())
	} else {
		next, _, err = statemachine.Fail(current, runErr, s.config.Backoff, s.timeNow())
		next.MappingIssues = datatypes.NewJSONSlice(result.issues)
	}
	if err != nil {
		return current, err
	}

	won, err = s.transition(next, models.JobStatusProcessing)
	if err != nil {
		monitoring.Alert("could not persist job result", pkgerrors.Wrapf(err, "job %s", next.ID))
		return current, err
	}
	if !won {
		slog.Warn("job result was not persisted, status changed concurrently", "jobID", next.ID)
		return s.jobRepository.Read(next.ID)
	}

	switch next.Status {
	case models.JobStatusCompleted:
		s.setDiscussionStatus(next.DiscussionID, models.DiscussionStatusCompleted)
		slog.Info("job completed", "jobID", next.ID, "tasks", len(next.TaskIDs), "attempts", next.Attempts)
	case models.JobStatusFailed:
		s.setDiscussionStatus(next.DiscussionID, models.DiscussionStatusFailed)
		slog.Warn("job failed", "jobID", next.ID, "attempts", next.Attempts, "kind", shared.KindOf(runErr), "err", runErr)
	case models.JobStatusRetrying:
		slog.Info("job scheduled for retry", "jobID", next.ID, "attempts", next.Attempts, "nextRunAt", next.NextRunAt, "err", runErr)
	}
	return next, nil
}

type runResult struct {
	taskIDs []uuid.UUID
	issues  []string
}

type preparedTask struct {
	index    int
	task     dtos.DestinationTask
	unmapped []string
}

func (s *jobService) enterStage(job *models.Job, stage models.JobStage) error {
	next, err := statemachine.EnterStage(*job, stage)
	if err != nil {
		return err
	}
	won, err := s.transition(next, models.JobStatusProcessing)
	if err != nil {
		return err
	}
	if !won {
		return shared.NewFatalError("enter stage", fmt.Errorf("job %s is no longer processing", job.ID))
	}
	*job = next
	return nil
}

// runGuarded turns a panic inside a stage into an error so the job still
// leaves processing.
func (s *jobService) runGuarded(ctx context.Context, job *models.Job) (result runResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("stage %s panicked: %v", job.Stage, r)
			monitoring.Alert("job stage panicked", pkgerrors.Wrapf(err, "job %s", job.ID))
			result = runResult{taskIDs: []uuid.UUID{}, issues: []string{}}
		}
	}()
	return s.run(ctx, job)
}

// run executes the stages classify, map and create in order.
func (s *jobService) run(ctx context.Context, job *models.Job) (runResult, error) {
	result := runResult{taskIDs: []uuid.UUID{}, issues: []string{}}

	discussion, err := s.discussionService.Get(job.DiscussionID)
	if err != nil {
		return result, err
	}
	flow, err := s.flowService.CanonicalFlow(job.TeamID)
	if err != nil {
		return result, err
	}

	classification, err := s.classify(ctx, flow, discussion)
	if err != nil {
		return result, err
	}
	if len(classification.Tasks) == 0 {
		slog.Info("no tasks detected", "jobID", job.ID, "discussionID", discussion.ID)
		return result, nil
	}

	if err := s.enterStage(job, models.JobStageMap); err != nil {
		return result, err
	}
	output, err := s.flowService.RouteOutput(flow, classification.Domain)
	if err != nil {
		return result, err
	}
	account, err := s.outputAccount(job.TeamID, output)
	if err != nil {
		return result, err
	}
	destination, ok := s.registry.Destination(output.Provider)
	if !ok {
		return result, shared.NewFatalError("map", fmt.Errorf("provider %s cannot be used as destination", output.Provider))
	}
	prepared, issues, err := s.mapTasks(ctx, discussion, classification.Tasks, account, output)
	result.issues = issues
	if err != nil {
		return result, err
	}

	if err := s.enterStage(job, models.JobStageCreate); err != nil {
		return result, err
	}
	for _, p := range prepared {
		id, err := s.createTask(ctx, *job, discussion, destination, account, output, p)
		if err != nil {
			return result, err
		}
		result.taskIDs = append(result.taskIDs, id)
	}
	return result, nil
}

func (s *jobService) classify(ctx context.Context, flow models.Flow, discussion models.Discussion) (dtos.Classification, error) {
	if discussion.IsAnalyzed() {
		domain := ""
		if discussion.Domain != nil {
			domain = *discussion.Domain
		}
		return dtos.Classification{Tasks: discussion.DetectedTasks, Domain: domain}, nil
	}

	var classification dtos.Classification
	if !flow.AIEnabled {
		title := strings.TrimSpace(discussion.Title)
		if title == "" {
			title = commonint.TitleFromContent(discussion.Content)
		}
		classification = dtos.Classification{
			Tasks: []models.DetectedTask{{Title: title, Description: discussion.Content}},
		}
	} else {
		if s.classifier == nil {
			return dtos.Classification{}, shared.NewFatalError("classify", errors.New("no classifier configured"))
		}
		text := discussion.Content
		if discussion.Title != "" {
			text = discussion.Title + "\n\n" + discussion.Content
		}
		var err error
		classification, err = s.classifier.Classify(ctx, text, dtos.ClassifyOptions{
			Domains:      flow.AvailableDomains,
			SystemPrompt: flow.SystemPrompt,
			TaskPrompt:   flow.TaskPrompt,
		})
		if err != nil {
			return dtos.Classification{}, err
		}
	}

	if err := s.discussionService.RecordAnalysis(discussion.ID, classification); err != nil {
		return dtos.Classification{}, err
	}
	return classification, nil
}

func (s *jobService) outputAccount(teamID uuid.UUID, output models.FlowOutput) (models.ConnectedAccount, error) {
	if output.ConnectedAccountID == nil {
		return models.ConnectedAccount{}, shared.NewFatalError("map", fmt.Errorf("flow output %s has no connected account", output.ID))
	}
	account, err := s.connectedAccountRepository.ReadByTeam(teamID, *output.ConnectedAccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ConnectedAccount{}, shared.NewFatalError("map", fmt.Errorf("connected account %s of flow output %s does not exist", *output.ConnectedAccountID, output.ID))
		}
		return models.ConnectedAccount{}, err
	}
	if !account.IsUsable(s.timeNow()) {
		return models.ConnectedAccount{}, shared.NewAuthError("map", fmt.Errorf("%s account %q is %s", account.Provider, account.Label, account.Status))
	}
	return account, nil
}

func (s *jobService) mapTasks(ctx context.Context, discussion models.Discussion, tasks []models.DetectedTask, account models.ConnectedAccount, output models.FlowOutput) ([]preparedTask, []string, error) {
	issues := []string{}
	schema, err := s.directory.Schema(ctx, account, output)
	if err != nil {
		return nil, issues, err
	}
	rules := mapping.Rules{
		FieldMapping: output.FieldMapping.Data(),
		ValueMap:     output.ValueMap.Data(),
	}

	prepared := make([]preparedTask, 0, len(tasks))
	for i, task := range tasks {
		mapped := mapping.MapTask(task, schema, rules)
		notes := []string{}
		var assigneeID *string

		if task.Assignee != nil && strings.TrimSpace(*task.Assignee) != "" {
			handle := strings.TrimPrefix(strings.TrimSpace(*task.Assignee), "@")
			id, err := s.resolveAssignee(discussion, handle)
			if err != nil {
				return nil, issues, err
			}
			if id == nil {
				mapped.Unmapped[mapping.FieldAssignee] = handle
				notes = append(notes, "Unassigned source user: "+handle)
			}
			assigneeID = id
		}

		for _, field := range mapped.UnmappedFields() {
			monitoring.MappingIssues.WithLabelValues(field).Inc()
			issues = append(issues, fmt.Sprintf("task %d: %s=%s", i, field, mapped.Unmapped[field]))
		}

		title := strings.TrimSpace(task.Title)
		if title == "" {
			title = commonint.TitleFromContent(discussion.Content)
		}
		prepared = append(prepared, preparedTask{
			index: i,
			task: dtos.DestinationTask{
				Title:       title,
				Description: taskDescription(discussion, task, mapped, notes),
				Fields:      mapped.Fields,
				AssigneeID:  assigneeID,
			},
			unmapped: mapped.UnmappedFields(),
		})
	}
	return prepared, issues, nil
}

// resolveAssignee returns the destination user id of a source handle.
// Unknown handles are registered as discovered mappings, nil means unresolved.
func (s *jobService) resolveAssignee(discussion models.Discussion, handle string) (*string, error) {
	m, err := s.userMappingService.ResolveHandle(discussion.TeamID, discussion.SourceType, discussion.SourceWorkspaceID, handle)
	if err != nil {
		if !shared.IsKind(err, shared.ErrorKindNotFound) {
			return nil, err
		}
		if _, err := s.userMappingService.Discover(discussion.TeamID, discussion.SourceType, discussion.SourceWorkspaceID, []string{handle}); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if !m.IsResolved() {
		return nil, nil
	}
	return m.DestinationUserID, nil
}

func taskDescription(discussion models.Discussion, task models.DetectedTask, mapped mapping.MappedTask, notes []string) string {
	parts := []string{}
	description := strings.TrimSpace(task.Description)
	if description == "" {
		description = strings.TrimSpace(discussion.Content)
	}
	if description != "" {
		parts = append(parts, description)
	}
	if note := mapped.Note(); note != "" {
		parts = append(parts, note)
	}
	parts = append(parts, notes...)
	if discussion.SourceURL != nil && *discussion.SourceURL != "" {
		parts = append(parts, "Source: "+*discussion.SourceURL)
	}
	return strings.Join(parts, "\n\n")
}

// createTask posts one task to the destination. A task already synced for the
// same discussion, output and candidate is reused.
func (s *jobService) createTask(ctx context.Context, job models.Job, discussion models.Discussion, destination shared.TaskDestination, account models.ConnectedAccount, output models.FlowOutput, p preparedTask) (uuid.UUID, error) {
	existing, err := s.taskRepository.FindByCandidate(discussion.ID, output.ID, p.index)
	switch {
	case err == nil:
		if existing.SyncStatus == models.TaskSyncStatusSynced {
			return existing.ID, nil
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		existing = models.Task{
			TeamID:         job.TeamID,
			DiscussionID:   discussion.ID,
			FlowOutputID:   output.ID,
			CandidateIndex: p.index,
			Destination:    output.Provider,
		}
	default:
		return uuid.Nil, err
	}

	existing.JobID = job.ID
	existing.Title = p.task.Title
	existing.Fields = datatypes.JSONMap(p.task.Fields)
	existing.UnmappedFields = datatypes.NewJSONSlice(p.unmapped)

	createCtx, cancel := context.WithTimeout(ctx, s.config.CreateTimeout)
	defer cancel()
	created, createErr := destination.CreateTask(createCtx, account, output, p.task)
	if createErr != nil {
		existing.SyncStatus = models.TaskSyncStatusFailed
	} else {
		existing.SyncStatus = models.TaskSyncStatusSynced
		existing.ExternalID = created.ExternalID
		existing.ExternalURL = created.URL
	}

	if existing.ID == uuid.Nil {
		err = s.taskRepository.Create(nil, &existing)
	} else {
		err = s.taskRepository.Save(nil, &existing)
	}
	if createErr != nil {
		if err != nil {
			slog.Error("could not record failed task", "discussionID", discussion.ID, "err", err)
		}
		return uuid.Nil, createErr
	}
	if err != nil {
		// the task exists in the destination, losing the row would duplicate it on retry
		monitoring.Alert("could not persist created task", pkgerrors.Wrapf(err, "external id %s", created.ExternalID))
		return uuid.Nil, shared.NewFatalError("create", err)
	}
	slog.Info("created task", "jobID", job.ID, "destination", output.Provider, "externalID", created.ExternalID)
	return existing.ID, nil
}
