package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/mocks"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type webhookTestEnv struct {
	registry    *mocks.IntegrationRegistry
	source      *mocks.SourceAdapter
	accounts    *mocks.ConnectedAccountService
	discussions *mocks.DiscussionService
	mappings    *mocks.UserMappingService
	jobs        *mocks.JobService
	account     models.ConnectedAccount
	controller  *WebhookController
}

func newWebhookTestEnv(t *testing.T) *webhookTestEnv {
	env := &webhookTestEnv{
		registry:    mocks.NewIntegrationRegistry(t),
		source:      mocks.NewSourceAdapter(t),
		accounts:    mocks.NewConnectedAccountService(t),
		discussions: mocks.NewDiscussionService(t),
		mappings:    mocks.NewUserMappingService(t),
		jobs:        mocks.NewJobService(t),
	}
	env.account = models.ConnectedAccount{
		Model:         models.Model{ID: uuid.New()},
		TeamID:        uuid.New(),
		Provider:      models.ProviderSlack,
		SigningSecret: shared.Ptr("signing-secret"),
		Status:        models.AccountStatusConnected,
	}
	env.controller = NewWebhookController(env.registry, env.accounts, env.discussions, env.mappings, env.jobs)
	return env
}

// expectVerified wires a known account whose payload passes verification and normalizes to event.
func (env *webhookTestEnv) expectVerified(event dtos.NormalizedEvent) {
	env.registry.On("Source", models.ProviderSlack).Return(env.source, true)
	env.accounts.On("ReadForWebhook", env.account.ID).Return(env.account, nil)
	env.source.On("VerifySignature", mock.Anything, mock.Anything, "signing-secret").Return(true)
	env.source.On("Normalize", mock.Anything, mock.Anything).Return(event, nil)
}

func (env *webhookTestEnv) request(provider string, accountID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"type":"event_callback"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("provider", "accountID")
	ctx.SetParamValues(provider, accountID)
	return ctx, rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

func TestWebhookHandle(t *testing.T) {
	discussionEvent := dtos.NormalizedEvent{
		Kind:              dtos.EventKindDiscussion,
		SourceDedupKey:    "C1:1700000000.1:1700000000.2",
		SourceWorkspaceID: "T1",
		Title:             "checkout is broken",
		Content:           "checkout is broken on mobile",
	}

	t.Run("should return 404 for providers without source adapter", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		env.registry.On("Source", models.Provider("jira")).Return(nil, false)

		ctx, _ := env.request("jira", env.account.ID.String())
		assert.Equal(t, http.StatusNotFound, httpStatus(t, env.controller.Handle(ctx)))
	})

	t.Run("should return 404 for unknown accounts", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		env.registry.On("Source", models.ProviderSlack).Return(env.source, true)
		env.accounts.On("ReadForWebhook", env.account.ID).Return(models.ConnectedAccount{}, shared.NewNotFoundError("read account", gorm.ErrRecordNotFound))

		ctx, _ := env.request("slack", env.account.ID.String())
		assert.Equal(t, http.StatusNotFound, httpStatus(t, env.controller.Handle(ctx)))
	})

	t.Run("should not accept deliveries for an account of another provider", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		env.account.Provider = models.ProviderFigma
		env.registry.On("Source", models.ProviderSlack).Return(env.source, true)
		env.accounts.On("ReadForWebhook", env.account.ID).Return(env.account, nil)

		ctx, _ := env.request("slack", env.account.ID.String())
		assert.Equal(t, http.StatusNotFound, httpStatus(t, env.controller.Handle(ctx)))
		env.source.AssertNotCalled(t, "VerifySignature", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject a malformed account id", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		env.registry.On("Source", models.ProviderSlack).Return(env.source, true)

		ctx, _ := env.request("slack", "not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, env.controller.Handle(ctx)))
	})

	t.Run("should reject invalid signatures without storing anything", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		env.registry.On("Source", models.ProviderSlack).Return(env.source, true)
		env.accounts.On("ReadForWebhook", env.account.ID).Return(env.account, nil)
		env.source.On("VerifySignature", mock.Anything, mock.Anything, "signing-secret").Return(false)

		ctx, _ := env.request("slack", env.account.ID.String())
		assert.Equal(t, http.StatusUnauthorized, httpStatus(t, env.controller.Handle(ctx)))
		env.discussions.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject deliveries for accounts without signing secret", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		env.account.SigningSecret = nil
		env.registry.On("Source", models.ProviderSlack).Return(env.source, true)
		env.accounts.On("ReadForWebhook", env.account.ID).Return(env.account, nil)

		ctx, _ := env.request("slack", env.account.ID.String())
		assert.Equal(t, http.StatusUnauthorized, httpStatus(t, env.controller.Handle(ctx)))
	})

	t.Run("should reject payloads the adapter cannot normalize", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		env.registry.On("Source", models.ProviderSlack).Return(env.source, true)
		env.accounts.On("ReadForWebhook", env.account.ID).Return(env.account, nil)
		env.source.On("VerifySignature", mock.Anything, mock.Anything, "signing-secret").Return(true)
		env.source.On("Normalize", mock.Anything, mock.Anything).Return(dtos.NormalizedEvent{}, errors.New("unexpected end of JSON input"))

		ctx, _ := env.request("slack", env.account.ID.String())
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, env.controller.Handle(ctx)))
	})

	t.Run("should answer the url verification challenge", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		env.expectVerified(dtos.NormalizedEvent{Kind: dtos.EventKindChallenge, Challenge: "3eZbrw1aBm2rZgRNFdxV2595E9CY3gmdALWMmHkvFXO7tYXAYM8P"})

		ctx, rec := env.request("slack", env.account.ID.String())
		require.NoError(t, env.controller.Handle(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"challenge":"3eZbrw1aBm2rZgRNFdxV2595E9CY3gmdALWMmHkvFXO7tYXAYM8P"}`, rec.Body.String())
	})

	t.Run("should acknowledge ignored events", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		env.expectVerified(dtos.Ignored("bot message"))

		ctx, rec := env.request("slack", env.account.ID.String())
		require.NoError(t, env.controller.Handle(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "bot message")
	})

	t.Run("should register discovered users of a user sync comment", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		env.expectVerified(dtos.NormalizedEvent{Kind: dtos.EventKindUserSync, SourceWorkspaceID: "T1", DiscoveredUsers: []string{"alice", "bob"}})
		env.mappings.On("Discover", env.account.TeamID, models.ProviderSlack, "T1", []string{"alice", "bob"}).Return([]models.UserMapping{{}, {}}, nil)

		ctx, rec := env.request("slack", env.account.ID.String())
		require.NoError(t, env.controller.Handle(ctx))

		var response dtos.WebhookResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Discovered)
		env.discussions.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should ingest a new discussion and enqueue a job", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		env.expectVerified(discussionEvent)
		discussion := models.Discussion{Model: models.Model{ID: uuid.New()}, TeamID: env.account.TeamID}
		job := models.Job{Model: models.Model{ID: uuid.New()}}
		env.discussions.On("Ingest", mock.Anything, env.account, discussionEvent).Return(discussion, true, nil)
		env.jobs.On("Enqueue", mock.Anything, discussion, models.JobTriggerIngest).Return(job, nil)

		ctx, rec := env.request("slack", env.account.ID.String())
		require.NoError(t, env.controller.Handle(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.WebhookResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.True(t, response.Created)
		assert.Equal(t, discussion.ID.String(), *response.DiscussionID)
		assert.Equal(t, job.ID.String(), *response.JobID)
	})

	t.Run("should answer a re-delivered event with the job of the first delivery", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		env.expectVerified(discussionEvent)
		discussion := models.Discussion{Model: models.Model{ID: uuid.New()}, TeamID: env.account.TeamID}
		existing := models.Job{Model: models.Model{ID: uuid.New()}, Status: models.JobStatusCompleted, Trigger: models.JobTriggerIngest}
		env.discussions.On("Ingest", mock.Anything, env.account, discussionEvent).Return(discussion, false, nil)
		env.jobs.On("Enqueue", mock.Anything, discussion, models.JobTriggerIngest).Return(existing, nil).Once()

		ctx, rec := env.request("slack", env.account.ID.String())
		require.NoError(t, env.controller.Handle(ctx))

		var response dtos.WebhookResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.False(t, response.Created)
		assert.Equal(t, existing.ID.String(), *response.JobID)
		env.jobs.AssertNotCalled(t, "ListByDiscussion", mock.Anything, mock.Anything)
	})

	t.Run("should hand the same job to interleaved deliveries of one event", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		discussion := models.Discussion{Model: models.Model{ID: uuid.New()}, TeamID: env.account.TeamID}
		ingestJob := models.Job{Model: models.Model{ID: uuid.New()}, Trigger: models.JobTriggerIngest}
		env.expectVerified(discussionEvent)
		// the second delivery sees the stored discussion before the first one enqueued
		env.discussions.On("Ingest", mock.Anything, env.account, discussionEvent).Return(discussion, false, nil).Once()
		env.discussions.On("Ingest", mock.Anything, env.account, discussionEvent).Return(discussion, true, nil).Once()
		env.jobs.On("Enqueue", mock.Anything, discussion, models.JobTriggerIngest).Return(ingestJob, nil).Twice()

		jobIDs := []string{}
		for i := 0; i < 2; i++ {
			ctx, rec := env.request("slack", env.account.ID.String())
			require.NoError(t, env.controller.Handle(ctx))
			var response dtos.WebhookResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			jobIDs = append(jobIDs, *response.JobID)
		}
		assert.Equal(t, []string{ingestJob.ID.String(), ingestJob.ID.String()}, jobIDs)
	})

	t.Run("should surface ingestion failures", func(t *testing.T) {
		env := newWebhookTestEnv(t)
		env.expectVerified(discussionEvent)
		env.discussions.On("Ingest", mock.Anything, env.account, discussionEvent).Return(models.Discussion{}, false, shared.NewValidationError("ingest", errors.New("empty dedup key")))

		ctx, _ := env.request("slack", env.account.ID.String())
		err := env.controller.Handle(ctx)
		assert.True(t, shared.IsKind(err, shared.ErrorKindValidation))
	})
}
