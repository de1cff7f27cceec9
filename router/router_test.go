package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/cmd/threadline/api"
	"github.com/l3montree-dev/threadline/controllers"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/middlewares"
	"github.com/l3montree-dev/threadline/mocks"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type routerTestEnv struct {
	srv      api.Server
	jobs     *mocks.JobService
	registry *mocks.IntegrationRegistry
}

func newRouterTestEnv(t *testing.T) routerTestEnv {
	t.Setenv("API_TOKEN", "team-token")
	env := routerTestEnv{
		srv:      api.Server{Echo: middlewares.Server()},
		jobs:     mocks.NewJobService(t),
		registry: mocks.NewIntegrationRegistry(t),
	}
	discussions := mocks.NewDiscussionService(t)
	accounts := mocks.NewConnectedAccountService(t)
	mappings := mocks.NewUserMappingService(t)
	flows := mocks.NewFlowService(t)

	apiV1 := APIV1Router{Group: env.srv.Echo.Group("/api/v1")}
	NewTeamRouter(apiV1,
		controllers.NewConnectedAccountController(accounts),
		controllers.NewFlowController(flows),
		controllers.NewDiscussionController(discussions, env.jobs),
		controllers.NewJobController(env.jobs),
		controllers.NewUserMappingController(mappings, flows, accounts, mocks.NewDestinationDirectory(t)),
	)
	NewWebhookRouter(env.srv, controllers.NewWebhookController(env.registry, accounts, discussions, mappings, env.jobs))
	return env
}

func (env routerTestEnv) serve(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.srv.Echo.ServeHTTP(rec, req)
	return rec
}

func TestTeamRouter(t *testing.T) {
	t.Run("should require the api token", func(t *testing.T) {
		env := newRouterTestEnv(t)
		rec := env.serve(http.MethodGet, "/api/v1/teams/"+uuid.NewString()+"/jobs/", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject a wrong api token", func(t *testing.T) {
		env := newRouterTestEnv(t)
		rec := env.serve(http.MethodGet, "/api/v1/teams/"+uuid.NewString()+"/jobs/", "other-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should serve team routes without trailing slash", func(t *testing.T) {
		env := newRouterTestEnv(t)
		teamID := uuid.New()
		env.jobs.On("List", teamID, (*models.JobStatus)(nil)).Return([]models.Job{}, nil)

		rec := env.serve(http.MethodGet, "/api/v1/teams/"+teamID.String()+"/jobs", "team-token")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("should map missing jobs to 404", func(t *testing.T) {
		env := newRouterTestEnv(t)
		teamID := uuid.New()
		jobID := uuid.New()
		env.jobs.On("Read", teamID, jobID).Return(models.Job{}, mockNotFound())

		rec := env.serve(http.MethodGet, "/api/v1/teams/"+teamID.String()+"/jobs/"+jobID.String()+"/", "team-token")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should not require the api token for webhooks", func(t *testing.T) {
		env := newRouterTestEnv(t)
		env.registry.On("Source", models.Provider("trello")).Return(nil, false)

		rec := env.serve(http.MethodPost, "/webhooks/trello/"+uuid.NewString()+"/", "")
		// the controller answered, not the auth middleware
		assert.Equal(t, http.StatusNotFound, rec.Code)
		env.registry.AssertCalled(t, "Source", mock.Anything)
	})
}

func mockNotFound() error {
	return shared.NewNotFoundError("read job", gorm.ErrRecordNotFound)
}
