package middlewares

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStatusCodeOf(t *testing.T) {
	cases := map[int]error{
		http.StatusBadRequest:          shared.NewValidationError("x", errors.New("bad")),
		http.StatusNotFound:            shared.NewNotFoundError("x", gorm.ErrRecordNotFound),
		http.StatusUnauthorized:        shared.NewAuthError("x", errors.New("revoked")),
		http.StatusUnprocessableEntity: shared.NewRoutingError("x", errors.New("no output")),
		http.StatusServiceUnavailable:  shared.NewTransientError("x", errors.New("timeout")),
		http.StatusInternalServerError: errors.New("boom"),
	}
	for code, err := range cases {
		t.Run("should map "+err.Error(), func(t *testing.T) {
			assert.Equal(t, code, StatusCodeOf(err))
		})
	}

	t.Run("should treat a bare record not found as 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, StatusCodeOf(gorm.ErrRecordNotFound))
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("should render pipeline errors with their kind", func(t *testing.T) {
		e := Server()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

		e.HTTPErrorHandler(shared.NewValidationError("retry", errors.New("latest job is completed")), ctx)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"kind":"validation"`)
	})

	t.Run("should hide internal errors", func(t *testing.T) {
		e := Server()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		e.HTTPErrorHandler(errors.New("pq: password authentication failed"), ctx)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("should keep the message of http errors", func(t *testing.T) {
		e := Server()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		e.HTTPErrorHandler(echo.NewHTTPError(http.StatusConflict, "already exists"), ctx)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"message":"already exists"}`, rec.Body.String())
	})
}

func TestAPITokenAuth(t *testing.T) {
	handler := func(ctx echo.Context) error { return ctx.NoContent(http.StatusNoContent) }

	run := func(token string, header string) error {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		ctx := e.NewContext(req, httptest.NewRecorder())
		return APITokenAuth(token)(handler)(ctx)
	}

	t.Run("should accept the configured bearer token", func(t *testing.T) {
		assert.NoError(t, run("s3cret", "Bearer s3cret"))
	})

	t.Run("should reject a wrong token", func(t *testing.T) {
		err := run("s3cret", "Bearer guess")
		var he *echo.HTTPError
		assert.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("should reject requests without a token", func(t *testing.T) {
		assert.Error(t, run("s3cret", ""))
	})

	t.Run("should reject everything when no token is configured", func(t *testing.T) {
		assert.Error(t, run("", "Bearer "))
	})
}

func TestSignedRequestAuth(t *testing.T) {
	handler := func(ctx echo.Context) error { return ctx.NoContent(http.StatusNoContent) }

	run := func(token string, req *http.Request) error {
		ctx := echo.New().NewContext(req, httptest.NewRecorder())
		return APITokenAuth(token)(handler)(ctx)
	}

	signed := func(t *testing.T, token string, body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/teams/x/jobs", strings.NewReader(body))
		require.NoError(t, SignRequest(token, req))
		return req
	}

	t.Run("should accept a request signed with the api token", func(t *testing.T) {
		assert.NoError(t, run("s3cret", signed(t, "s3cret", `{"discussionId":"1"}`)))
	})

	t.Run("should accept a signed request without body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/x/flows", nil)
		require.NoError(t, SignRequest("s3cret", req))
		assert.NoError(t, run("s3cret", req))
	})

	t.Run("should reject a signature made with another token", func(t *testing.T) {
		err := run("s3cret", signed(t, "guess", `{}`))
		var he *echo.HTTPError
		assert.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("should reject a signed request whose body was replaced", func(t *testing.T) {
		req := signed(t, "s3cret", `{"discussionId":"1"}`)
		req.Body = io.NopCloser(strings.NewReader(`{"discussionId":"2"}`))
		assert.Error(t, run("s3cret", req))
	})

	t.Run("should reject a signed request whose method was changed", func(t *testing.T) {
		req := signed(t, "s3cret", `{}`)
		req.Method = http.MethodDelete
		assert.Error(t, run("s3cret", req))
	})

	t.Run("should reject signed requests when no token is configured", func(t *testing.T) {
		assert.Error(t, run("", signed(t, "", `{}`)))
	})
}

func TestTeamMiddleware(t *testing.T) {
	t.Run("should expose the team id of the route", func(t *testing.T) {
		e := echo.New()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		teamID := uuid.New()
		ctx.SetParamNames("teamID")
		ctx.SetParamValues(teamID.String())

		err := TeamMiddleware()(func(ctx echo.Context) error {
			assert.Equal(t, teamID, shared.GetTeamID(ctx))
			return nil
		})(ctx)
		assert.NoError(t, err)
	})

	t.Run("should reject malformed team ids", func(t *testing.T) {
		e := echo.New()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		ctx.SetParamNames("teamID")
		ctx.SetParamValues("acme")

		err := TeamMiddleware()(func(ctx echo.Context) error { return nil })(ctx)
		var he *echo.HTTPError
		assert.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}
