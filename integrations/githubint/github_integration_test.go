// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package githubint

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/integrations/commonint"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/stretchr/testify/assert"
)

type fakeGithubClient struct {
	labels    []*github.Label
	assignees []*github.User
	created   *github.IssueRequest
	createErr error
	createRes *github.Response
}

func (f *fakeGithubClient) Me(ctx context.Context) (*github.User, *github.Response, error) {
	return &github.User{Login: github.String("threadline")}, nil, nil
}

func (f *fakeGithubClient) ListLabels(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.Label, *github.Response, error) {
	return f.labels, &github.Response{}, nil
}

func (f *fakeGithubClient) ListAssignees(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.User, *github.Response, error) {
	return f.assignees, &github.Response{}, nil
}

func (f *fakeGithubClient) CreateIssue(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error) {
	f.created = issue
	if f.createErr != nil {
		return nil, f.createRes, f.createErr
	}
	return &github.Issue{Number: github.Int(12), HTMLURL: github.String("https://github.com/acme/web/issues/12")}, nil, nil
}

func integrationWith(client *fakeGithubClient) *GithubIntegration {
	return &GithubIntegration{newClient: func(models.ConnectedAccount) (githubClientFacade, error) {
		return client, nil
	}}
}

func repoOutput(repository string) models.FlowOutput {
	return models.FlowOutput{Provider: models.ProviderGitHub, Settings: map[string]any{"repository": repository}}
}

const issueCommentPayload = `{
	"action": "created",
	"issue": {"number": 7, "title": "Checkout broken", "user": {"login": "carol"}},
	"comment": {"id": 99, "body": "@dave please look at the totals", "html_url": "https://github.com/acme/web/issues/7#issuecomment-99", "user": {"login": "alice", "type": "User"}},
	"repository": {"full_name": "acme/web", "owner": {"login": "acme"}},
	"sender": {"login": "alice", "type": "User"}
}`

func eventHeader(event string) http.Header {
	h := http.Header{}
	h.Set(github.EventTypeHeader, event)
	h.Set("Content-Type", "application/json")
	return h
}

func TestGithubVerifySignature(t *testing.T) {
	g := NewGithubIntegration()
	body := []byte(issueCommentPayload)

	t.Run("should accept a valid sha256 signature", func(t *testing.T) {
		h := eventHeader("issue_comment")
		h.Set(github.SHA256SignatureHeader, "sha256="+commonint.HMACSHA256Hex("secret", body))
		assert.True(t, g.VerifySignature(h, body, "secret"))
	})

	t.Run("should reject an invalid signature", func(t *testing.T) {
		h := eventHeader("issue_comment")
		h.Set(github.SHA256SignatureHeader, "sha256="+commonint.HMACSHA256Hex("other", body))
		assert.False(t, g.VerifySignature(h, body, "secret"))
	})

	t.Run("should reject unsigned requests", func(t *testing.T) {
		assert.False(t, g.VerifySignature(eventHeader("issue_comment"), body, "secret"))
	})
}

func TestGithubNormalize(t *testing.T) {
	g := NewGithubIntegration()

	t.Run("should normalize a new issue comment", func(t *testing.T) {
		ev, err := g.Normalize(eventHeader("issue_comment"), []byte(issueCommentPayload))
		assert.NoError(t, err)
		assert.Equal(t, dtos.EventKindDiscussion, ev.Kind)
		assert.Equal(t, "acme/web:7:99", ev.SourceDedupKey)
		assert.Equal(t, "acme", ev.SourceWorkspaceID)
		assert.Equal(t, "Checkout broken", ev.Title)
		assert.Equal(t, []string{"alice", "carol", "dave"}, ev.Participants)
	})

	t.Run("should ignore pings and edits", func(t *testing.T) {
		ev, err := g.Normalize(eventHeader("ping"), []byte(`{"zen":"hi","hook_id":1}`))
		assert.NoError(t, err)
		assert.Equal(t, dtos.EventKindIgnored, ev.Kind)

		ev, err = g.Normalize(eventHeader("issue_comment"), []byte(`{"action":"edited"}`))
		assert.NoError(t, err)
		assert.Equal(t, dtos.EventKindIgnored, ev.Kind)
	})

	t.Run("should detect user sync comments", func(t *testing.T) {
		body := []byte(`{"action":"created","issue":{"number":1},"comment":{"id":2,"body":"@threadline-bot User Sync: @alice @bob","user":{"login":"carol"}},"repository":{"full_name":"acme/web","owner":{"login":"acme"}},"sender":{"login":"carol"}}`)
		ev, err := g.Normalize(eventHeader("issue_comment"), body)
		assert.NoError(t, err)
		assert.Equal(t, dtos.EventKindUserSync, ev.Kind)
		assert.Equal(t, []string{"alice", "bob"}, ev.DiscoveredUsers)
	})

	t.Run("should reject requests without event header", func(t *testing.T) {
		_, err := g.Normalize(http.Header{}, []byte(issueCommentPayload))
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
	})
}

func TestGithubDestination(t *testing.T) {
	t.Run("should expose labels and prefixed labels as properties", func(t *testing.T) {
		client := &fakeGithubClient{labels: []*github.Label{
			{Name: github.String("bug")},
			{Name: github.String("priority:high")},
			{Name: github.String("priority:low")},
		}}
		properties, err := integrationWith(client).FetchSchema(context.Background(), models.ConnectedAccount{}, repoOutput("acme/web"))
		assert.NoError(t, err)
		assert.Len(t, properties, 3)
		assert.Equal(t, "labels", properties[0].Key)
		assert.Len(t, properties[0].Options, 3)
		assert.Equal(t, "priority", properties[2].Key)
		assert.Equal(t, []dtos.PropertyOption{{ID: "priority:high", Name: "priority:high"}, {ID: "priority:low", Name: "priority:low"}}, properties[2].Options)
	})

	t.Run("should list assignees by login", func(t *testing.T) {
		client := &fakeGithubClient{assignees: []*github.User{{Login: github.String("alice"), Name: github.String("Alice")}}}
		users, err := integrationWith(client).ListUsers(context.Background(), models.ConnectedAccount{}, repoOutput("acme/web"))
		assert.NoError(t, err)
		assert.Equal(t, []dtos.DestinationUser{{ID: "alice", Name: "Alice", Username: "alice"}}, users)
	})

	t.Run("should create an issue with labels and assignee", func(t *testing.T) {
		client := &fakeGithubClient{}
		assignee := "alice"
		created, err := integrationWith(client).CreateTask(context.Background(), models.ConnectedAccount{}, repoOutput("acme/web"), dtos.DestinationTask{
			Title:       "Fix totals",
			Description: "details",
			Fields:      map[string]any{"labels": []string{"bug"}, "priority": "priority:high"},
			AssigneeID:  &assignee,
		})
		assert.NoError(t, err)
		assert.Equal(t, "acme/web#12", created.ExternalID)
		assert.Equal(t, []string{"bug", "priority:high"}, *client.created.Labels)
		assert.Equal(t, []string{"alice"}, *client.created.Assignees)
	})

	t.Run("should classify an unauthorized response as auth error", func(t *testing.T) {
		resp := &github.Response{Response: &http.Response{StatusCode: http.StatusUnauthorized}}
		client := &fakeGithubClient{createErr: &github.ErrorResponse{Response: resp.Response, Message: "Bad credentials"}, createRes: resp}
		_, err := integrationWith(client).CreateTask(context.Background(), models.ConnectedAccount{}, repoOutput("acme/web"), dtos.DestinationTask{Title: "x"})
		assert.Equal(t, shared.ErrorKindAuth, shared.KindOf(err))
	})

	t.Run("should fail fatally on an invalid repository setting", func(t *testing.T) {
		_, err := integrationWith(&fakeGithubClient{}).FetchSchema(context.Background(), models.ConnectedAccount{}, repoOutput("acme"))
		assert.Equal(t, shared.ErrorKindFatal, shared.KindOf(err))
	})
}
