// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package jiraint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/integrations/commonint"
	"github.com/l3montree-dev/threadline/shared"
)

const requestTimeout = 60 * time.Second

type client struct {
	httpClient  *http.Client
	baseURL     string
	userEmail   string
	accessToken string
	// oauth tokens are sent as bearer token, api tokens with basic auth
	bearer bool
}

func newClient(httpClient *http.Client, account models.ConnectedAccount) (client, error) {
	baseURL := strings.TrimSuffix(account.MetadataString("baseUrl"), "/")
	if baseURL == "" {
		return client{}, shared.NewFatalError("jira.client", fmt.Errorf("connected account %s has no baseUrl", account.ID))
	}
	c := client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		userEmail:   account.MetadataString("userEmail"),
		accessToken: account.AccessToken,
		bearer:      account.RefreshToken != nil,
	}
	if !c.bearer && c.userEmail == "" {
		return client{}, shared.NewFatalError("jira.client", fmt.Errorf("connected account %s has no userEmail for basic auth", account.ID))
	}
	return c, nil
}

type Project struct {
	ID         string      `json:"id"`
	Key        string      `json:"key"`
	Name       string      `json:"name"`
	IssueTypes []IssueType `json:"issueTypes"`
}

type IssueType struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subtask bool   `json:"subtask"`
}

type Priority struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	AccountID    string `json:"accountId"`
	AccountType  string `json:"accountType"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
	Active       bool   `json:"active"`
}

type CreateIssueResponse struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// do sends a request and decodes a 2xx response into out.
func (c client) do(ctx context.Context, op string, method string, path string, body any, out any, header http.Header) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return shared.NewFatalError(op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return shared.NewFatalError(op, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	if c.bearer {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	} else {
		req.SetBasicAuth(c.userEmail, c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return shared.NewTransientError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("jira request failed", "method", method, "path", path, "status", resp.StatusCode)
		return commonint.ResponseError(op, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return shared.NewTransientError(op, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

func (c client) Myself(ctx context.Context) (User, error) {
	var user User
	// never answer a connection test from the cache
	err := c.do(ctx, "jira.myself", http.MethodGet, "/rest/api/3/myself", nil, &user, http.Header{"Cache-Control": {"no-cache"}})
	return user, err
}

func (c client) GetProject(ctx context.Context, projectKey string) (Project, error) {
	var project Project
	err := c.do(ctx, "jira.get_project", http.MethodGet, "/rest/api/3/project/"+url.PathEscape(projectKey), nil, &project, nil)
	return project, err
}

func (c client) ListPriorities(ctx context.Context) ([]Priority, error) {
	var priorities []Priority
	err := c.do(ctx, "jira.list_priorities", http.MethodGet, "/rest/api/3/priority", nil, &priorities, nil)
	return priorities, err
}

func (c client) ListAssignableUsers(ctx context.Context, projectKey string) ([]User, error) {
	var users []User
	query := url.Values{"project": {projectKey}, "maxResults": {"1000"}}
	err := c.do(ctx, "jira.list_assignable_users", http.MethodGet, "/rest/api/3/user/assignable/search?"+query.Encode(), nil, &users, nil)
	return users, err
}

func (c client) CreateIssue(ctx context.Context, fields map[string]any) (CreateIssueResponse, error) {
	var created CreateIssueResponse
	err := c.do(ctx, "jira.create_issue", http.MethodPost, "/rest/api/3/issue", map[string]any{"fields": fields}, &created, nil)
	return created, err
}
