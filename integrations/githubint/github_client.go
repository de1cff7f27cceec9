// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package githubint

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/l3montree-dev/threadline/common"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/integrations/commonint"
	"github.com/l3montree-dev/threadline/shared"
)

// githubClientFacade is the part of the github api threadline uses.
type githubClientFacade interface {
	Me(ctx context.Context) (*github.User, *github.Response, error)
	ListLabels(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.Label, *github.Response, error)
	ListAssignees(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.User, *github.Response, error)
	CreateIssue(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
}

type githubClient struct {
	*github.Client
}

func (c githubClient) Me(ctx context.Context) (*github.User, *github.Response, error) {
	return c.Users.Get(ctx, "")
}

func (c githubClient) ListLabels(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.Label, *github.Response, error) {
	return c.Issues.ListLabels(ctx, owner, repo, opts)
}

func (c githubClient) ListAssignees(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.User, *github.Response, error) {
	return c.Issues.ListAssignees(ctx, owner, repo, opts)
}

func (c githubClient) CreateIssue(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error) {
	return c.Issues.Create(ctx, owner, repo, issue)
}

type clientFactory func(account models.ConnectedAccount) (githubClientFacade, error)

// newGithubClient authenticates with the stored token. A baseUrl in the provider metadata selects github enterprise.
func newGithubClient(account models.ConnectedAccount) (githubClientFacade, error) {
	client := github.NewClient(&common.OutgoingConnectionClient).WithAuthToken(account.AccessToken)
	if base := account.MetadataString("baseUrl"); base != "" {
		var err error
		client, err = client.WithEnterpriseURLs(base, base)
		if err != nil {
			return nil, shared.NewFatalError("github.client", fmt.Errorf("invalid enterprise url: %w", err))
		}
	}
	return githubClient{Client: client}, nil
}

// ParseRepository splits "owner/repo".
func ParseRepository(repository string) (string, string, error) {
	owner, repo, ok := strings.Cut(strings.Trim(repository, "/ "), "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", shared.NewFatalError("github.repository", fmt.Errorf("repository setting must be owner/repo, got %q", repository))
	}
	return owner, repo, nil
}

func responseError(op string, resp *github.Response, err error) error {
	var httpResp *http.Response
	if resp != nil {
		httpResp = resp.Response
	}
	return commonint.ClientError(op, httpResp, err)
}

// paginate collects all pages of a github list call.
func paginate[T any](fetch func(opts *github.ListOptions) ([]T, *github.Response, error)) ([]T, *github.Response, error) {
	opts := &github.ListOptions{PerPage: 100}
	result := make([]T, 0)
	for {
		page, resp, err := fetch(opts)
		if err != nil {
			return nil, resp, err
		}
		result = append(result, page...)
		if resp == nil || resp.NextPage == 0 {
			return result, resp, nil
		}
		opts.Page = resp.NextPage
	}
}
