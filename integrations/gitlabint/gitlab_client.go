// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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

package gitlabint

import (
	"context"
	"fmt"
	"net/http"

	"github.com/l3montree-dev/threadline/common"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/integrations/commonint"
	"github.com/l3montree-dev/threadline/shared"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// gitlabClientFacade is the part of the gitlab api the destination needs.
// pid is the numeric id or the url encoded path of the project.
type gitlabClientFacade interface {
	Whoami(ctx context.Context) (*gitlab.User, *gitlab.Response, error)
	ListLabels(ctx context.Context, pid string, opt *gitlab.ListLabelsOptions) ([]*gitlab.Label, *gitlab.Response, error)
	ListProjectMembers(ctx context.Context, pid string, opt *gitlab.ListProjectMembersOptions) ([]*gitlab.ProjectMember, *gitlab.Response, error)
	CreateIssue(ctx context.Context, pid string, opt *gitlab.CreateIssueOptions) (*gitlab.Issue, *gitlab.Response, error)
}

type gitlabClient struct {
	*gitlab.Client
}

func (client gitlabClient) Whoami(ctx context.Context) (*gitlab.User, *gitlab.Response, error) {
	return client.Users.CurrentUser(gitlab.WithContext(ctx))
}

func (client gitlabClient) ListLabels(ctx context.Context, pid string, opt *gitlab.ListLabelsOptions) ([]*gitlab.Label, *gitlab.Response, error) {
	return client.Labels.ListLabels(pid, opt, gitlab.WithContext(ctx))
}

func (client gitlabClient) ListProjectMembers(ctx context.Context, pid string, opt *gitlab.ListProjectMembersOptions) ([]*gitlab.ProjectMember, *gitlab.Response, error) {
	// includes members inherited from parent groups
	return client.ProjectMembers.ListAllProjectMembers(pid, opt, gitlab.WithContext(ctx))
}

func (client gitlabClient) CreateIssue(ctx context.Context, pid string, opt *gitlab.CreateIssueOptions) (*gitlab.Issue, *gitlab.Response, error) {
	return client.Issues.CreateIssue(pid, opt, gitlab.WithContext(ctx))
}

type clientFactory func(account models.ConnectedAccount) (gitlabClientFacade, error)

// newGitlabClient uses gitlab.com unless the account metadata carries a baseUrl.
// Accounts connected through oauth carry a refresh token and authenticate with a bearer token.
func newGitlabClient(account models.ConnectedAccount) (gitlabClientFacade, error) {
	options := []gitlab.ClientOptionFunc{gitlab.WithHTTPClient(&common.OutgoingConnectionClient)}
	if base := account.MetadataString("baseUrl"); base != "" {
		options = append(options, gitlab.WithBaseURL(base))
	}

	var client *gitlab.Client
	var err error
	if account.RefreshToken != nil {
		client, err = gitlab.NewOAuthClient(account.AccessToken, options...)
	} else {
		client, err = gitlab.NewClient(account.AccessToken, options...)
	}
	if err != nil {
		return nil, shared.NewFatalError("gitlab.client", fmt.Errorf("could not create gitlab client: %w", err))
	}
	return gitlabClient{Client: client}, nil
}

func responseError(op string, resp *gitlab.Response, err error) error {
	var httpResp *http.Response
	if resp != nil {
		httpResp = resp.Response
	}
	return commonint.ClientError(op, httpResp, err)
}

// FetchPaginatedData follows the next page header until the last page.
func FetchPaginatedData[T any](fetchPage func(page int64) ([]T, *gitlab.Response, error)) ([]T, *gitlab.Response, error) {
	result := make([]T, 0)
	page := int64(1)
	for {
		data, resp, err := fetchPage(page)
		if err != nil {
			return nil, resp, err
		}
		result = append(result, data...)
		if resp == nil || resp.NextPage == 0 {
			return result, resp, nil
		}
		page = resp.NextPage
	}
}
