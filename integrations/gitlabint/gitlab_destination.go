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
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/integrations/commonint"
	"github.com/l3montree-dev/threadline/shared"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

const (
	labelsProperty   = "labels"
	assigneeProperty = "assignee"
	dueDateProperty  = "due_date"
)

// scoped labels (priority::high) double as select properties
var scopedProperties = []string{"priority", "type"}

type GitlabDestination struct {
	newClient clientFactory
}

var _ shared.TaskDestination = (*GitlabDestination)(nil)

func NewGitlabDestination() *GitlabDestination {
	return &GitlabDestination{newClient: newGitlabClient}
}

func (g *GitlabDestination) Provider() models.Provider {
	return models.ProviderGitLab
}

func (g *GitlabDestination) project(account models.ConnectedAccount, output models.FlowOutput) (gitlabClientFacade, string, error) {
	pid := output.SettingString("projectId")
	if pid == "" {
		// numbers survive the jsonb round trip as float64
		if n, ok := output.Settings["projectId"].(float64); ok {
			pid = strconv.FormatInt(int64(n), 10)
		}
	}
	if pid == "" {
		return nil, "", shared.NewFatalError("gitlab.settings", fmt.Errorf("flow output %s has no projectId", output.ID))
	}
	client, err := g.newClient(account)
	if err != nil {
		return nil, "", err
	}
	return client, pid, nil
}

func (g *GitlabDestination) TestConnection(ctx context.Context, account models.ConnectedAccount) error {
	client, err := g.newClient(account)
	if err != nil {
		return err
	}
	_, resp, err := client.Whoami(ctx)
	if err != nil {
		return responseError("gitlab.whoami", resp, err)
	}
	return nil
}

func (g *GitlabDestination) FetchSchema(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput) ([]dtos.DestinationProperty, error) {
	client, pid, err := g.project(account, output)
	if err != nil {
		return nil, err
	}
	labels, resp, err := FetchPaginatedData(func(page int64) ([]*gitlab.Label, *gitlab.Response, error) {
		return client.ListLabels(ctx, pid, &gitlab.ListLabelsOptions{ListOptions: gitlab.ListOptions{Page: page, PerPage: 100}})
	})
	if err != nil {
		return nil, responseError("gitlab.list_labels", resp, err)
	}

	labelOptions := make([]dtos.PropertyOption, 0, len(labels))
	scoped := map[string][]dtos.PropertyOption{}
	for _, l := range labels {
		labelOptions = append(labelOptions, dtos.PropertyOption{ID: fmt.Sprint(l.ID), Name: l.Name})
		for _, scope := range scopedProperties {
			if strings.HasPrefix(strings.ToLower(l.Name), scope+"::") {
				scoped[scope] = append(scoped[scope], dtos.PropertyOption{ID: fmt.Sprint(l.ID), Name: l.Name})
			}
		}
	}

	properties := []dtos.DestinationProperty{
		{Key: labelsProperty, Name: "Labels", Type: dtos.PropertyTypeMultiSelect, Options: labelOptions},
		{Key: assigneeProperty, Name: "Assignee", Type: dtos.PropertyTypeUser},
		{Key: dueDateProperty, Name: "Due date", Type: dtos.PropertyTypeDate},
	}
	for _, scope := range scopedProperties {
		if opts := scoped[scope]; len(opts) > 0 {
			properties = append(properties, dtos.DestinationProperty{Key: scope, Name: scope, Type: dtos.PropertyTypeSelect, Options: opts})
		}
	}
	return properties, nil
}

func (g *GitlabDestination) ListUsers(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput) ([]dtos.DestinationUser, error) {
	client, pid, err := g.project(account, output)
	if err != nil {
		return nil, err
	}
	members, resp, err := FetchPaginatedData(func(page int64) ([]*gitlab.ProjectMember, *gitlab.Response, error) {
		return client.ListProjectMembers(ctx, pid, &gitlab.ListProjectMembersOptions{ListOptions: gitlab.ListOptions{Page: page, PerPage: 100}})
	})
	if err != nil {
		return nil, responseError("gitlab.list_members", resp, err)
	}

	users := make([]dtos.DestinationUser, 0, len(members))
	for _, m := range members {
		if m.State != "" && m.State != "active" {
			continue
		}
		users = append(users, dtos.DestinationUser{ID: fmt.Sprint(m.ID), Name: m.Name, Username: m.Username, Email: m.Email})
	}
	return users, nil
}

func createIssueOptions(task dtos.DestinationTask) (*gitlab.CreateIssueOptions, error) {
	opts := &gitlab.CreateIssueOptions{
		Title:       gitlab.Ptr(commonint.Truncate(task.Title, 255)),
		Description: gitlab.Ptr(task.Description),
	}

	labels := commonint.StringSlice(task.Fields[labelsProperty])
	for _, scope := range scopedProperties {
		if v, ok := commonint.StringValue(task.Fields[scope]); ok {
			labels = append(labels, v)
		}
	}
	if labels = commonint.Dedupe(labels...); len(labels) > 0 {
		opts.Labels = gitlab.Ptr(gitlab.LabelOptions(labels))
	}

	if v, ok := commonint.StringValue(task.Fields[dueDateProperty]); ok {
		if due, err := time.Parse(time.DateOnly, v); err == nil {
			opts.DueDate = gitlab.Ptr(gitlab.ISOTime(due))
		}
	}

	if task.AssigneeID != nil {
		id, err := strconv.Atoi(*task.AssigneeID)
		if err != nil {
			return nil, shared.NewFatalError("gitlab.create_issue", fmt.Errorf("gitlab user ids are numeric, got %q", *task.AssigneeID))
		}
		opts.AssigneeIDs = gitlab.Ptr([]int64{int64(id)})
	}
	return opts, nil
}

func (g *GitlabDestination) CreateTask(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput, task dtos.DestinationTask) (dtos.CreatedTask, error) {
	client, pid, err := g.project(account, output)
	if err != nil {
		return dtos.CreatedTask{}, err
	}
	opts, err := createIssueOptions(task)
	if err != nil {
		return dtos.CreatedTask{}, err
	}

	issue, resp, err := client.CreateIssue(ctx, pid, opts)
	if err != nil {
		return dtos.CreatedTask{}, responseError("gitlab.create_issue", resp, err)
	}
	slog.Info("created gitlab issue", "project", pid, "iid", issue.IID)

	url := issue.WebURL
	return dtos.CreatedTask{
		ExternalID: fmt.Sprintf("%d/%d", issue.ProjectID, issue.IID),
		URL:        &url,
	}, nil
}
