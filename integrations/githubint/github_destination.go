// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package githubint

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/integrations/commonint"
)

const (
	labelsProperty   = "labels"
	assigneeProperty = "assignee"
)

func (g *GithubIntegration) repository(account models.ConnectedAccount, output models.FlowOutput) (githubClientFacade, string, string, error) {
	owner, repo, err := ParseRepository(output.SettingString("repository"))
	if err != nil {
		return nil, "", "", err
	}
	client, err := g.newClient(account)
	if err != nil {
		return nil, "", "", err
	}
	return client, owner, repo, nil
}

// FetchSchema exposes the repository labels. Labels prefixed with "priority:" or "type:"
// additionally show up as select properties, a common convention for github issue triage.
func (g *GithubIntegration) FetchSchema(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput) ([]dtos.DestinationProperty, error) {
	client, owner, repo, err := g.repository(account, output)
	if err != nil {
		return nil, err
	}
	labels, resp, err := paginate(func(opts *github.ListOptions) ([]*github.Label, *github.Response, error) {
		return client.ListLabels(ctx, owner, repo, opts)
	})
	if err != nil {
		return nil, responseError("github.list_labels", resp, err)
	}

	labelOptions := make([]dtos.PropertyOption, 0, len(labels))
	prefixed := map[string][]dtos.PropertyOption{}
	for _, l := range labels {
		labelOptions = append(labelOptions, dtos.PropertyOption{ID: l.GetName(), Name: l.GetName()})
		for _, prefix := range []string{"priority", "type"} {
			if strings.HasPrefix(strings.ToLower(l.GetName()), prefix+":") {
				prefixed[prefix] = append(prefixed[prefix], dtos.PropertyOption{ID: l.GetName(), Name: l.GetName()})
			}
		}
	}

	properties := []dtos.DestinationProperty{
		{Key: labelsProperty, Name: "Labels", Type: dtos.PropertyTypeMultiSelect, Options: labelOptions},
		{Key: assigneeProperty, Name: "Assignee", Type: dtos.PropertyTypeUser},
	}
	for _, prefix := range []string{"priority", "type"} {
		if opts := prefixed[prefix]; len(opts) > 0 {
			properties = append(properties, dtos.DestinationProperty{Key: prefix, Name: prefix, Type: dtos.PropertyTypeSelect, Options: opts})
		}
	}
	return properties, nil
}

func (g *GithubIntegration) ListUsers(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput) ([]dtos.DestinationUser, error) {
	client, owner, repo, err := g.repository(account, output)
	if err != nil {
		return nil, err
	}
	assignees, resp, err := paginate(func(opts *github.ListOptions) ([]*github.User, *github.Response, error) {
		return client.ListAssignees(ctx, owner, repo, opts)
	})
	if err != nil {
		return nil, responseError("github.list_assignees", resp, err)
	}

	users := make([]dtos.DestinationUser, 0, len(assignees))
	for _, u := range assignees {
		// issues are assigned by login
		users = append(users, dtos.DestinationUser{ID: u.GetLogin(), Name: u.GetName(), Username: u.GetLogin(), Email: u.GetEmail()})
	}
	return users, nil
}

func (g *GithubIntegration) CreateTask(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput, task dtos.DestinationTask) (dtos.CreatedTask, error) {
	client, owner, repo, err := g.repository(account, output)
	if err != nil {
		return dtos.CreatedTask{}, err
	}

	labels := commonint.StringSlice(task.Fields[labelsProperty])
	// the prefixed select properties are labels as well
	for _, prefix := range []string{"priority", "type"} {
		if v, ok := commonint.StringValue(task.Fields[prefix]); ok {
			labels = append(labels, v)
		}
	}
	labels = commonint.Dedupe(labels...)

	req := &github.IssueRequest{
		Title: github.String(task.Title),
		Body:  github.String(task.Description),
	}
	if len(labels) > 0 {
		req.Labels = &labels
	}
	if task.AssigneeID != nil {
		req.Assignees = &[]string{*task.AssigneeID}
	}

	issue, resp, err := client.CreateIssue(ctx, owner, repo, req)
	if err != nil {
		return dtos.CreatedTask{}, responseError("github.create_issue", resp, err)
	}
	slog.Info("created github issue", "repository", owner+"/"+repo, "number", issue.GetNumber())

	url := issue.GetHTMLURL()
	return dtos.CreatedTask{
		ExternalID: fmt.Sprintf("%s/%s#%d", owner, repo, issue.GetNumber()),
		URL:        &url,
	}, nil
}
