// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package jiraint

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/l3montree-dev/threadline/common"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/integrations/commonint"
	"github.com/l3montree-dev/threadline/shared"
)

const (
	fieldIssueType = "issuetype"
	fieldPriority  = "priority"
	fieldLabels    = "labels"
	fieldDueDate   = "duedate"
	fieldAssignee  = "assignee"

	defaultIssueType = "Task"
)

type JiraDestination struct {
	httpClient *http.Client
}

var _ shared.TaskDestination = (*JiraDestination)(nil)

// NewJiraDestination caches GET responses (projects, priorities, users) for a few minutes.
func NewJiraDestination() *JiraDestination {
	return &JiraDestination{httpClient: common.NewCachedClient(512, 5*time.Minute)}
}

func (j *JiraDestination) Provider() models.Provider {
	return models.ProviderJira
}

func projectKey(output models.FlowOutput) (string, error) {
	key := output.SettingString("projectKey")
	if key == "" {
		return "", shared.NewFatalError("jira.settings", fmt.Errorf("flow output %s has no projectKey", output.ID))
	}
	return key, nil
}

func (j *JiraDestination) TestConnection(ctx context.Context, account models.ConnectedAccount) error {
	c, err := newClient(j.httpClient, account)
	if err != nil {
		return err
	}
	_, err = c.Myself(ctx)
	return err
}

func (j *JiraDestination) FetchSchema(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput) ([]dtos.DestinationProperty, error) {
	key, err := projectKey(output)
	if err != nil {
		return nil, err
	}
	c, err := newClient(j.httpClient, account)
	if err != nil {
		return nil, err
	}

	project, err := c.GetProject(ctx, key)
	if err != nil {
		return nil, err
	}
	priorities, err := c.ListPriorities(ctx)
	if err != nil {
		return nil, err
	}

	issueTypes := make([]dtos.PropertyOption, 0, len(project.IssueTypes))
	for _, t := range project.IssueTypes {
		if t.Subtask {
			continue
		}
		issueTypes = append(issueTypes, dtos.PropertyOption{ID: t.ID, Name: t.Name})
	}
	priorityOptions := make([]dtos.PropertyOption, 0, len(priorities))
	for _, p := range priorities {
		priorityOptions = append(priorityOptions, dtos.PropertyOption{ID: p.ID, Name: p.Name})
	}

	return []dtos.DestinationProperty{
		{Key: fieldPriority, Name: "Priority", Type: dtos.PropertyTypeSelect, Options: priorityOptions},
		{Key: fieldIssueType, Name: "Issue Type", Type: dtos.PropertyTypeSelect, Options: issueTypes},
		{Key: fieldAssignee, Name: "Assignee", Type: dtos.PropertyTypeUser},
		{Key: fieldDueDate, Name: "Due date", Type: dtos.PropertyTypeDate},
		{Key: fieldLabels, Name: "Labels", Type: dtos.PropertyTypeMultiSelect},
	}, nil
}

func (j *JiraDestination) ListUsers(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput) ([]dtos.DestinationUser, error) {
	key, err := projectKey(output)
	if err != nil {
		return nil, err
	}
	c, err := newClient(j.httpClient, account)
	if err != nil {
		return nil, err
	}
	users, err := c.ListAssignableUsers(ctx, key)
	if err != nil {
		return nil, err
	}

	result := make([]dtos.DestinationUser, 0, len(users))
	for _, u := range users {
		// app and customer accounts can not be assigned
		if u.AccountType != "" && u.AccountType != "atlassian" {
			continue
		}
		result = append(result, dtos.DestinationUser{ID: u.AccountID, Name: u.DisplayName, Email: u.EmailAddress})
	}
	return result, nil
}

// labels must not contain spaces
func sanitizeLabel(label string) string {
	return strings.Join(strings.Fields(label), "-")
}

// issueFields builds the jira create payload from the mapped fields.
func issueFields(key string, output models.FlowOutput, task dtos.DestinationTask) map[string]any {
	issueType := output.SettingString("issueType")
	if issueType == "" {
		issueType = defaultIssueType
	}
	fields := map[string]any{
		"project":     map[string]string{"key": key},
		"summary":     commonint.Truncate(strings.ReplaceAll(task.Title, "\n", " "), 250),
		"description": PlainTextToADF(task.Description),
		"issuetype":   map[string]string{"name": issueType},
	}

	for k, v := range task.Fields {
		switch k {
		case fieldIssueType, fieldPriority:
			if name, ok := commonint.StringValue(v); ok {
				fields[k] = map[string]string{"name": name}
			}
		case fieldLabels:
			labels := make([]string, 0)
			for _, l := range commonint.StringSlice(v) {
				labels = append(labels, sanitizeLabel(l))
			}
			if labels = commonint.Dedupe(labels...); len(labels) > 0 {
				fields[k] = labels
			}
		case fieldDueDate:
			if date, ok := commonint.StringValue(v); ok {
				if _, err := time.Parse(time.DateOnly, date); err == nil {
					fields[k] = date
				}
			}
		case fieldAssignee:
			// handled below from the resolved user mapping
		default:
			fields[k] = v
		}
	}
	if task.AssigneeID != nil {
		fields[fieldAssignee] = map[string]string{"accountId": *task.AssigneeID}
	}
	return fields
}

func (j *JiraDestination) CreateTask(ctx context.Context, account models.ConnectedAccount, output models.FlowOutput, task dtos.DestinationTask) (dtos.CreatedTask, error) {
	key, err := projectKey(output)
	if err != nil {
		return dtos.CreatedTask{}, err
	}
	c, err := newClient(j.httpClient, account)
	if err != nil {
		return dtos.CreatedTask{}, err
	}

	created, err := c.CreateIssue(ctx, issueFields(key, output, task))
	if err != nil {
		return dtos.CreatedTask{}, err
	}
	slog.Info("created jira issue", "key", created.Key, "project", key)

	url := c.baseURL + "/browse/" + created.Key
	return dtos.CreatedTask{ExternalID: created.Key, URL: &url}, nil
}
