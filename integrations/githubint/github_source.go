// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package githubint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v62/github"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/integrations/commonint"
	"github.com/l3montree-dev/threadline/shared"
)

// GithubIntegration is a source (issue comments) and a destination (issues) at the same time.
type GithubIntegration struct {
	newClient clientFactory
}

var _ shared.SourceAdapter = (*GithubIntegration)(nil)
var _ shared.TaskDestination = (*GithubIntegration)(nil)

func NewGithubIntegration() *GithubIntegration {
	return &GithubIntegration{newClient: newGithubClient}
}

func (g *GithubIntegration) Provider() models.Provider {
	return models.ProviderGitHub
}

func (g *GithubIntegration) VerifySignature(header http.Header, body []byte, secret string) bool {
	if secret == "" {
		return false
	}
	contentType := header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	_, err := github.ValidatePayloadFromBody(contentType, bytes.NewReader(body), header.Get(github.SHA256SignatureHeader), []byte(secret))
	if err != nil {
		slog.Warn("github webhook signature invalid", "err", err)
		return false
	}
	return true
}

func (g *GithubIntegration) Normalize(header http.Header, body []byte) (dtos.NormalizedEvent, error) {
	const op = "github.normalize"
	eventType := header.Get(github.EventTypeHeader)
	event, err := github.ParseWebHook(eventType, body)
	if err != nil {
		if eventType == "" {
			return dtos.NormalizedEvent{}, shared.NewValidationError(op, fmt.Errorf("missing %s header", github.EventTypeHeader))
		}
		// unknown event types are not an error of the sender
		return dtos.Ignored("unsupported event type " + eventType), nil
	}

	switch ev := event.(type) {
	case *github.PingEvent:
		return dtos.Ignored("ping"), nil
	case *github.IssueCommentEvent:
		return normalizeIssueComment(ev, body)
	}
	return dtos.Ignored("unsupported event type " + eventType), nil
}

func normalizeIssueComment(ev *github.IssueCommentEvent, body []byte) (dtos.NormalizedEvent, error) {
	if ev.GetAction() != "created" {
		return dtos.Ignored("comment " + ev.GetAction()), nil
	}
	if ev.GetSender().GetType() == "Bot" || ev.GetComment().GetUser().GetType() == "Bot" {
		return dtos.Ignored("bot comment"), nil
	}
	if ev.Comment == nil || ev.Issue == nil || ev.Repo == nil {
		return dtos.NormalizedEvent{}, shared.NewValidationError("github.normalize", fmt.Errorf("issue comment event without comment, issue or repository"))
	}

	repo := ev.GetRepo().GetFullName()
	owner := ev.GetRepo().GetOwner().GetLogin()
	author := ev.GetComment().GetUser()
	text := ev.GetComment().GetBody()

	if handles, ok := commonint.ParseUserSync(text); ok {
		return dtos.NormalizedEvent{
			Kind:              dtos.EventKindUserSync,
			SourceWorkspaceID: owner,
			AuthorID:          author.GetLogin(),
			AuthorName:        author.GetLogin(),
			DiscoveredUsers:   handles,
		}, nil
	}

	url := ev.GetComment().GetHTMLURL()
	participants := append([]string{author.GetLogin(), ev.GetIssue().GetUser().GetLogin()}, commonint.ParseMentions(text)...)

	return dtos.NormalizedEvent{
		Kind:              dtos.EventKindDiscussion,
		SourceDedupKey:    fmt.Sprintf("%s:%d:%d", repo, ev.GetIssue().GetNumber(), ev.GetComment().GetID()),
		SourceWorkspaceID: owner,
		SourceThreadID:    fmt.Sprintf("%s:%d", repo, ev.GetIssue().GetNumber()),
		SourceURL:         &url,
		AuthorID:          author.GetLogin(),
		AuthorName:        author.GetLogin(),
		Title:             commonint.Truncate(ev.GetIssue().GetTitle(), 120),
		Content:           text,
		Participants:      commonint.Dedupe(participants...),
		RawPayload:        json.RawMessage(body),
	}, nil
}

func (g *GithubIntegration) TestConnection(ctx context.Context, account models.ConnectedAccount) error {
	client, err := g.newClient(account)
	if err != nil {
		return err
	}
	_, resp, err := client.Me(ctx)
	if err != nil {
		return responseError("github.me", resp, err)
	}
	return nil
}
