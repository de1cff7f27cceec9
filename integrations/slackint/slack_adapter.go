// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package slackint

import (
	"context"
	"encoding/json"
	"errors"
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
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

var authErrors = map[string]bool{
	"invalid_auth":     true,
	"token_revoked":    true,
	"account_inactive": true,
	"not_authed":       true,
	"token_expired":    true,
}

type SlackAdapter struct {
	httpClient *http.Client
	// empty means the public slack api
	apiURL string
}

var _ shared.SourceAdapter = (*SlackAdapter)(nil)

func NewSlackAdapter() *SlackAdapter {
	return &SlackAdapter{
		httpClient: &common.OutgoingConnectionClient,
	}
}

func (a *SlackAdapter) Provider() models.Provider {
	return models.ProviderSlack
}

// VerifySignature checks the v0 signing secret signature. Requests older than
// five minutes are rejected.
func (a *SlackAdapter) VerifySignature(header http.Header, body []byte, secret string) bool {
	verifier, err := slack.NewSecretsVerifier(header, secret)
	if err != nil {
		if errors.Is(err, slack.ErrExpiredTimestamp) {
			slog.Warn("slack request timestamp outside of tolerance", "timestamp", header.Get("X-Slack-Request-Timestamp"))
		}
		return false
	}
	if _, err := verifier.Write(body); err != nil {
		return false
	}
	return verifier.Ensure() == nil
}

type message struct {
	kind     string
	subtype  string
	botID    string
	user     string
	text     string
	channel  string
	ts       string
	threadTs string
	team     string
}

func messageOf(inner slackevents.EventsAPIInnerEvent) (message, bool) {
	switch ev := inner.Data.(type) {
	case *slackevents.MessageEvent:
		return message{
			kind:     ev.Type,
			subtype:  ev.SubType,
			botID:    ev.BotID,
			user:     ev.User,
			text:     ev.Text,
			channel:  ev.Channel,
			ts:       ev.TimeStamp,
			threadTs: ev.ThreadTimeStamp,
			team:     ev.SourceTeam,
		}, true
	case *slackevents.AppMentionEvent:
		return message{
			kind:     ev.Type,
			botID:    ev.BotID,
			user:     ev.User,
			text:     ev.Text,
			channel:  ev.Channel,
			ts:       ev.TimeStamp,
			threadTs: ev.ThreadTimeStamp,
			team:     ev.SourceTeam,
		}, true
	}
	return message{}, false
}

func (a *SlackAdapter) Normalize(_ http.Header, body []byte) (dtos.NormalizedEvent, error) {
	// the signing secret authenticates requests, the legacy verification token is not used
	envelope, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		if envelope.Type == "unmarshalling_error" {
			return dtos.NormalizedEvent{}, shared.NewValidationError("slack.normalize", fmt.Errorf("could not parse payload: %w", err))
		}
		return dtos.Ignored("unsupported event type " + envelope.Type), nil
	}

	switch envelope.Type {
	case slackevents.URLVerification:
		challenge, _ := envelope.Data.(*slackevents.EventsAPIURLVerificationEvent)
		if challenge == nil {
			return dtos.NormalizedEvent{}, shared.NewValidationError("slack.normalize", errors.New("url verification without challenge"))
		}
		return dtos.NormalizedEvent{Kind: dtos.EventKindChallenge, Challenge: challenge.Challenge}, nil
	case slackevents.CallbackEvent:
	default:
		return dtos.Ignored("unsupported payload type " + envelope.Type), nil
	}

	ev, ok := messageOf(envelope.InnerEvent)
	if !ok {
		return dtos.Ignored("unsupported event type " + envelope.InnerEvent.Type), nil
	}
	// edits, deletions, joins and bot messages carry a subtype
	if ev.subtype != "" || ev.botID != "" {
		return dtos.Ignored("message subtype " + ev.subtype), nil
	}
	if ev.channel == "" || ev.ts == "" {
		return dtos.NormalizedEvent{}, shared.NewValidationError("slack.normalize", fmt.Errorf("message event without channel or ts"))
	}

	threadTs := ev.threadTs
	if threadTs == "" {
		threadTs = ev.ts
	}
	workspace := envelope.TeamID
	if workspace == "" {
		workspace = ev.team
	}

	if handles, ok := commonint.ParseUserSync(ev.text); ok {
		return dtos.NormalizedEvent{
			Kind:              dtos.EventKindUserSync,
			SourceWorkspaceID: workspace,
			AuthorID:          ev.user,
			DiscoveredUsers:   handles,
		}, nil
	}

	return dtos.NormalizedEvent{
		Kind:              dtos.EventKindDiscussion,
		SourceDedupKey:    strings.Join([]string{ev.channel, threadTs, ev.ts}, ":"),
		SourceWorkspaceID: workspace,
		SourceThreadID:    ev.channel + ":" + threadTs,
		AuthorID:          ev.user,
		AuthorName:        ev.user,
		Title:             commonint.TitleFromContent(ev.text),
		Content:           ev.text,
		Participants:      commonint.Dedupe(append([]string{ev.user}, commonint.ParseMentions(ev.text)...)...),
		RawPayload:        json.RawMessage(body),
	}, nil
}

func (a *SlackAdapter) client(token string) *slack.Client {
	options := []slack.Option{slack.OptionHTTPClient(a.httpClient)}
	if a.apiURL != "" {
		options = append(options, slack.OptionAPIURL(a.apiURL))
	}
	return slack.New(token, options...)
}

// TestConnection calls auth.test with the stored bot token.
func (a *SlackAdapter) TestConnection(ctx context.Context, account models.ConnectedAccount) error {
	const op = "slack.auth_test"
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := a.client(account.AccessToken).AuthTestContext(ctx)
	if err == nil {
		return nil
	}

	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		if authErrors[slackErr.Err] {
			return shared.NewAuthError(op, fmt.Errorf("slack rejected the token: %s", slackErr.Err))
		}
		return shared.NewTransientError(op, fmt.Errorf("auth.test failed: %s", slackErr.Err))
	}
	var statusErr slack.StatusCodeError
	if errors.As(err, &statusErr) && (statusErr.Code == http.StatusUnauthorized || statusErr.Code == http.StatusForbidden) {
		return shared.NewAuthError(op, err)
	}
	return shared.NewTransientError(op, err)
}
