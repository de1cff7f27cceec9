// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package figmaint

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/l3montree-dev/threadline/common"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/integrations/commonint"
	"github.com/l3montree-dev/threadline/shared"
)

type FigmaAdapter struct {
	httpClient *http.Client
	baseURL    string
}

var _ shared.SourceAdapter = (*FigmaAdapter)(nil)

func NewFigmaAdapter() *FigmaAdapter {
	return &FigmaAdapter{
		httpClient: &common.OutgoingConnectionClient,
		baseURL:    "https://api.figma.com",
	}
}

func (a *FigmaAdapter) Provider() models.Provider {
	return models.ProviderFigma
}

type figmaUser struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
	Email  string `json:"email"`
}

type commentFragment struct {
	Text    string `json:"text"`
	Mention string `json:"mention"`
}

type webhookPayload struct {
	EventType   string            `json:"event_type"`
	Passcode    string            `json:"passcode"`
	Timestamp   string            `json:"timestamp"`
	WebhookID   string            `json:"webhook_id"`
	FileKey     string            `json:"file_key"`
	FileName    string            `json:"file_name"`
	CommentID   string            `json:"comment_id"`
	ParentID    string            `json:"parent_id"`
	Comment     []commentFragment `json:"comment"`
	Mentions    []figmaUser       `json:"mentions"`
	TriggeredBy figmaUser         `json:"triggered_by"`
}

// VerifySignature compares the passcode figma echoes in every payload.
func (a *FigmaAdapter) VerifySignature(_ http.Header, body []byte, secret string) bool {
	var payload struct {
		Passcode string `json:"passcode"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return false
	}
	return commonint.ConstantTimeEqual(payload.Passcode, secret)
}

// renders the comment fragments, mentions become @handle
func (p webhookPayload) text() string {
	handles := make(map[string]string, len(p.Mentions))
	for _, m := range p.Mentions {
		handles[m.ID] = m.Handle
	}
	var b strings.Builder
	for _, f := range p.Comment {
		if f.Mention != "" {
			handle := handles[f.Mention]
			if handle == "" {
				handle = f.Mention
			}
			b.WriteString("@" + strings.ReplaceAll(handle, " ", ""))
			continue
		}
		b.WriteString(f.Text)
	}
	return b.String()
}

func (a *FigmaAdapter) Normalize(_ http.Header, body []byte) (dtos.NormalizedEvent, error) {
	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return dtos.NormalizedEvent{}, shared.NewValidationError("figma.normalize", fmt.Errorf("could not parse payload: %w", err))
	}

	switch payload.EventType {
	case "PING":
		return dtos.Ignored("ping"), nil
	case "FILE_COMMENT":
	default:
		return dtos.Ignored("unsupported event type " + payload.EventType), nil
	}
	if payload.FileKey == "" || payload.CommentID == "" {
		return dtos.NormalizedEvent{}, shared.NewValidationError("figma.normalize", fmt.Errorf("comment event without file key or comment id"))
	}

	text := payload.text()
	if handles, ok := commonint.ParseUserSync(text); ok {
		return dtos.NormalizedEvent{
			Kind:            dtos.EventKindUserSync,
			AuthorID:        payload.TriggeredBy.ID,
			AuthorName:      payload.TriggeredBy.Handle,
			DiscoveredUsers: handles,
		}, nil
	}

	thread := payload.CommentID
	if payload.ParentID != "" {
		thread = payload.ParentID
	}
	url := fmt.Sprintf("https://www.figma.com/file/%s?comment=%s", payload.FileKey, payload.CommentID)

	participants := []string{payload.TriggeredBy.Handle}
	for _, m := range payload.Mentions {
		participants = append(participants, m.Handle)
	}

	title := commonint.TitleFromContent(text)
	if payload.FileName != "" {
		title = commonint.Truncate(payload.FileName+": "+title, 120)
	}

	return dtos.NormalizedEvent{
		Kind:           dtos.EventKindDiscussion,
		SourceDedupKey: payload.FileKey + ":" + payload.CommentID,
		SourceThreadID: payload.FileKey + ":" + thread,
		SourceURL:      &url,
		AuthorID:       payload.TriggeredBy.ID,
		AuthorName:     payload.TriggeredBy.Handle,
		Title:          title,
		Content:        text,
		Participants:   commonint.Dedupe(participants...),
		RawPayload:     json.RawMessage(body),
	}, nil
}

// TestConnection reads the user the token belongs to.
func (a *FigmaAdapter) TestConnection(ctx context.Context, account models.ConnectedAccount) error {
	const op = "figma.me"
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/v1/me", nil)
	if err != nil {
		return shared.NewFatalError(op, err)
	}
	// oauth tokens are bearer tokens, personal access tokens use their own header
	if account.RefreshToken != nil {
		req.Header.Set("Authorization", "Bearer "+account.AccessToken)
	} else {
		req.Header.Set("X-Figma-Token", account.AccessToken)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return shared.NewTransientError(op, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return commonint.ResponseError(op, resp)
	}
	return nil
}
