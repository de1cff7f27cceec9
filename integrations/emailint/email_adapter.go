// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package emailint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"
	"regexp"
	"strings"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/integrations/commonint"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/mailgun/mailgun-go/v4"
)

var forwardPrefix = regexp.MustCompile(`(?i)^\s*(fwd?|fw|wg)\s*:\s*`)

// EmailAdapter accepts forwarded emails posted as json by an inbound mail route (mailgun style).
type EmailAdapter struct{}

var _ shared.SourceAdapter = (*EmailAdapter)(nil)

func NewEmailAdapter() *EmailAdapter {
	return &EmailAdapter{}
}

func (a *EmailAdapter) Provider() models.Provider {
	return models.ProviderEmail
}

type inboundEmail struct {
	Signature    mailgun.Signature `json:"signature"`
	MessageID    string            `json:"Message-Id"`
	MessageIDAlt string            `json:"message-id"`
	From         string            `json:"from"`
	Sender       string            `json:"sender"`
	Recipient    string            `json:"recipient"`
	To           string            `json:"To"`
	Cc           string            `json:"Cc"`
	Subject      string            `json:"subject"`
	BodyPlain    string            `json:"body-plain"`
	StrippedText string            `json:"stripped-text"`
}

// VerifySignature checks the mailgun webhook signature with the account's signing key.
func (a *EmailAdapter) VerifySignature(_ http.Header, body []byte, secret string) bool {
	if secret == "" {
		return false
	}
	var payload mailgun.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return false
	}
	if payload.Signature.TimeStamp == "" || payload.Signature.Token == "" {
		return false
	}
	mg := mailgun.NewMailgun("", "")
	mg.SetWebhookSigningKey(secret)
	verified, err := mg.VerifyWebhookSignature(payload.Signature)
	if err != nil {
		slog.Debug("could not verify mailgun signature", "err", err)
		return false
	}
	return verified
}

// NormalizeMessageID strips whitespace and angle brackets and lowercases the id.
func NormalizeMessageID(id string) string {
	id = strings.TrimSpace(id)
	id = strings.TrimPrefix(id, "<")
	id = strings.TrimSuffix(id, ">")
	return strings.ToLower(strings.TrimSpace(id))
}

func StripForwardPrefix(subject string) string {
	for {
		stripped := forwardPrefix.ReplaceAllString(subject, "")
		if stripped == subject {
			return strings.TrimSpace(subject)
		}
		subject = stripped
	}
}

func addresses(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		list, err := mail.ParseAddressList(v)
		if err != nil {
			continue
		}
		for _, addr := range list {
			out = append(out, strings.ToLower(addr.Address))
		}
	}
	return commonint.Dedupe(out...)
}

func (a *EmailAdapter) Normalize(_ http.Header, body []byte) (dtos.NormalizedEvent, error) {
	const op = "email.normalize"
	var email inboundEmail
	if err := json.Unmarshal(body, &email); err != nil {
		return dtos.NormalizedEvent{}, shared.NewValidationError(op, fmt.Errorf("could not parse payload: %w", err))
	}

	messageID := email.MessageID
	if messageID == "" {
		messageID = email.MessageIDAlt
	}
	messageID = NormalizeMessageID(messageID)
	if messageID == "" {
		return dtos.NormalizedEvent{}, shared.NewValidationError(op, errors.New("email without Message-Id"))
	}

	from := email.From
	if from == "" {
		from = email.Sender
	}
	authorID, authorName := "", ""
	if addr, err := mail.ParseAddress(from); err == nil {
		authorID = strings.ToLower(addr.Address)
		authorName = addr.Name
	}
	if authorName == "" {
		authorName = authorID
	}

	content := email.StrippedText
	if strings.TrimSpace(content) == "" {
		content = email.BodyPlain
	}
	subject := StripForwardPrefix(email.Subject)
	if subject == "" {
		subject = commonint.TitleFromContent(content)
	}

	workspace := ""
	if rcpt := addresses(email.Recipient); len(rcpt) > 0 {
		workspace = rcpt[0]
	}

	return dtos.NormalizedEvent{
		Kind:              dtos.EventKindDiscussion,
		SourceDedupKey:    messageID,
		SourceWorkspaceID: workspace,
		SourceThreadID:    messageID,
		AuthorID:          authorID,
		AuthorName:        authorName,
		Title:             subject,
		Content:           strings.TrimSpace(content),
		Participants:      addresses(from, email.To, email.Cc),
		RawPayload:        json.RawMessage(body),
	}, nil
}

// TestConnection succeeds as soon as a signing key is stored, there is no api to call.
func (a *EmailAdapter) TestConnection(_ context.Context, account models.ConnectedAccount) error {
	if account.SigningSecret == nil || *account.SigningSecret == "" {
		return shared.NewFatalError("email.test_connection", errors.New("no signing key configured"))
	}
	return nil
}
