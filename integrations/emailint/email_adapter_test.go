// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package emailint

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/integrations/commonint"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/stretchr/testify/assert"
)

func emailPayload(t *testing.T, key string, fields map[string]any) []byte {
	t.Helper()
	ts, token := "1760000000", "random-token"
	fields["signature"] = map[string]string{
		"timestamp": ts,
		"token":     token,
		"signature": commonint.HMACSHA256Hex(key, []byte(ts+token)),
	}
	b, err := json.Marshal(fields)
	assert.NoError(t, err)
	return b
}

func TestEmailVerifySignature(t *testing.T) {
	adapter := NewEmailAdapter()
	body := emailPayload(t, "signing-key", map[string]any{"Message-Id": "<a@b>"})

	t.Run("should accept a valid signature", func(t *testing.T) {
		assert.True(t, adapter.VerifySignature(nil, body, "signing-key"))
	})

	t.Run("should reject a signature made with another key", func(t *testing.T) {
		assert.False(t, adapter.VerifySignature(nil, body, "other-key"))
	})

	t.Run("should reject a replaced token", func(t *testing.T) {
		var payload map[string]any
		assert.NoError(t, json.Unmarshal(body, &payload))
		payload["signature"].(map[string]any)["token"] = "another-token"
		tampered, err := json.Marshal(payload)
		assert.NoError(t, err)
		assert.False(t, adapter.VerifySignature(nil, tampered, "signing-key"))
	})

	t.Run("should reject everything without a signing key", func(t *testing.T) {
		assert.False(t, adapter.VerifySignature(nil, body, ""))
	})

	t.Run("should reject payloads without signature", func(t *testing.T) {
		assert.False(t, adapter.VerifySignature(nil, []byte(`{"subject":"hi"}`), "signing-key"))
	})
}

func TestEmailNormalize(t *testing.T) {
	adapter := NewEmailAdapter()

	t.Run("should normalize a forwarded email", func(t *testing.T) {
		body := emailPayload(t, "k", map[string]any{
			"Message-Id":    " <CAF123@Mail.Example.com> ",
			"from":          "Alice Doe <Alice@example.com>",
			"recipient":     "inbox@threadline.example",
			"To":            "inbox@threadline.example, bob@example.com",
			"subject":       "Fwd: FW: Invoice export broken",
			"body-plain":    "full body with quotes",
			"stripped-text": "Export to CSV fails since Monday.",
		})
		ev, err := adapter.Normalize(nil, body)
		assert.NoError(t, err)
		assert.Equal(t, dtos.EventKindDiscussion, ev.Kind)
		assert.Equal(t, "caf123@mail.example.com", ev.SourceDedupKey)
		assert.Equal(t, "Invoice export broken", ev.Title)
		assert.Equal(t, "Export to CSV fails since Monday.", ev.Content)
		assert.Equal(t, "alice@example.com", ev.AuthorID)
		assert.Equal(t, "Alice Doe", ev.AuthorName)
		assert.Equal(t, "inbox@threadline.example", ev.SourceWorkspaceID)
		assert.Equal(t, []string{"alice@example.com", "inbox@threadline.example", "bob@example.com"}, ev.Participants)
	})

	t.Run("should derive the same dedup key for redelivered emails", func(t *testing.T) {
		a, _ := adapter.Normalize(nil, emailPayload(t, "k", map[string]any{"Message-Id": "<X@Y>"}))
		b, _ := adapter.Normalize(nil, emailPayload(t, "k", map[string]any{"message-id": "x@y"}))
		assert.Equal(t, a.SourceDedupKey, b.SourceDedupKey)
	})

	t.Run("should reject emails without message id", func(t *testing.T) {
		_, err := adapter.Normalize(nil, emailPayload(t, "k", map[string]any{"subject": "hi"}))
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
	})
}

func TestEmailTestConnection(t *testing.T) {
	adapter := NewEmailAdapter()
	key := "k"
	assert.NoError(t, adapter.TestConnection(context.Background(), models.ConnectedAccount{SigningSecret: &key}))
	assert.Error(t, adapter.TestConnection(context.Background(), models.ConnectedAccount{}))
}
