// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/stretchr/testify/assert"
)

func completion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func newTestClient(url string, timeout time.Duration) *Client {
	return NewClient(Config{
		BaseURL:           url,
		APIKey:            "secret-key",
		Model:             "test-model",
		Timeout:           timeout,
		RequestsPerSecond: 100,
	}, http.DefaultClient)
}

func TestClassify(t *testing.T) {
	t.Run("should send a json mode chat completion request", func(t *testing.T) {
		var got chatRequest
		var auth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			_ = json.NewDecoder(r.Body).Decode(&got)
			_, _ = w.Write([]byte(completion(`{"domain":"","tasks":[]}`)))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL+"/", time.Second).Classify(context.Background(), "hello", dtos.ClassifyOptions{Domains: []string{"design"}})
		assert.NoError(t, err)
		assert.Equal(t, "Bearer secret-key", auth)
		assert.Equal(t, "json_object", got.ResponseFormat["type"])
		assert.Equal(t, "test-model", got.Model)
		assert.Len(t, got.Messages, 2)
		assert.Contains(t, got.Messages[0].Content, "design")
		assert.Equal(t, "hello", got.Messages[1].Content)
	})

	t.Run("should apply the prompt overrides", func(t *testing.T) {
		var got chatRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&got)
			_, _ = w.Write([]byte(completion(`{"domain":"","tasks":[]}`)))
		}))
		defer server.Close()

		system := "You are the ops triage bot."
		task := "Only extract outages."
		_, err := newTestClient(server.URL, time.Second).Classify(context.Background(), "db is down", dtos.ClassifyOptions{SystemPrompt: &system, TaskPrompt: &task})
		assert.NoError(t, err)
		assert.Contains(t, got.Messages[0].Content, system)
		assert.NotContains(t, got.Messages[0].Content, "extract actionable work items")
		assert.Equal(t, "Only extract outages.\n\ndb is down", got.Messages[1].Content)
	})

	t.Run("should decode tasks and normalize the domain", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(completion("```json\n" + `{"domain":"DESIGN","tasks":[{"title":" Fix the header ","priority":"high","assignee":"@alice","domain":"sales"},{"title":"  "}]}` + "\n```")))
		}))
		defer server.Close()

		result, err := newTestClient(server.URL, time.Second).Classify(context.Background(), "text", dtos.ClassifyOptions{Domains: []string{"design", "backend"}})
		assert.NoError(t, err)
		assert.Equal(t, "design", result.Domain)
		assert.Len(t, result.Tasks, 1)
		assert.Equal(t, "Fix the header", result.Tasks[0].Title)
		assert.Equal(t, "alice", *result.Tasks[0].Assignee)
		assert.Nil(t, result.Tasks[0].Domain)
	})

	t.Run("should return an empty domain when it is not in the list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(completion(`{"domain":"marketing","tasks":[]}`)))
		}))
		defer server.Close()

		result, err := newTestClient(server.URL, time.Second).Classify(context.Background(), "text", dtos.ClassifyOptions{Domains: []string{"design"}})
		assert.NoError(t, err)
		assert.Equal(t, "", result.Domain)
	})

	t.Run("should return a transient error on non 2xx responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, time.Second).Classify(context.Background(), "text", dtos.ClassifyOptions{})
		assert.Error(t, err)
		assert.True(t, shared.IsRetryable(err))
	})

	t.Run("should return a transient error on malformed json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(completion(`the tasks are: none`)))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, time.Second).Classify(context.Background(), "text", dtos.ClassifyOptions{})
		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindTransient, shared.KindOf(err))
	})

	t.Run("should return a transient error on timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, 50*time.Millisecond).Classify(context.Background(), "text", dtos.ClassifyOptions{})
		assert.Error(t, err)
		assert.True(t, shared.IsRetryable(err))
	})

	t.Run("should fail fatally when no endpoint is configured", func(t *testing.T) {
		_, err := newTestClient("", time.Second).Classify(context.Background(), "text", dtos.ClassifyOptions{})
		assert.Equal(t, shared.ErrorKindFatal, shared.KindOf(err))
	})
}
