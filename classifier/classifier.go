// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/l3montree-dev/threadline/common"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/l3montree-dev/threadline/mapping"
	"github.com/l3montree-dev/threadline/monitoring"
	"github.com/l3montree-dev/threadline/shared"
	"golang.org/x/time/rate"
)

const op = "classifier.classify"

// Config of the OpenAI compatible chat completion endpoint.
type Config struct {
	BaseURL string // e.g. https://api.openai.com
	APIKey  string
	Model   string
	Timeout time.Duration
	// requests per second across all jobs of this process
	RequestsPerSecond float64
}

func ConfigFromEnv() Config {
	cfg := Config{
		BaseURL:           os.Getenv("CLASSIFIER_BASE_URL"),
		APIKey:            os.Getenv("CLASSIFIER_API_KEY"),
		Model:             os.Getenv("CLASSIFIER_MODEL"),
		Timeout:           shared.EnvDuration("CLASSIFIER_TIMEOUT", 30*time.Second),
		RequestsPerSecond: shared.EnvFloat("CLASSIFIER_RPS", 2),
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return cfg
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ shared.Classifier = (*Client)(nil)

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 2
	}
	burst := max(int(cfg.RequestsPerSecond), 1)
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
	}
}

func NewClientFromEnv() *Client {
	return NewClient(ConfigFromEnv(), &common.OutgoingConnectionClient)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Classify detects task candidates and the routing domain of a discussion.
// It does not retry. Every failure of the call is a transient error.
func (c *Client) Classify(ctx context.Context, text string, opts dtos.ClassifyOptions) (dtos.Classification, error) {
	if c.cfg.BaseURL == "" {
		return dtos.Classification{}, shared.NewFatalError(op, errors.New("CLASSIFIER_BASE_URL is not configured"))
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return dtos.Classification{}, shared.NewTransientError(op, fmt.Errorf("rate limiter: %w", err))
	}

	start := time.Now()
	defer func() {
		monitoring.ClassifierDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(chatRequest{
		Model:          c.cfg.Model,
		Messages:       buildMessages(text, opts),
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return dtos.Classification{}, shared.NewFatalError(op, err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return dtos.Classification{}, shared.NewFatalError(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dtos.Classification{}, shared.NewTransientError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return dtos.Classification{}, shared.NewTransientError(op, fmt.Errorf("completion api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))))
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return dtos.Classification{}, shared.NewTransientError(op, fmt.Errorf("could not decode completion: %w", err))
	}
	if len(completion.Choices) == 0 {
		return dtos.Classification{}, shared.NewTransientError(op, errors.New("completion contained no choices"))
	}

	var result dtos.Classification
	if err := json.Unmarshal([]byte(stripCodeFence(completion.Choices[0].Message.Content)), &result); err != nil {
		return dtos.Classification{}, shared.NewTransientError(op, fmt.Errorf("classifier returned malformed json: %w", err))
	}

	result = normalizeClassification(result, opts.Domains)
	slog.Debug("classified discussion", "tasks", len(result.Tasks), "domain", result.Domain)
	return result, nil
}

// some models wrap json in a markdown fence even in json mode
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func canonicalDomain(domain string, domains []string) string {
	domain = strings.TrimSpace(domain)
	for _, d := range domains {
		if strings.EqualFold(d, domain) {
			return d
		}
	}
	return ""
}

// normalizeClassification drops tasks without title and clears domains outside of the allowed list.
func normalizeClassification(c dtos.Classification, domains []string) dtos.Classification {
	out := dtos.Classification{
		Domain: canonicalDomain(c.Domain, domains),
		Tasks:  make([]models.DetectedTask, 0, len(c.Tasks)),
	}
	for _, t := range c.Tasks {
		t.Title = strings.TrimSpace(t.Title)
		if t.Title == "" {
			continue
		}
		if t.Domain != nil {
			if d := canonicalDomain(*t.Domain, domains); d != "" {
				t.Domain = &d
			} else {
				t.Domain = nil
			}
		}
		if t.Assignee != nil {
			a := strings.TrimPrefix(strings.TrimSpace(*t.Assignee), "@")
			if a == "" {
				t.Assignee = nil
			} else {
				t.Assignee = &a
			}
		}
		out.Tasks = append(out.Tasks, t)
	}
	return out
}

const defaultSystemPrompt = `You read conversations from chat threads, design review comments and emails and extract actionable work items.
Answer with a single JSON object of the form:
{"domain": string, "tasks": [{"title": string, "description": string, "priority": string|null, "type": string|null, "assignee": string|null, "dueDate": "YYYY-MM-DD"|null, "tags": [string], "domain": string|null}]}
Only extract work somebody explicitly has to do. Return an empty task list if there is nothing to do.
The assignee is the handle of the person as written in the conversation, without @.`

func buildMessages(text string, opts dtos.ClassifyOptions) []chatMessage {
	system := defaultSystemPrompt
	if opts.SystemPrompt != nil && strings.TrimSpace(*opts.SystemPrompt) != "" {
		system = *opts.SystemPrompt
	}

	var b strings.Builder
	b.WriteString(system)
	fmt.Fprintf(&b, "\npriority must be one of: %s.", strings.Join(mapping.Vocabulary[mapping.FieldPriority], ", "))
	fmt.Fprintf(&b, "\ntype must be one of: %s.", strings.Join(mapping.Vocabulary[mapping.FieldType], ", "))
	if len(opts.Domains) > 0 {
		fmt.Fprintf(&b, "\ndomain must be one of: %s. Use an empty string if none fits.", strings.Join(opts.Domains, ", "))
	} else {
		b.WriteString("\ndomain must be an empty string.")
	}

	user := text
	if opts.TaskPrompt != nil && strings.TrimSpace(*opts.TaskPrompt) != "" {
		user = *opts.TaskPrompt + "\n\n" + text
	}

	return []chatMessage{
		{Role: "system", Content: b.String()},
		{Role: "user", Content: user},
	}
}
