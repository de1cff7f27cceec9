// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commonint

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/l3montree-dev/threadline/shared"
)

// StatusError maps a failed provider response onto the pipeline error taxonomy.
// 401 and 403 reject the credential, 408, 429 and 5xx are worth another attempt.
// Everything else is a request the provider will never accept.
func StatusError(op string, statusCode int, body string) error {
	err := fmt.Errorf("provider returned %d: %s", statusCode, strings.TrimSpace(body))
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return shared.NewAuthError(op, err)
	case statusCode == http.StatusRequestTimeout || statusCode == http.StatusTooManyRequests || statusCode >= 500:
		return shared.NewTransientError(op, err)
	case statusCode == http.StatusNotFound:
		return shared.NewFatalError(op, fmt.Errorf("resource not found, check the output settings: %w", err))
	}
	return shared.NewFatalError(op, err)
}

// ResponseError reads a bounded part of the body of a failed response into the error.
func ResponseError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return StatusError(op, resp.StatusCode, string(body))
}

// ClientError classifies the error of a generated api client. resp may be nil for transport errors.
func ClientError(op string, resp *http.Response, err error) error {
	if resp == nil {
		return shared.NewTransientError(op, err)
	}
	return StatusError(op, resp.StatusCode, err.Error())
}
