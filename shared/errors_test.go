// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKindOf(t *testing.T) {
	t.Run("should return the kind of a wrapped pipeline error", func(t *testing.T) {
		err := fmt.Errorf("could not create issue: %w", NewAuthError("jira.createIssue", errors.New("401")))
		assert.Equal(t, ErrorKindAuth, KindOf(err))
		assert.False(t, IsRetryable(err))
	})

	t.Run("should treat a deadline as transient", func(t *testing.T) {
		err := fmt.Errorf("classifier: %w", context.DeadlineExceeded)
		assert.Equal(t, ErrorKindTransient, KindOf(err))
		assert.True(t, IsRetryable(err))
	})

	t.Run("should treat record not found as not found", func(t *testing.T) {
		assert.Equal(t, ErrorKindNotFound, KindOf(gorm.ErrRecordNotFound))
		assert.False(t, IsRetryable(gorm.ErrRecordNotFound))
	})

	t.Run("should treat unknown errors as transient", func(t *testing.T) {
		assert.Equal(t, ErrorKindTransient, KindOf(errors.New("connection reset")))
	})

	t.Run("should not retry fatal, routing and validation errors", func(t *testing.T) {
		for _, err := range []error{
			NewFatalError("flow", nil),
			NewRoutingError("route", errors.New("no output")),
			NewValidationError("signature", nil),
		} {
			assert.False(t, IsRetryable(err), err.Error())
		}
	})

	t.Run("should return an empty kind for nil", func(t *testing.T) {
		assert.Equal(t, ErrorKind(""), KindOf(nil))
		assert.False(t, IsKind(nil, ErrorKindTransient))
	})

	t.Run("should include the operation in the message", func(t *testing.T) {
		err := NewRoutingError("flow.routeOutput", errors.New("no output for domain design"))
		assert.Equal(t, "flow.routeOutput: routing error: no output for domain design", err.Error())
	})
}
