// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"context"
	"errors"
	"fmt"
	"net"

	"gorm.io/gorm"
)

type ErrorKind string

const (
	// malformed or unsigned inbound payload. Never becomes a job.
	ErrorKindValidation ErrorKind = "validation"
	// credential invalid, expired or revoked
	ErrorKindAuth ErrorKind = "auth"
	// no flow output matches the detected domain
	ErrorKindRouting ErrorKind = "routing"
	// no confident field, value or user match. Not fatal on its own.
	ErrorKindMapping ErrorKind = "mapping"
	// network or provider outage, timeouts
	ErrorKindTransient ErrorKind = "transient"
	// bad configuration
	ErrorKindFatal    ErrorKind = "fatal"
	ErrorKindNotFound ErrorKind = "not_found"
)

// PipelineError is returned by adapters, the classifier and the services of the pipeline.
// The job orchestrator is the single place deciding what a kind means for a job.
type PipelineError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *PipelineError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func newPipelineError(kind ErrorKind, op string, err error) error {
	if err == nil {
		err = errors.New(string(kind))
	}
	return &PipelineError{Kind: kind, Op: op, Err: err}
}

func NewValidationError(op string, err error) error {
	return newPipelineError(ErrorKindValidation, op, err)
}

func NewAuthError(op string, err error) error {
	return newPipelineError(ErrorKindAuth, op, err)
}

func NewRoutingError(op string, err error) error {
	return newPipelineError(ErrorKindRouting, op, err)
}

func NewMappingError(op string, err error) error {
	return newPipelineError(ErrorKindMapping, op, err)
}

func NewTransientError(op string, err error) error {
	return newPipelineError(ErrorKindTransient, op, err)
}

func NewFatalError(op string, err error) error {
	return newPipelineError(ErrorKindFatal, op, err)
}

func NewNotFoundError(op string, err error) error {
	return newPipelineError(ErrorKindNotFound, op, err)
}

// KindOf returns the kind of the outermost PipelineError in the chain.
// Errors without a kind are transient: timeouts, gorm not found and
// unknown errors alike. Unknown errors stay bounded by maxAttempts.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var pErr *PipelineError
	if errors.As(err, &pErr) {
		return pErr.Kind
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorKindNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindTransient
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorKindTransient
	}
	return ErrorKindTransient
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// IsRetryable reports whether a job stage failing with err may be attempted again.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case ErrorKindTransient:
		return true
	}
	return false
}
