// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"errors"

	"github.com/l3montree-dev/threadline/shared"
	"gorm.io/gorm"
)

// notFoundOr wraps gorm.ErrRecordNotFound into a not found pipeline error and returns any other error unchanged.
func notFoundOr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFoundError(op, err)
	}
	return err
}
