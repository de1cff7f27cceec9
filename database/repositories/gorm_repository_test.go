package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("should detect a wrapped unique violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505"}
		assert.True(t, isUniqueViolation(pgErr))
		assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", pgErr)))
	})

	t.Run("should detect the gorm translated error", func(t *testing.T) {
		assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	})

	t.Run("should not treat a foreign key violation as unique violation", func(t *testing.T) {
		assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
		assert.False(t, isUniqueViolation(errors.New("some other error")))
	})
}
