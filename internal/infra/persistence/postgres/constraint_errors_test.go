package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	wrapped := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert failed")
	}

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(wrapped(pgUniqueViolation)))
	assert.False(t, isUniqueConstraintViolation(wrapped(pgCheckViolation)))

	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(wrapped(pgForeignKeyViolation)))

	assert.True(t, isNotNullConstraintViolation(wrapped(pgNotNullViolation)))
	assert.False(t, isNotNullConstraintViolation(errors.New("value is required")))

	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(wrapped(pgCheckViolation)))
	assert.False(t, isCheckConstraintViolation(nil))
}
