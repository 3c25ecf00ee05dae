package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm translated", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), want: true},
		{name: "pgx message", err: errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`), want: true},
		{name: "other", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New(`ERROR: null value in column "email" violates not-null constraint (SQLSTATE 23502)`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("timeout")))
}
