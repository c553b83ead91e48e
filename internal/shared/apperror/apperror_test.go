package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"am-hris/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and details", func(t *testing.T) {
		err := apperror.New(apperror.CodeInvalidState, "boom", http.StatusUnprocessableEntity).
			WithDetails(map[string]int{"shortfall": 2})

		got := apperror.ToHTTP(fmt.Errorf("wrapped: %w", err))

		assert.Equal(t, http.StatusUnprocessableEntity, got.Status)
		assert.Equal(t, apperror.CodeInvalidState, got.Code)
		assert.Equal(t, "boom", got.Message)
		assert.Equal(t, map[string]int{"shortfall": 2}, got.Details)
	})

	t.Run("record not found", func(t *testing.T) {
		got := apperror.ToHTTP(gorm.ErrRecordNotFound)
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
	})

	t.Run("unique violation", func(t *testing.T) {
		got := apperror.ToHTTP(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"})
		assert.Equal(t, http.StatusConflict, got.Status)
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection reset"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.ErrInternal.Message, got.Message)
	})
}

func TestAppError_IsSurvivesDetails(t *testing.T) {
	base := apperror.New(apperror.CodeConflict, "already processed", http.StatusConflict)
	withDetails := base.WithDetails("x")

	assert.True(t, errors.Is(withDetails, base))
	assert.Nil(t, base.Details)
	assert.False(t, errors.Is(withDetails, apperror.ErrNotFound))
}

func TestUniqueConstraint(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"})
	assert.Equal(t, "uq_users_email", apperror.UniqueConstraint(err))
	assert.Equal(t, "", apperror.UniqueConstraint(errors.New("x")))
}

func TestToHTTP_ConcurrentUpdate(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"serialization failure", "40001"},
		{"deadlock detected", "40P01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("approve: %w", &pgconn.PgError{Code: tt.code})

			got := apperror.ToHTTP(err)

			assert.True(t, apperror.IsConcurrentUpdate(err))
			assert.Equal(t, http.StatusConflict, got.Status)
			assert.Equal(t, apperror.CodeConflict, got.Code)
			assert.Equal(t, apperror.ErrConcurrentUpdate.Message, got.Message)
		})
	}

	assert.False(t, apperror.IsConcurrentUpdate(&pgconn.PgError{Code: "23505"}))
}
