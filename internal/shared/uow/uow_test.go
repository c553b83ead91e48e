package uow_test

import (
	"context"
	"errors"
	"testing"

	"am-hris/internal/shared/uow"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestUnitOfWork_Do(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock := newGorm(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		called := false
		err := uow.New(db).Do(context.Background(), func(tx *gorm.DB) error {
			called = true
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := newGorm(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("precondition failed")
		err := uow.New(db).Do(context.Background(), func(tx *gorm.DB) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		db, mock := newGorm(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = uow.New(db).Do(context.Background(), func(tx *gorm.DB) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
