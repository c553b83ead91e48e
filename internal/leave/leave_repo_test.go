package leave_test

import (
	"context"
	"testing"

	"am-hris/internal/domain"
	"am-hris/internal/leave"
	"am-hris/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_FindPending(t *testing.T) {
	org := uuid.New()

	t.Run("leader sees direct reports only", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := leave.NewRepository(db)
		caller := domain.Caller{UserID: uuid.New(), OrganizationID: org, Role: domain.RoleLeader}

		mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE .*leave_requests\.user_id IN \(SELECT id FROM "users" WHERE manager_id = \$\d+\)`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		leaves, err := repo.FindPending(context.Background(), caller)

		require.NoError(t, err)
		assert.Empty(t, leaves)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("admin sees the whole organization", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := leave.NewRepository(db)
		caller := domain.Caller{UserID: uuid.New(), OrganizationID: org, Role: domain.RoleAdmin}

		mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindPending(context.Background(), caller)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_TransitionStatus(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := leave.NewRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "leave_requests" SET .* WHERE id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.TransitionStatus(context.Background(), id, domain.StatusPending, domain.StatusCancelled, nil, nil)

	require.NoError(t, err)
	assert.Zero(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
