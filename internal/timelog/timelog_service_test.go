package timelog_test

import (
	"context"
	"testing"
	"time"

	"am-hris/internal/audit"
	auditmock "am-hris/internal/audit/mock"
	"am-hris/internal/domain"
	"am-hris/internal/shared/testutil"
	"am-hris/internal/shared/uow"
	"am-hris/internal/timelog"
	timelogerrors "am-hris/internal/timelog/errors"
	"am-hris/internal/timelog/mock"
	"am-hris/internal/user"
	"am-hris/internal/workday"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type timelogDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *mock.MockRepository
	sink    *auditmock.MockSink
	service timelog.Service
	now     time.Time
}

func setupTimelogService(t *testing.T) *timelogDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewGormMock(t)

	deps := &timelogDeps{
		sqlMock: sqlMock,
		repo:    mock.NewMockRepository(ctrl),
		sink:    auditmock.NewMockSink(ctrl),
		now:     time.Date(2026, 3, 18, 17, 30, 45, 0, time.UTC),
	}
	deps.service = timelog.NewService(uow.New(db), deps.repo, deps.sink, workday.NewCalendar(time.UTC))
	timelog.SetClock(deps.service, func() time.Time { return deps.now })
	return deps
}

func employee() domain.Caller {
	return domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleEmployee, Name: "Eve"}
}

func TestTimelogService_ClockIn(t *testing.T) {
	ctx := context.Background()
	caller := employee()

	t.Run("opens an approved work log", func(t *testing.T) {
		deps := setupTimelogService(t)
		deps.repo.EXPECT().FindActiveByUser(ctx, caller.OrganizationID, caller.UserID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *timelog.TimeLog) error {
			assert.Equal(t, caller.UserID, l.UserID)
			assert.Equal(t, domain.TimeLogWork, l.Type)
			assert.Equal(t, domain.StatusApproved, l.Status)
			assert.False(t, l.IsManual)
			assert.Nil(t, l.EndTime)
			return nil
		})

		resp, err := deps.service.ClockIn(ctx, caller)

		require.NoError(t, err)
		assert.Equal(t, deps.now, resp.StartTime)
		assert.Nil(t, resp.EndTime)
	})

	t.Run("already clocked in", func(t *testing.T) {
		deps := setupTimelogService(t)
		deps.repo.EXPECT().FindActiveByUser(ctx, caller.OrganizationID, caller.UserID).Return(&timelog.TimeLog{ID: uuid.New()}, nil)

		_, err := deps.service.ClockIn(ctx, caller)

		assert.ErrorIs(t, err, timelogerrors.ErrAlreadyClockedIn)
	})

	t.Run("concurrent clock in hits the open log index", func(t *testing.T) {
		deps := setupTimelogService(t)
		deps.repo.EXPECT().FindActiveByUser(ctx, caller.OrganizationID, caller.UserID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_time_logs_open_per_user"})

		_, err := deps.service.ClockIn(ctx, caller)

		assert.ErrorIs(t, err, timelogerrors.ErrAlreadyClockedIn)
	})
}

func TestTimelogService_ClockOut(t *testing.T) {
	ctx := context.Background()
	caller := employee()

	t.Run("duration is whole seconds", func(t *testing.T) {
		deps := setupTimelogService(t)
		open := &timelog.TimeLog{ID: uuid.New(), UserID: caller.UserID, StartTime: deps.now.Add(-90*time.Minute - 700*time.Millisecond)}
		deps.repo.EXPECT().FindActiveByUser(ctx, caller.OrganizationID, caller.UserID).Return(open, nil)
		deps.repo.EXPECT().Close(ctx, open.ID, deps.now, int64(5400)).Return(int64(1), nil)

		resp, err := deps.service.ClockOut(ctx, caller)

		require.NoError(t, err)
		require.NotNil(t, resp.Duration)
		assert.Equal(t, int64(5400), *resp.Duration)
		assert.Equal(t, deps.now, *resp.EndTime)
	})

	t.Run("no active timer", func(t *testing.T) {
		deps := setupTimelogService(t)
		deps.repo.EXPECT().FindActiveByUser(ctx, caller.OrganizationID, caller.UserID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ClockOut(ctx, caller)

		assert.ErrorIs(t, err, timelogerrors.ErrNoActiveTimer)
	})

	t.Run("closed by someone else in between", func(t *testing.T) {
		deps := setupTimelogService(t)
		open := &timelog.TimeLog{ID: uuid.New(), StartTime: deps.now.Add(-time.Hour)}
		deps.repo.EXPECT().FindActiveByUser(ctx, caller.OrganizationID, caller.UserID).Return(open, nil)
		deps.repo.EXPECT().Close(ctx, open.ID, deps.now, int64(3600)).Return(int64(0), nil)

		_, err := deps.service.ClockOut(ctx, caller)

		assert.ErrorIs(t, err, timelogerrors.ErrNoActiveTimer)
	})
}

func TestTimelogService_AdminClockOut(t *testing.T) {
	ctx := context.Background()
	admin := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleAdmin}
	target := uuid.New()

	t.Run("closes and audits in one transaction", func(t *testing.T) {
		deps := setupTimelogService(t)
		testutil.ExpectTx(deps.sqlMock, true)
		open := &timelog.TimeLog{ID: uuid.New(), UserID: target, StartTime: deps.now.Add(-2 * time.Hour)}

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindActiveByUser(ctx, admin.OrganizationID, target).Return(open, nil)
		deps.repo.EXPECT().Close(ctx, open.ID, deps.now, int64(7200)).Return(int64(1), nil)
		deps.sink.EXPECT().Record(ctx, gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *gorm.DB, e audit.Entry) error {
			assert.Equal(t, audit.ActionAdminClockOut, e.Action)
			assert.Equal(t, open.ID.String(), e.EntityID)
			return nil
		})

		resp, err := deps.service.AdminClockOut(ctx, admin, target.String())

		require.NoError(t, err)
		assert.Equal(t, int64(7200), *resp.Duration)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("leader is forbidden", func(t *testing.T) {
		deps := setupTimelogService(t)
		leader := admin
		leader.Role = domain.RoleLeader

		_, err := deps.service.AdminClockOut(ctx, leader, target.String())

		assert.ErrorIs(t, err, timelogerrors.ErrForbidden)
	})

	t.Run("target outside organization has no timer", func(t *testing.T) {
		deps := setupTimelogService(t)
		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindActiveByUser(ctx, admin.OrganizationID, target).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.AdminClockOut(ctx, admin, target.String())

		assert.ErrorIs(t, err, timelogerrors.ErrNoActiveTimer)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestTimelogService_CreateManualEntry(t *testing.T) {
	ctx := context.Background()
	caller := employee()

	t.Run("pending manual entry with computed duration", func(t *testing.T) {
		deps := setupTimelogService(t)
		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *timelog.TimeLog) error {
			assert.Equal(t, domain.StatusPending, l.Status)
			assert.True(t, l.IsManual)
			return nil
		})
		deps.sink.EXPECT().Record(ctx, gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.CreateManualEntry(ctx, caller, timelog.ManualEntryRequest{
			StartTime: "2026-03-16T09:00:00Z",
			EndTime:   "2026-03-16T12:30:00Z",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(12600), *resp.Duration)
		assert.Equal(t, "WORK", resp.Type)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("end not after start", func(t *testing.T) {
		deps := setupTimelogService(t)

		_, err := deps.service.CreateManualEntry(ctx, caller, timelog.ManualEntryRequest{
			StartTime: "2026-03-16T09:00:00Z",
			EndTime:   "2026-03-16T09:00:00Z",
		})

		assert.ErrorIs(t, err, timelogerrors.ErrEndBeforeStart)
	})

	t.Run("malformed timestamp", func(t *testing.T) {
		deps := setupTimelogService(t)

		_, err := deps.service.CreateManualEntry(ctx, caller, timelog.ManualEntryRequest{
			StartTime: "16/03/2026",
			EndTime:   "2026-03-16T09:00:00Z",
		})

		assert.ErrorIs(t, err, timelogerrors.ErrInvalidTime)
	})

	t.Run("non-work types are rejected", func(t *testing.T) {
		for _, typ := range []string{"LEAVE", "BREAK", "OVERTIME"} {
			deps := setupTimelogService(t)

			_, err := deps.service.CreateManualEntry(ctx, caller, timelog.ManualEntryRequest{
				StartTime: "2026-03-16T09:00:00Z",
				EndTime:   "2026-03-16T17:00:00Z",
				Type:      typ,
			})

			assert.ErrorIs(t, err, timelogerrors.ErrInvalidType, typ)
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		}
	})

	t.Run("explicit WORK type is accepted", func(t *testing.T) {
		deps := setupTimelogService(t)
		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sink.EXPECT().Record(ctx, gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.CreateManualEntry(ctx, caller, timelog.ManualEntryRequest{
			StartTime: "2026-03-16T09:00:00Z",
			EndTime:   "2026-03-16T10:00:00Z",
			Type:      "WORK",
		})

		require.NoError(t, err)
		assert.Equal(t, "WORK", resp.Type)
	})

	t.Run("audit failure rolls back", func(t *testing.T) {
		deps := setupTimelogService(t)
		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sink.EXPECT().Record(ctx, gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := deps.service.CreateManualEntry(ctx, caller, timelog.ManualEntryRequest{
			StartTime: "2026-03-16T09:00:00Z",
			EndTime:   "2026-03-16T10:00:00Z",
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestTimelogService_LiveFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("employee is forbidden", func(t *testing.T) {
		deps := setupTimelogService(t)

		_, err := deps.service.LiveFeed(ctx, employee())

		assert.ErrorIs(t, err, timelogerrors.ErrForbidden)
	})

	t.Run("maps user and manager names", func(t *testing.T) {
		deps := setupTimelogService(t)
		leader := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleLeader}
		logs := []timelog.TimeLog{{
			ID:        uuid.New(),
			StartTime: deps.now.Add(-time.Hour),
			User: &user.Ref{
				Name:    "Eve",
				Email:   "eve@example.com",
				Manager: &user.Ref{Name: "Lena"},
			},
		}}
		deps.repo.EXPECT().FindActiveFeed(ctx, leader).Return(logs, nil)

		resp, err := deps.service.LiveFeed(ctx, leader)

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Eve", resp[0].UserName)
		require.NotNil(t, resp[0].ManagerName)
		assert.Equal(t, "Lena", *resp[0].ManagerName)
	})
}

func TestTimelogService_Stats(t *testing.T) {
	ctx := context.Background()
	caller := employee()
	deps := setupTimelogService(t)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	deps.repo.EXPECT().SumApprovedSeconds(ctx, caller.UserID, from, from.AddDate(0, 1, 0)).Return(int64(3600), nil)
	deps.repo.EXPECT().CountPendingCorrections(ctx, caller.UserID).Return(int64(2), nil)

	resp, err := deps.service.Stats(ctx, caller)

	require.NoError(t, err)
	assert.Equal(t, int64(3600), resp.TotalSeconds)
	assert.Equal(t, int64(2), resp.PendingCorrections)
	assert.Equal(t, from, resp.PeriodStart)
}
