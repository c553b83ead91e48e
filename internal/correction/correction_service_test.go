package correction_test

import (
	"context"
	"testing"
	"time"

	"am-hris/internal/audit"
	auditmock "am-hris/internal/audit/mock"
	"am-hris/internal/correction"
	correctionerrors "am-hris/internal/correction/errors"
	"am-hris/internal/correction/mock"
	"am-hris/internal/domain"
	"am-hris/internal/shared/testutil"
	"am-hris/internal/shared/uow"
	"am-hris/internal/timelog"
	timelogmock "am-hris/internal/timelog/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type correctionDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *mock.MockRepository
	logs    *timelogmock.MockRepository
	sink    *auditmock.MockSink
	service correction.Service
}

func setupCorrectionService(t *testing.T) *correctionDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewGormMock(t)

	deps := &correctionDeps{
		sqlMock: sqlMock,
		repo:    mock.NewMockRepository(ctrl),
		logs:    timelogmock.NewMockRepository(ctrl),
		sink:    auditmock.NewMockSink(ctrl),
	}
	deps.service = correction.NewService(uow.New(db), deps.repo, deps.logs, deps.sink)
	return deps
}

func strPtr(s string) *string { return &s }

func TestCorrectionService_RequestCorrection(t *testing.T) {
	ctx := context.Background()
	caller := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleEmployee}
	logID := uuid.New()
	ownLog := &timelog.TimeLog{ID: logID, UserID: caller.UserID, StartTime: time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)}

	t.Run("owner files a pending correction", func(t *testing.T) {
		deps := setupCorrectionService(t)
		testutil.ExpectTx(deps.sqlMock, true)

		deps.logs.EXPECT().WithTx(gomock.Any()).Return(deps.logs)
		deps.logs.EXPECT().FindByID(ctx, caller.OrganizationID, logID).Return(ownLog, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().HasPending(ctx, logID).Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *correction.TimeCorrection) error {
			assert.Equal(t, domain.StatusPending, c.Status)
			assert.Equal(t, "Forgot to clock out", c.Reason)
			return nil
		})
		deps.sink.EXPECT().Record(ctx, gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *gorm.DB, e audit.Entry) error {
			assert.Equal(t, audit.ActionRequestCorrection, e.Action)
			return nil
		})

		resp, err := deps.service.RequestCorrection(ctx, caller, correction.RequestCorrectionRequest{
			TimeLogID:          logID.String(),
			RequestedStartTime: strPtr("2026-03-16T09:00:00Z"),
			RequestedEndTime:   strPtr("2026-03-16T17:00:00Z"),
			Reason:             "  Forgot to clock out ",
		})

		require.NoError(t, err)
		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, time.Date(2026, 3, 16, 17, 0, 0, 0, time.UTC), *resp.RequestedEndTime)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reason too short", func(t *testing.T) {
		deps := setupCorrectionService(t)

		_, err := deps.service.RequestCorrection(ctx, caller, correction.RequestCorrectionRequest{
			TimeLogID: logID.String(),
			Reason:    " oops ",
		})

		assert.ErrorIs(t, err, correctionerrors.ErrReasonTooShort)
	})

	t.Run("requested end before start", func(t *testing.T) {
		deps := setupCorrectionService(t)

		_, err := deps.service.RequestCorrection(ctx, caller, correction.RequestCorrectionRequest{
			TimeLogID:          logID.String(),
			RequestedStartTime: strPtr("2026-03-16T17:00:00Z"),
			RequestedEndTime:   strPtr("2026-03-16T09:00:00Z"),
			Reason:             "Wrong times",
		})

		assert.ErrorIs(t, err, correctionerrors.ErrEndBeforeStart)
	})

	t.Run("someone else's log", func(t *testing.T) {
		deps := setupCorrectionService(t)
		testutil.ExpectTx(deps.sqlMock, false)
		other := *ownLog
		other.UserID = uuid.New()

		deps.logs.EXPECT().WithTx(gomock.Any()).Return(deps.logs)
		deps.logs.EXPECT().FindByID(ctx, caller.OrganizationID, logID).Return(&other, nil)

		_, err := deps.service.RequestCorrection(ctx, caller, correction.RequestCorrectionRequest{
			TimeLogID: logID.String(),
			Reason:    "Not my hours",
		})

		assert.ErrorIs(t, err, correctionerrors.ErrNotOwner)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("second pending correction", func(t *testing.T) {
		deps := setupCorrectionService(t)
		testutil.ExpectTx(deps.sqlMock, false)

		deps.logs.EXPECT().WithTx(gomock.Any()).Return(deps.logs)
		deps.logs.EXPECT().FindByID(ctx, caller.OrganizationID, logID).Return(ownLog, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().HasPending(ctx, logID).Return(true, nil)

		_, err := deps.service.RequestCorrection(ctx, caller, correction.RequestCorrectionRequest{
			TimeLogID: logID.String(),
			Reason:    "Again please",
		})

		assert.ErrorIs(t, err, correctionerrors.ErrPendingExists)
	})

	t.Run("racing duplicate hits the partial index", func(t *testing.T) {
		deps := setupCorrectionService(t)
		testutil.ExpectTx(deps.sqlMock, false)

		deps.logs.EXPECT().WithTx(gomock.Any()).Return(deps.logs)
		deps.logs.EXPECT().FindByID(ctx, caller.OrganizationID, logID).Return(ownLog, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().HasPending(ctx, logID).Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_time_corrections_pending_per_log"})

		_, err := deps.service.RequestCorrection(ctx, caller, correction.RequestCorrectionRequest{
			TimeLogID: logID.String(),
			Reason:    "Again please",
		})

		assert.ErrorIs(t, err, correctionerrors.ErrPendingExists)
	})

	t.Run("log from another organization", func(t *testing.T) {
		deps := setupCorrectionService(t)
		testutil.ExpectTx(deps.sqlMock, false)

		deps.logs.EXPECT().WithTx(gomock.Any()).Return(deps.logs)
		deps.logs.EXPECT().FindByID(ctx, caller.OrganizationID, logID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.RequestCorrection(ctx, caller, correction.RequestCorrectionRequest{
			TimeLogID: logID.String(),
			Reason:    "Wrong times",
		})

		assert.ErrorIs(t, err, correctionerrors.ErrTimeLogNotFound)
	})
}

func TestCorrectionService_ListMine(t *testing.T) {
	ctx := context.Background()
	caller := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleEmployee}
	deps := setupCorrectionService(t)

	start := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
	deps.repo.EXPECT().FindByUser(ctx, caller.UserID).Return([]correction.TimeCorrection{{
		ID:      uuid.New(),
		Reason:  "Forgot",
		Status:  domain.StatusApproved,
		TimeLog: &timelog.TimeLog{StartTime: start},
	}}, nil)

	resp, err := deps.service.ListMine(ctx, caller)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "APPROVED", resp[0].Status)
	assert.Equal(t, start, *resp[0].OriginalStartTime)
}
