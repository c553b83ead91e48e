package leave_test

import (
	"context"
	"testing"
	"time"

	"am-hris/internal/audit"
	auditmock "am-hris/internal/audit/mock"
	"am-hris/internal/domain"
	"am-hris/internal/events"
	"am-hris/internal/leave"
	leaveerrors "am-hris/internal/leave/errors"
	"am-hris/internal/leave/mock"
	"am-hris/internal/leavebalance"
	leavebalanceerrors "am-hris/internal/leavebalance/errors"
	balancemock "am-hris/internal/leavebalance/mock"
	"am-hris/internal/messaging/kafka"
	outboxmock "am-hris/internal/messaging/kafka/mock"
	"am-hris/internal/shared/testutil"
	"am-hris/internal/shared/uow"
	"am-hris/internal/workday"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type leaveDeps struct {
	sqlMock  sqlmock.Sqlmock
	repo     *mock.MockRepository
	balances *balancemock.MockRepository
	sink     *auditmock.MockSink
	outbox   *outboxmock.MockOutboxRepository
	service  leave.Service
}

func setupLeaveService(t *testing.T) *leaveDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewGormMock(t)

	deps := &leaveDeps{
		sqlMock:  sqlMock,
		repo:     mock.NewMockRepository(ctrl),
		balances: balancemock.NewMockRepository(ctrl),
		sink:     auditmock.NewMockSink(ctrl),
		outbox:   outboxmock.NewMockOutboxRepository(ctrl),
	}
	deps.service = leave.NewService(uow.New(db), deps.repo, deps.balances, deps.sink, deps.outbox, workday.NewCalendar(time.UTC))
	return deps
}

func strPtr(s string) *string { return &s }

func TestLeaveService_Request(t *testing.T) {
	ctx := context.Background()
	caller := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleEmployee}
	// 2026-03-16 is a Monday.
	monToWed := leave.CreateLeaveRequest{Type: "VACATION", StartDate: "2026-03-16", EndDate: "2026-03-18"}

	t.Run("three weekdays against a balance of five", func(t *testing.T) {
		deps := setupLeaveService(t)
		testutil.ExpectTx(deps.sqlMock, true)

		deps.balances.EXPECT().WithTx(gomock.Any()).Return(deps.balances)
		deps.balances.EXPECT().FindByUserAndType(ctx, caller.UserID, domain.LeaveVacation, false).
			Return(&leavebalance.LeaveBalance{Balance: decimal.NewFromInt(5)}, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().HasOverlap(ctx, caller.UserID, gomock.Any(), gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *leave.LeaveRequest) error {
			assert.True(t, l.NetDays.Equal(decimal.NewFromInt(3)))
			assert.Equal(t, domain.StatusPending, l.Status)
			return nil
		})
		deps.sink.EXPECT().Record(ctx, gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *gorm.DB, e audit.Entry) error {
			assert.Equal(t, audit.ActionCreateLeaveRequest, e.Action)
			return nil
		})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.LeaveRequestedTopic, e.Topic)
			return nil
		})

		resp, err := deps.service.Request(ctx, caller, monToWed)

		require.NoError(t, err)
		assert.Equal(t, "3.0", resp.NetDays)
		assert.Equal(t, "2026-03-16", resp.StartDate)
		assert.Equal(t, "PENDING", resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("balance of one fails before any row is written", func(t *testing.T) {
		deps := setupLeaveService(t)
		testutil.ExpectTx(deps.sqlMock, false)

		deps.balances.EXPECT().WithTx(gomock.Any()).Return(deps.balances)
		deps.balances.EXPECT().FindByUserAndType(ctx, caller.UserID, domain.LeaveVacation, false).
			Return(&leavebalance.LeaveBalance{Balance: decimal.NewFromInt(1)}, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Request(ctx, caller, monToWed)

		assert.ErrorIs(t, err, leavebalanceerrors.ErrInsufficientBalance)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("overlapping request", func(t *testing.T) {
		deps := setupLeaveService(t)
		testutil.ExpectTx(deps.sqlMock, false)

		deps.balances.EXPECT().WithTx(gomock.Any()).Return(deps.balances)
		deps.balances.EXPECT().FindByUserAndType(ctx, caller.UserID, domain.LeaveVacation, false).
			Return(&leavebalance.LeaveBalance{Balance: decimal.NewFromInt(5)}, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().HasOverlap(ctx, caller.UserID, gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := deps.service.Request(ctx, caller, monToWed)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	})

	t.Run("weekend only", func(t *testing.T) {
		deps := setupLeaveService(t)

		_, err := deps.service.Request(ctx, caller, leave.CreateLeaveRequest{Type: "SICK", StartDate: "2026-03-21", EndDate: "2026-03-22"})

		assert.ErrorIs(t, err, leaveerrors.ErrNoWorkingDays)
	})

	t.Run("start after end", func(t *testing.T) {
		deps := setupLeaveService(t)

		_, err := deps.service.Request(ctx, caller, leave.CreateLeaveRequest{Type: "SICK", StartDate: "2026-03-18", EndDate: "2026-03-16"})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("malformed date", func(t *testing.T) {
		deps := setupLeaveService(t)

		_, err := deps.service.Request(ctx, caller, leave.CreateLeaveRequest{Type: "SICK", StartDate: "16/03/2026", EndDate: "2026-03-18"})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("short reason", func(t *testing.T) {
		deps := setupLeaveService(t)
		req := monToWed
		req.Reason = strPtr("trip")

		_, err := deps.service.Request(ctx, caller, req)

		assert.ErrorIs(t, err, leaveerrors.ErrReasonTooShort)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()
	caller := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleEmployee}
	id := uuid.New()
	pending := func() *leave.LeaveRequest {
		return &leave.LeaveRequest{ID: id, UserID: caller.UserID, OrganizationID: caller.OrganizationID, Status: domain.StatusPending, NetDays: decimal.NewFromInt(2)}
	}

	t.Run("owner cancels pending request", func(t *testing.T) {
		deps := setupLeaveService(t)
		testutil.ExpectTx(deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, caller.OrganizationID, id).Return(pending(), nil)
		deps.repo.EXPECT().TransitionStatus(ctx, id, domain.StatusPending, domain.StatusCancelled, nil, nil).Return(int64(1), nil)
		deps.sink.EXPECT().Record(ctx, gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *gorm.DB, e audit.Entry) error {
			assert.Equal(t, audit.ActionCancelLeaveRequest, e.Action)
			return nil
		})

		resp, err := deps.service.Cancel(ctx, caller, id.String())

		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already approved", func(t *testing.T) {
		deps := setupLeaveService(t)
		testutil.ExpectTx(deps.sqlMock, false)
		approved := pending()
		approved.Status = domain.StatusApproved

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, caller.OrganizationID, id).Return(approved, nil)

		_, err := deps.service.Cancel(ctx, caller, id.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotCancellable)
	})

	t.Run("someone else's request is not found", func(t *testing.T) {
		deps := setupLeaveService(t)
		testutil.ExpectTx(deps.sqlMock, false)
		other := pending()
		other.UserID = uuid.New()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, caller.OrganizationID, id).Return(other, nil)

		_, err := deps.service.Cancel(ctx, caller, id.String())

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("decided concurrently", func(t *testing.T) {
		deps := setupLeaveService(t)
		testutil.ExpectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, caller.OrganizationID, id).Return(pending(), nil)
		deps.repo.EXPECT().TransitionStatus(ctx, id, domain.StatusPending, domain.StatusCancelled, nil, nil).Return(int64(0), nil)

		_, err := deps.service.Cancel(ctx, caller, id.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotCancellable)
	})
}
