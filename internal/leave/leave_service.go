package leave

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"am-hris/internal/audit"
	"am-hris/internal/domain"
	"am-hris/internal/events"
	leaveerrors "am-hris/internal/leave/errors"
	"am-hris/internal/leavebalance"
	"am-hris/internal/messaging/kafka"
	"am-hris/internal/shared/contextutil"
	"am-hris/internal/shared/uow"
	"am-hris/internal/workday"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const MinReasonLength = 10

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Request(ctx context.Context, caller domain.Caller, req CreateLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context, caller domain.Caller) ([]LeaveResponse, error)
	Cancel(ctx context.Context, caller domain.Caller, id string) (LeaveResponse, error)
}

type service struct {
	uow      uow.UnitOfWork
	repo     Repository
	balances leavebalance.Repository
	audit    audit.Sink
	outbox   kafka.OutboxRepository
	calendar workday.Calendar
	logger   *zap.Logger
}

// NewService wires leave requests. outbox may be nil, which skips the
// leave_requested event.
func NewService(
	u uow.UnitOfWork,
	repo Repository,
	balances leavebalance.Repository,
	sink audit.Sink,
	outbox kafka.OutboxRepository,
	calendar workday.Calendar,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		uow:      u,
		repo:     repo,
		balances: balances,
		audit:    sink,
		outbox:   outbox,
		calendar: calendar,
		logger:   l,
	}
}

func (s *service) Request(ctx context.Context, caller domain.Caller, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("leave requested",
		zap.String("user_id", caller.UserID.String()),
		zap.String("type", req.Type),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	leaveType := domain.LeaveType(req.Type)
	if !leaveType.Valid() {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	start, end, err := s.calendar.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, workday.ErrInvalidRange) {
			return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
		}
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	netDays := s.calendar.NetWorkDays(start, end)
	if netDays <= 0 {
		return LeaveResponse{}, leaveerrors.ErrNoWorkingDays
	}
	reason, err := normalizeReason(req.Reason)
	if err != nil {
		return LeaveResponse{}, err
	}

	now := time.Now()
	l := &LeaveRequest{
		ID:             uuid.New(),
		UserID:         caller.UserID,
		OrganizationID: caller.OrganizationID,
		Type:           leaveType,
		StartDate:      start,
		EndDate:        end,
		NetDays:        decimal.NewFromInt(int64(netDays)),
		Reason:         reason,
		Status:         domain.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		balance, err := s.balances.WithTx(tx).FindByUserAndType(ctx, caller.UserID, leaveType, false)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := leavebalance.EnsureSufficient(balance, leaveType, l.NetDays); err != nil {
			return err
		}

		qtx := s.repo.WithTx(tx)
		overlap, err := qtx.HasOverlap(ctx, caller.UserID, start, end)
		if err != nil {
			return err
		}
		if overlap {
			return leaveerrors.ErrLeaveOverlap
		}
		if err := qtx.Create(ctx, l); err != nil {
			return err
		}
		if err := s.audit.Record(ctx, tx, audit.Entry{
			Caller:     caller,
			Action:     audit.ActionCreateLeaveRequest,
			EntityType: "LeaveRequest",
			EntityID:   l.ID.String(),
			New:        MapToResponse(*l),
		}); err != nil {
			return err
		}
		return s.enqueueRequested(ctx, tx, *l)
	})
	if err != nil {
		s.logger.Warn("leave request failed",
			zap.String("user_id", caller.UserID.String()),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request created",
		zap.String("leave_id", l.ID.String()),
		zap.String("net_days", l.NetDays.String()),
	)
	return MapToResponse(*l), nil
}

func (s *service) enqueueRequested(ctx context.Context, tx *gorm.DB, l LeaveRequest) error {
	if s.outbox == nil {
		return nil
	}
	resp := MapToResponse(l)
	event, err := kafka.NewOutboxEvent(ctx, events.LeaveRequestedTopic, events.EventTypeLeaveRequested, "leave_request", l.ID.String(), events.LeaveRequestedEvent{
		EventType:      events.EventTypeLeaveRequested,
		RequestID:      contextutil.GetRequestID(ctx),
		LeaveRequestID: resp.ID,
		OrganizationID: l.OrganizationID.String(),
		UserID:         resp.UserID,
		Type:           resp.Type,
		StartDate:      resp.StartDate,
		EndDate:        resp.EndDate,
		NetDays:        resp.NetDays,
		OccurredAt:     time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) ListMine(ctx context.Context, caller domain.Caller) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByUser(ctx, caller.UserID)
	if err != nil {
		s.logger.Error("list leave requests failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// Cancel withdraws the caller's own PENDING request.
func (s *service) Cancel(ctx context.Context, caller domain.Caller, id string) (LeaveResponse, error) {
	lid, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	var cancelled LeaveRequest
	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		l, err := qtx.FindByID(ctx, caller.OrganizationID, lid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leaveerrors.ErrLeaveNotFound
			}
			return err
		}
		if l.UserID != caller.UserID {
			return leaveerrors.ErrLeaveNotFound
		}
		if l.Status != domain.StatusPending {
			return leaveerrors.ErrNotCancellable
		}

		rows, err := qtx.TransitionStatus(ctx, lid, domain.StatusPending, domain.StatusCancelled, nil, nil)
		if err != nil {
			return err
		}
		if rows == 0 {
			return leaveerrors.ErrNotCancellable
		}

		before := MapToResponse(*l)
		l.Status = domain.StatusCancelled
		cancelled = *l
		return s.audit.Record(ctx, tx, audit.Entry{
			Caller:     caller,
			Action:     audit.ActionCancelLeaveRequest,
			EntityType: "LeaveRequest",
			EntityID:   lid.String(),
			Old:        before,
			New:        MapToResponse(cancelled),
		})
	})
	if err != nil {
		s.logger.Warn("cancel leave request failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request cancelled", zap.String("leave_id", id))
	return MapToResponse(cancelled), nil
}

func normalizeReason(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	reason := strings.TrimSpace(*raw)
	if reason == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(reason) < MinReasonLength {
		return nil, leaveerrors.ErrReasonTooShort
	}
	return &reason, nil
}
