package timelog

import (
	"context"
	"errors"
	"time"

	"am-hris/internal/audit"
	"am-hris/internal/domain"
	"am-hris/internal/shared/apperror"
	"am-hris/internal/shared/uow"
	timelogerrors "am-hris/internal/timelog/errors"
	"am-hris/internal/workday"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HistoryLimit caps the personal timesheet.
const HistoryLimit = 50

// openLogConstraint is the partial unique index backing the one-open-log rule
// when two clock-ins race.
const openLogConstraint = "uq_time_logs_open_per_user"

//go:generate mockgen -source=timelog_service.go -destination=mock/timelog_service_mock.go -package=mock
type Service interface {
	GetActive(ctx context.Context, caller domain.Caller) (*TimeLogResponse, error)
	ClockIn(ctx context.Context, caller domain.Caller) (TimeLogResponse, error)
	ClockOut(ctx context.Context, caller domain.Caller) (TimeLogResponse, error)
	AdminClockOut(ctx context.Context, caller domain.Caller, userID string) (TimeLogResponse, error)
	History(ctx context.Context, caller domain.Caller) ([]TimeLogResponse, error)
	LiveFeed(ctx context.Context, caller domain.Caller) ([]LiveEntryResponse, error)
	CreateManualEntry(ctx context.Context, caller domain.Caller, req ManualEntryRequest) (TimeLogResponse, error)
	Stats(ctx context.Context, caller domain.Caller) (StatsResponse, error)
}

type service struct {
	uow      uow.UnitOfWork
	repo     Repository
	audit    audit.Sink
	calendar workday.Calendar
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(u uow.UnitOfWork, repo Repository, sink audit.Sink, calendar workday.Calendar, logger ...*zap.Logger) Service {
	l := zap.L().Named("timelog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timelog.service")
	}
	return &service{
		uow:      u,
		repo:     repo,
		audit:    sink,
		calendar: calendar,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) GetActive(ctx context.Context, caller domain.Caller) (*TimeLogResponse, error) {
	t, err := s.repo.FindActiveByUser(ctx, caller.OrganizationID, caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := MapToResponse(*t)
	return &resp, nil
}

func (s *service) ClockIn(ctx context.Context, caller domain.Caller) (TimeLogResponse, error) {
	_, err := s.repo.FindActiveByUser(ctx, caller.OrganizationID, caller.UserID)
	if err == nil {
		return TimeLogResponse{}, timelogerrors.ErrAlreadyClockedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return TimeLogResponse{}, err
	}

	now := s.now()
	t := &TimeLog{
		ID:             uuid.New(),
		UserID:         caller.UserID,
		OrganizationID: caller.OrganizationID,
		StartTime:      now,
		Type:           domain.TimeLogWork,
		Status:         domain.StatusApproved,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		if apperror.UniqueConstraint(err) == openLogConstraint {
			return TimeLogResponse{}, timelogerrors.ErrAlreadyClockedIn
		}
		s.logger.Error("clock in failed", zap.String("user_id", caller.UserID.String()), zap.Error(err))
		return TimeLogResponse{}, err
	}

	s.logger.Info("clock in", zap.String("user_id", caller.UserID.String()), zap.String("time_log_id", t.ID.String()))
	return MapToResponse(*t), nil
}

func (s *service) ClockOut(ctx context.Context, caller domain.Caller) (TimeLogResponse, error) {
	t, err := s.close(ctx, s.repo, caller.OrganizationID, caller.UserID)
	if err != nil {
		return TimeLogResponse{}, err
	}
	s.logger.Info("clock out",
		zap.String("user_id", caller.UserID.String()),
		zap.String("time_log_id", t.ID.String()),
		zap.Int64("duration", *t.Duration),
	)
	return MapToResponse(*t), nil
}

// AdminClockOut closes another member's running timer.
func (s *service) AdminClockOut(ctx context.Context, caller domain.Caller, userID string) (TimeLogResponse, error) {
	if !caller.IsAdmin() {
		return TimeLogResponse{}, timelogerrors.ErrForbidden
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return TimeLogResponse{}, timelogerrors.ErrInvalidUserID
	}

	var closed *TimeLog
	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		t, err := s.close(ctx, s.repo.WithTx(tx), caller.OrganizationID, uid)
		if err != nil {
			return err
		}
		closed = t
		return s.audit.Record(ctx, tx, audit.Entry{
			Caller:     caller,
			Action:     audit.ActionAdminClockOut,
			EntityType: "TimeLog",
			EntityID:   t.ID.String(),
			New: map[string]any{
				"user_id":  uid.String(),
				"end_time": t.EndTime,
				"duration": t.Duration,
			},
		})
	})
	if err != nil {
		s.logger.Warn("admin clock out failed", zap.String("user_id", userID), zap.Error(err))
		return TimeLogResponse{}, err
	}
	return MapToResponse(*closed), nil
}

func (s *service) close(ctx context.Context, repo Repository, organizationID, userID uuid.UUID) (*TimeLog, error) {
	t, err := repo.FindActiveByUser(ctx, organizationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, timelogerrors.ErrNoActiveTimer
		}
		return nil, err
	}

	end := s.now()
	duration := WholeSeconds(t.StartTime, end)
	rows, err := repo.Close(ctx, t.ID, end, duration)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, timelogerrors.ErrNoActiveTimer
	}
	t.EndTime = &end
	t.Duration = &duration
	return t, nil
}

func (s *service) History(ctx context.Context, caller domain.Caller) ([]TimeLogResponse, error) {
	logs, err := s.repo.FindHistory(ctx, caller.UserID, HistoryLimit)
	if err != nil {
		s.logger.Error("load timesheet failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(logs), nil
}

func (s *service) LiveFeed(ctx context.Context, caller domain.Caller) ([]LiveEntryResponse, error) {
	if !caller.IsApprover() {
		return nil, timelogerrors.ErrForbidden
	}
	logs, err := s.repo.FindActiveFeed(ctx, caller)
	if err != nil {
		s.logger.Error("load live feed failed", zap.Error(err))
		return nil, err
	}
	return mapToLiveResponse(logs), nil
}

// CreateManualEntry files a past interval for review. It stays PENDING until
// an approver resolves it.
func (s *service) CreateManualEntry(ctx context.Context, caller domain.Caller, req ManualEntryRequest) (TimeLogResponse, error) {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return TimeLogResponse{}, timelogerrors.ErrInvalidTime
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return TimeLogResponse{}, timelogerrors.ErrInvalidTime
	}
	if !end.After(start) {
		return TimeLogResponse{}, timelogerrors.ErrEndBeforeStart
	}
	// LEAVE rows only come from approved leave requests, which debit the ledger.
	logType := domain.TimeLogWork
	if req.Type != "" && domain.TimeLogType(req.Type) != domain.TimeLogWork {
		return TimeLogResponse{}, timelogerrors.ErrInvalidType
	}

	now := s.now()
	duration := WholeSeconds(start, end)
	t := &TimeLog{
		ID:             uuid.New(),
		UserID:         caller.UserID,
		OrganizationID: caller.OrganizationID,
		StartTime:      start,
		EndTime:        &end,
		Duration:       &duration,
		Type:           logType,
		Status:         domain.StatusPending,
		IsManual:       true,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, t); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, audit.Entry{
			Caller:     caller,
			Action:     audit.ActionCreateManualTimeLog,
			EntityType: "TimeLog",
			EntityID:   t.ID.String(),
			New:        MapToResponse(*t),
		})
	})
	if err != nil {
		s.logger.Warn("manual entry failed", zap.String("user_id", caller.UserID.String()), zap.Error(err))
		return TimeLogResponse{}, err
	}
	return MapToResponse(*t), nil
}

// Stats reports month-to-date approved time and open correction requests.
func (s *service) Stats(ctx context.Context, caller domain.Caller) (StatsResponse, error) {
	now := s.now().In(s.calendar.Location())
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.calendar.Location())
	to := from.AddDate(0, 1, 0)

	total, err := s.repo.SumApprovedSeconds(ctx, caller.UserID, from, to)
	if err != nil {
		return StatsResponse{}, err
	}
	pending, err := s.repo.CountPendingCorrections(ctx, caller.UserID)
	if err != nil {
		return StatsResponse{}, err
	}
	return StatsResponse{PeriodStart: from, TotalSeconds: total, PendingCorrections: pending}, nil
}
