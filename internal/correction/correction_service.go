package correction

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"am-hris/internal/audit"
	correctionerrors "am-hris/internal/correction/errors"
	"am-hris/internal/domain"
	"am-hris/internal/shared/apperror"
	"am-hris/internal/shared/uow"
	"am-hris/internal/timelog"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	MinReasonLength   = 5
	pendingConstraint = "uq_time_corrections_pending_per_log"
)

//go:generate mockgen -source=correction_service.go -destination=mock/correction_service_mock.go -package=mock
type Service interface {
	RequestCorrection(ctx context.Context, caller domain.Caller, req RequestCorrectionRequest) (CorrectionResponse, error)
	ListMine(ctx context.Context, caller domain.Caller) ([]CorrectionResponse, error)
}

type service struct {
	uow    uow.UnitOfWork
	repo   Repository
	logs   timelog.Repository
	audit  audit.Sink
	logger *zap.Logger
}

func NewService(u uow.UnitOfWork, repo Repository, logs timelog.Repository, sink audit.Sink, logger ...*zap.Logger) Service {
	l := zap.L().Named("correction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("correction.service")
	}
	return &service{
		uow:    u,
		repo:   repo,
		logs:   logs,
		audit:  sink,
		logger: l,
	}
}

func (s *service) RequestCorrection(ctx context.Context, caller domain.Caller, req RequestCorrectionRequest) (CorrectionResponse, error) {
	logID, err := uuid.Parse(req.TimeLogID)
	if err != nil {
		return CorrectionResponse{}, correctionerrors.ErrInvalidTimeLogID
	}
	reason := strings.TrimSpace(req.Reason)
	if utf8.RuneCountInString(reason) < MinReasonLength {
		return CorrectionResponse{}, correctionerrors.ErrReasonTooShort
	}
	start, err := parseOptionalTime(req.RequestedStartTime)
	if err != nil {
		return CorrectionResponse{}, err
	}
	end, err := parseOptionalTime(req.RequestedEndTime)
	if err != nil {
		return CorrectionResponse{}, err
	}
	if start != nil && end != nil && !end.After(*start) {
		return CorrectionResponse{}, correctionerrors.ErrEndBeforeStart
	}

	now := time.Now()
	c := &TimeCorrection{
		ID:                 uuid.New(),
		TimeLogID:          logID,
		RequestedStartTime: start,
		RequestedEndTime:   end,
		Reason:             reason,
		Status:             domain.StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		target, err := s.logs.WithTx(tx).FindByID(ctx, caller.OrganizationID, logID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return correctionerrors.ErrTimeLogNotFound
			}
			return err
		}
		if target.UserID != caller.UserID {
			return correctionerrors.ErrNotOwner
		}

		qtx := s.repo.WithTx(tx)
		pending, err := qtx.HasPending(ctx, logID)
		if err != nil {
			return err
		}
		if pending {
			return correctionerrors.ErrPendingExists
		}
		if err := qtx.Create(ctx, c); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, audit.Entry{
			Caller:     caller,
			Action:     audit.ActionRequestCorrection,
			EntityType: "TimeCorrection",
			EntityID:   c.ID.String(),
			Old:        timelog.MapToResponse(*target),
			New:        mapToResponse(*c),
		})
	})
	if err != nil {
		if apperror.UniqueConstraint(err) == pendingConstraint {
			return CorrectionResponse{}, correctionerrors.ErrPendingExists
		}
		s.logger.Warn("request correction failed",
			zap.String("time_log_id", req.TimeLogID),
			zap.Error(err),
		)
		return CorrectionResponse{}, err
	}

	s.logger.Info("correction requested",
		zap.String("correction_id", c.ID.String()),
		zap.String("time_log_id", logID.String()),
	)
	return mapToResponse(*c), nil
}

func (s *service) ListMine(ctx context.Context, caller domain.Caller) ([]CorrectionResponse, error) {
	corrections, err := s.repo.FindByUser(ctx, caller.UserID)
	if err != nil {
		s.logger.Error("list corrections failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(corrections), nil
}

func parseOptionalTime(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(*raw))
	if err != nil {
		return nil, correctionerrors.ErrInvalidTime
	}
	return &t, nil
}
