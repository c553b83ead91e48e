package leavebalance

import (
	"context"
	"errors"

	"am-hris/internal/audit"
	"am-hris/internal/domain"
	leavebalanceerrors "am-hris/internal/leavebalance/errors"
	"am-hris/internal/shared/uow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leavebalance_service.go -destination=mock/leavebalance_service_mock.go -package=mock
type Service interface {
	GetForUser(ctx context.Context, caller domain.Caller, userID string) ([]BalanceResponse, error)
	SetBalance(ctx context.Context, caller domain.Caller, userID string, leaveType string, req SetBalanceRequest) (BalanceResponse, error)
}

type service struct {
	uow    uow.UnitOfWork
	repo   Repository
	audit  audit.Sink
	logger *zap.Logger
}

func NewService(u uow.UnitOfWork, repo Repository, sink audit.Sink, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.service")
	}
	return &service{uow: u, repo: repo, audit: sink, logger: l}
}

func (s *service) GetForUser(ctx context.Context, caller domain.Caller, userID string) ([]BalanceResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, leavebalanceerrors.ErrInvalidUserID
	}
	if uid != caller.UserID {
		if !caller.IsAdmin() {
			return nil, leavebalanceerrors.ErrForbidden
		}
		ok, err := s.repo.UserInOrganization(ctx, uid, caller.OrganizationID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, leavebalanceerrors.ErrUserNotFound
		}
	}

	balances, err := s.repo.FindAllByUser(ctx, uid)
	if err != nil {
		s.logger.Error("list balances failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return MapToListResponse(balances), nil
}

// SetBalance overwrites a balance directly. It skips the approval floor check
// but still refuses negative values.
func (s *service) SetBalance(ctx context.Context, caller domain.Caller, userID string, leaveType string, req SetBalanceRequest) (BalanceResponse, error) {
	if !caller.IsAdmin() {
		return BalanceResponse{}, leavebalanceerrors.ErrForbidden
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidUserID
	}
	lt := domain.LeaveType(leaveType)
	if !lt.Valid() {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidLeaveType
	}
	amount, err := decimal.NewFromString(req.Balance)
	if err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidBalance
	}
	if amount.IsNegative() {
		return BalanceResponse{}, leavebalanceerrors.ErrNegativeBalance
	}

	var result LeaveBalance
	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		ok, err := qtx.UserInOrganization(ctx, uid, caller.OrganizationID)
		if err != nil {
			return err
		}
		if !ok {
			return leavebalanceerrors.ErrUserNotFound
		}

		var before *BalanceResponse
		current, err := qtx.FindByUserAndType(ctx, uid, lt, true)
		switch {
		case err == nil:
			b := mapToResponse(*current)
			before = &b
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		updated, err := qtx.Set(ctx, uid, lt, amount)
		if err != nil {
			return err
		}
		result = *updated

		return s.audit.Record(ctx, tx, audit.Entry{
			Caller:     caller,
			Action:     audit.ActionUpdateLeaveBalance,
			EntityType: "LeaveBalance",
			EntityID:   uid.String() + ":" + string(lt),
			Old:        before,
			New:        mapToResponse(result),
		})
	})
	if err != nil {
		s.logger.Warn("set balance failed",
			zap.String("user_id", userID),
			zap.String("type", leaveType),
			zap.Error(err),
		)
		return BalanceResponse{}, err
	}

	s.logger.Info("set balance success",
		zap.String("user_id", userID),
		zap.String("type", leaveType),
		zap.String("balance", amount.StringFixed(2)),
	)
	return mapToResponse(result), nil
}
