package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"am-hris/internal/audit"
	"am-hris/internal/domain"
	"am-hris/internal/leavebalance"
	"am-hris/internal/shared/apperror"
	"am-hris/internal/shared/uow"
	usererrors "am-hris/internal/user/errors"
	"am-hris/internal/workday"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const emailConstraint = "uq_users_email"

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	AddStaff(ctx context.Context, caller domain.Caller, req AddStaffRequest) (AddStaffResponse, error)
	List(ctx context.Context, caller domain.Caller) ([]StaffResponse, error)
	GetManagers(ctx context.Context, caller domain.Caller) ([]ManagerOption, error)
	Update(ctx context.Context, caller domain.Caller, id string, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
	ResetPassword(ctx context.Context, caller domain.Caller, id string) error
	GetProfile(ctx context.Context, caller domain.Caller) (ProfileResponse, error)
}

type service struct {
	uow      uow.UnitOfWork
	repo     Repository
	balances leavebalance.Repository
	audit    audit.Sink
	rdb      redis.Cmdable
	sf       *singleflight.Group
	logger   *zap.Logger
}

// NewService wires the staff directory. rdb may be nil, which disables the
// manager options cache.
func NewService(
	u uow.UnitOfWork,
	repo Repository,
	balances leavebalance.Repository,
	sink audit.Sink,
	rdb redis.Cmdable,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		uow:      u,
		repo:     repo,
		balances: balances,
		audit:    sink,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) AddStaff(ctx context.Context, caller domain.Caller, req AddStaffRequest) (AddStaffResponse, error) {
	if !caller.IsAdmin() {
		return AddStaffResponse{}, usererrors.ErrForbidden
	}
	s.logger.Debug("add staff requested",
		zap.String("organization_id", caller.OrganizationID.String()),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	role := domain.Role(req.Role)
	if !role.Valid() {
		return AddStaffResponse{}, usererrors.ErrInvalidRole
	}
	managerID, err := parseManagerID(req.ManagerID)
	if err != nil {
		return AddStaffResponse{}, err
	}
	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return AddStaffResponse{}, err
	}
	hired, err := parseOptionalDate(req.DateHired)
	if err != nil {
		return AddStaffResponse{}, err
	}
	hours, err := parseWorkHours(req.RegularWorkHours)
	if err != nil {
		return AddStaffResponse{}, err
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return AddStaffResponse{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return AddStaffResponse{}, err
	}

	now := time.Now()
	u := &User{
		ID:                    uuid.New(),
		OrganizationID:        caller.OrganizationID,
		ManagerID:             managerID,
		Name:                  strings.TrimSpace(req.Name),
		Email:                 strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:          string(hash),
		Role:                  role,
		RequirePasswordChange: true,
		Position:              req.Position,
		PhoneNumber:           req.PhoneNumber,
		Address:               req.Address,
		DateOfBirth:           dob,
		DateHired:             hired,
		RegularWorkHours:      hours,
		JoinedAt:              now,
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if managerID != nil {
			if err := s.ensureManagerInOrganization(ctx, qtx, caller.OrganizationID, *managerID); err != nil {
				return err
			}
		}
		if err := qtx.Create(ctx, u); err != nil {
			return err
		}
		if err := s.balances.WithTx(tx).CreateDefaults(ctx, u.ID); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, audit.Entry{
			Caller:     caller,
			Action:     audit.ActionCreateStaff,
			EntityType: "User",
			EntityID:   u.ID.String(),
			New:        mapToResponse(*u),
		})
	})
	if err != nil {
		if apperror.UniqueConstraint(err) == emailConstraint {
			return AddStaffResponse{}, usererrors.ErrUserAlreadyExists
		}
		s.logger.Warn("add staff failed", zap.String("email", u.Email), zap.Error(err))
		return AddStaffResponse{}, err
	}

	s.invalidateManagerOptions(ctx, caller.OrganizationID)
	s.logger.Info("add staff success",
		zap.String("user_id", u.ID.String()),
		zap.String("organization_id", caller.OrganizationID.String()),
	)

	return AddStaffResponse{Staff: mapToResponse(*u), TempPassword: tempPassword}, nil
}

func (s *service) List(ctx context.Context, caller domain.Caller) ([]StaffResponse, error) {
	users, err := s.repo.FindAllByOrganization(ctx, caller.OrganizationID)
	if err != nil {
		s.logger.Error("list staff failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(users), nil
}

func (s *service) Update(ctx context.Context, caller domain.Caller, id string, req UpdateStaffRequest) (StaffResponse, error) {
	if !caller.IsAdmin() {
		return StaffResponse{}, usererrors.ErrForbidden
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return StaffResponse{}, usererrors.ErrInvalidUserID
	}
	role := domain.Role(req.Role)
	if !role.Valid() {
		return StaffResponse{}, usererrors.ErrInvalidRole
	}
	managerID, err := parseManagerID(req.ManagerID)
	if err != nil {
		return StaffResponse{}, err
	}
	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return StaffResponse{}, err
	}
	hired, err := parseOptionalDate(req.DateHired)
	if err != nil {
		return StaffResponse{}, err
	}
	hours, err := parseWorkHours(req.RegularWorkHours)
	if err != nil {
		return StaffResponse{}, err
	}
	overrides, err := parseBalanceOverrides(req)
	if err != nil {
		return StaffResponse{}, err
	}

	var updated User
	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		u, err := qtx.FindByID(ctx, caller.OrganizationID, uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usererrors.ErrUserNotFound
			}
			return err
		}
		before := mapToResponse(*u)

		if managerID != nil {
			if err := s.ensureManagerInOrganization(ctx, qtx, caller.OrganizationID, *managerID); err != nil {
				return err
			}
			if err := s.ensureNoCycle(ctx, qtx, uid, *managerID); err != nil {
				return err
			}
		}

		u.Name = strings.TrimSpace(req.Name)
		u.Role = role
		u.ManagerID = managerID
		u.Position = req.Position
		u.PhoneNumber = req.PhoneNumber
		u.Address = req.Address
		u.DateOfBirth = dob
		u.DateHired = hired
		u.RegularWorkHours = hours

		if err := qtx.Update(ctx, u); err != nil {
			return err
		}

		btx := s.balances.WithTx(tx)
		for _, lt := range domain.LeaveTypes {
			amount, ok := overrides[lt]
			if !ok {
				continue
			}
			if _, err := btx.Set(ctx, uid, lt, amount); err != nil {
				return err
			}
		}

		updated = *u
		after := mapToResponse(updated)
		return s.audit.Record(ctx, tx, audit.Entry{
			Caller:     caller,
			Action:     audit.ActionUpdateStaff,
			EntityType: "User",
			EntityID:   uid.String(),
			Old:        before,
			New:        map[string]any{"staff": after, "balances": balanceAudit(overrides)},
		})
	})
	if err != nil {
		s.logger.Warn("update staff failed", zap.String("user_id", id), zap.Error(err))
		return StaffResponse{}, err
	}

	s.invalidateManagerOptions(ctx, caller.OrganizationID)
	s.logger.Info("update staff success", zap.String("user_id", id))
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if !caller.IsAdmin() {
		return usererrors.ErrForbidden
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return usererrors.ErrInvalidUserID
	}
	if uid == caller.UserID {
		return usererrors.ErrCannotDeleteSelf
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		u, err := qtx.FindByID(ctx, caller.OrganizationID, uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usererrors.ErrUserNotFound
			}
			return err
		}
		if _, err := qtx.Delete(ctx, caller.OrganizationID, uid); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, audit.Entry{
			Caller:     caller,
			Action:     audit.ActionDeleteStaff,
			EntityType: "User",
			EntityID:   uid.String(),
			Old:        mapToResponse(*u),
		})
	})
	if err != nil {
		s.logger.Warn("delete staff failed", zap.String("user_id", id), zap.Error(err))
		return err
	}

	s.invalidateManagerOptions(ctx, caller.OrganizationID)
	s.logger.Info("delete staff success", zap.String("user_id", id))
	return nil
}

// ResetPassword forces the user through onboarding again on next login.
// Leaders may only reset their direct reports.
func (s *service) ResetPassword(ctx context.Context, caller domain.Caller, id string) error {
	if !caller.IsApprover() {
		return usererrors.ErrForbidden
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return usererrors.ErrInvalidUserID
	}

	return s.uow.Do(ctx, func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		u, err := qtx.FindByID(ctx, caller.OrganizationID, uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usererrors.ErrUserNotFound
			}
			return err
		}
		if caller.Role == domain.RoleLeader && (u.ManagerID == nil || *u.ManagerID != caller.UserID) {
			return usererrors.ErrUserNotFound
		}
		if err := qtx.SetRequirePasswordChange(ctx, uid, true); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, audit.Entry{
			Caller:     caller,
			Action:     audit.ActionResetPassword,
			EntityType: "User",
			EntityID:   uid.String(),
			New:        map[string]bool{"require_password_change": true},
		})
	})
}

func (s *service) GetProfile(ctx context.Context, caller domain.Caller) (ProfileResponse, error) {
	u, err := s.repo.FindByIDWithManager(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, usererrors.ErrUserNotFound
		}
		return ProfileResponse{}, err
	}

	balances, err := s.balances.FindAllByUser(ctx, u.ID)
	if err != nil {
		return ProfileResponse{}, err
	}

	resp := ProfileResponse{
		StaffResponse: mapToResponse(*u),
		Balances:      leavebalance.MapToListResponse(balances),
	}
	if u.Manager != nil {
		resp.Manager = &ManagerSummary{Name: u.Manager.Name, Email: u.Manager.Email}
	}
	return resp, nil
}

func (s *service) ensureManagerInOrganization(ctx context.Context, repo Repository, organizationID, managerID uuid.UUID) error {
	if _, err := repo.FindByID(ctx, organizationID, managerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrManagerNotFound
		}
		return err
	}
	return nil
}

// ensureNoCycle walks the chain upward from managerID. Reaching userID, or
// any node twice, means the chain would not terminate.
func (s *service) ensureNoCycle(ctx context.Context, repo Repository, userID, managerID uuid.UUID) error {
	visited := map[uuid.UUID]struct{}{userID: {}}
	current := &managerID
	for current != nil {
		if _, seen := visited[*current]; seen {
			return usererrors.ErrManagerCycle
		}
		visited[*current] = struct{}{}

		next, err := repo.ManagerIDOf(ctx, *current)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		current = next
	}
	return nil
}

func parseManagerID(raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, usererrors.ErrInvalidManagerID
	}
	return &id, nil
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(workday.DateLayout, *raw)
	if err != nil {
		return nil, usererrors.ErrInvalidDate
	}
	return &t, nil
}

func parseWorkHours(raw *string) (decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return DefaultWorkHours, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, usererrors.ErrInvalidDecimal
	}
	return d, nil
}

func parseBalanceOverrides(req UpdateStaffRequest) (map[domain.LeaveType]decimal.Decimal, error) {
	out := make(map[domain.LeaveType]decimal.Decimal)
	for lt, raw := range map[domain.LeaveType]*string{
		domain.LeaveVacation: req.VacationBalance,
		domain.LeaveSick:     req.SickBalance,
		domain.LeaveEarned:   req.EarnedBalance,
	} {
		if raw == nil || *raw == "" {
			continue
		}
		d, err := decimal.NewFromString(*raw)
		if err != nil {
			return nil, usererrors.ErrInvalidDecimal
		}
		if d.IsNegative() {
			return nil, usererrors.ErrNegativeBalance
		}
		out[lt] = d
	}
	return out, nil
}

func balanceAudit(overrides map[domain.LeaveType]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(overrides))
	for lt, d := range overrides {
		out[string(lt)] = d.StringFixed(2)
	}
	return out
}
