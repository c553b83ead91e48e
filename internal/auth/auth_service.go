package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"am-hris/internal/audit"
	autherrors "am-hris/internal/auth/errors"
	"am-hris/internal/domain"
	"am-hris/internal/leavebalance"
	"am-hris/internal/organization"
	organizationerrors "am-hris/internal/organization/errors"
	"am-hris/internal/shared/apperror"
	"am-hris/internal/shared/uow"
	"am-hris/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const MinPasswordLength = 8

// TokenIssuer signs access tokens for an authenticated caller.
type TokenIssuer interface {
	Issue(caller domain.Caller) (string, time.Time, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Setup(ctx context.Context, req SetupRequest) (SetupResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	CompleteOnboarding(ctx context.Context, caller domain.Caller, req OnboardingRequest) error
}

type service struct {
	uow      uow.UnitOfWork
	orgs     organization.Repository
	users    user.Repository
	balances leavebalance.Repository
	audit    audit.Sink
	issuer   TokenIssuer
	logger   *zap.Logger
}

func NewService(
	uow uow.UnitOfWork,
	orgs organization.Repository,
	users user.Repository,
	balances leavebalance.Repository,
	sink audit.Sink,
	issuer TokenIssuer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		uow:      uow,
		orgs:     orgs,
		users:    users,
		balances: balances,
		audit:    sink,
		issuer:   issuer,
		logger:   l,
	}
}

// Setup creates the first organization and its administrator. It is refused
// once any organization exists.
func (s *service) Setup(ctx context.Context, req SetupRequest) (SetupResponse, error) {
	name := strings.TrimSpace(req.OrganizationName)
	slug := organization.Slugify(name)
	if slug == "" {
		return SetupResponse{}, organizationerrors.ErrInvalidName
	}
	if len(req.Password) < MinPasswordLength {
		return SetupResponse{}, autherrors.ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return SetupResponse{}, err
	}

	now := time.Now()
	org := &organization.Organization{ID: uuid.New(), Name: name, Slug: slug}
	admin := &user.User{
		ID:               uuid.New(),
		OrganizationID:   org.ID,
		Name:             strings.TrimSpace(req.Name),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:     string(hash),
		Role:             domain.RoleAdmin,
		RegularWorkHours: user.DefaultWorkHours,
		JoinedAt:         now,
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		orgs := s.orgs.WithTx(tx)
		exists, err := orgs.Any(ctx)
		if err != nil {
			return err
		}
		if exists {
			return autherrors.ErrAlreadyInitialized
		}
		if err := orgs.Create(ctx, org); err != nil {
			return err
		}
		if err := s.users.WithTx(tx).Create(ctx, admin); err != nil {
			if apperror.IsUniqueViolation(err) {
				return autherrors.ErrEmailTaken
			}
			return err
		}
		if err := s.balances.WithTx(tx).CreateDefaults(ctx, admin.ID); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, audit.Entry{
			Caller:     admin.Caller(),
			Action:     audit.ActionInitializeSystem,
			EntityType: "Organization",
			EntityID:   org.ID.String(),
			New:        map[string]any{"name": org.Name, "slug": org.Slug, "admin": admin.Email},
		})
	})
	if err != nil {
		s.logger.Warn("system setup failed", zap.Error(err))
		return SetupResponse{}, err
	}

	s.logger.Info("system initialized",
		zap.String("organization_id", org.ID.String()),
		zap.String("slug", org.Slug),
	)
	return SetupResponse{
		Organization: organization.MapToResponse(*org),
		Admin:        mapAccount(admin),
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.issuer.Issue(u.Caller())
	if err != nil {
		s.logger.Error("issue access token failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return LoginResponse{}, err
	}

	s.logger.Info("user logged in", zap.String("user_id", u.ID.String()))
	return LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        mapAccount(u),
	}, nil
}

// CompleteOnboarding replaces a temporary password and clears the change flag.
func (s *service) CompleteOnboarding(ctx context.Context, caller domain.Caller, req OnboardingRequest) error {
	if len(req.Password) < MinPasswordLength {
		return autherrors.ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.uow.Do(ctx, func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		if _, err := users.FindByID(ctx, caller.OrganizationID, caller.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return autherrors.ErrUserNotFound
			}
			return err
		}
		if err := users.UpdatePassword(ctx, caller.UserID, string(hash)); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, audit.Entry{
			Caller:     caller,
			Action:     audit.ActionCompleteOnboarding,
			EntityType: "User",
			EntityID:   caller.UserID.String(),
			New:        map[string]any{"requirePasswordChange": false},
		})
	})
}

func mapAccount(u *user.User) AccountResponse {
	return AccountResponse{
		ID:                    u.ID.String(),
		OrganizationID:        u.OrganizationID.String(),
		Name:                  u.Name,
		Email:                 u.Email,
		Role:                  string(u.Role),
		RequirePasswordChange: u.RequirePasswordChange,
	}
}
