package audit

import (
	"context"

	auditerrors "am-hris/internal/audit/errors"
	"am-hris/internal/domain"

	"go.uber.org/zap"
)

// FeedLimit caps the audit feed.
const FeedLimit = 100

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, caller domain.Caller) ([]AuditLogResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, caller domain.Caller) ([]AuditLogResponse, error) {
	if !caller.IsAdmin() {
		return nil, auditerrors.ErrForbidden
	}

	logs, err := s.repo.ListRecent(ctx, caller.OrganizationID, FeedLimit)
	if err != nil {
		s.logger.Error("list audit logs failed", zap.String("organization_id", caller.OrganizationID.String()), zap.Error(err))
		return nil, err
	}

	out := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, mapToResponse(l))
	}
	return out, nil
}
