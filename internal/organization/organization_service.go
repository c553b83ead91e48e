package organization

import (
	"context"
	"errors"

	"am-hris/internal/domain"
	organizationerrors "am-hris/internal/organization/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	GetMine(ctx context.Context, caller domain.Caller) (OrganizationResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetMine(ctx context.Context, caller domain.Caller) (OrganizationResponse, error) {
	org, err := s.repo.FindByID(ctx, caller.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrganizationResponse{}, organizationerrors.ErrOrganizationNotFound
		}
		return OrganizationResponse{}, err
	}
	return MapToResponse(*org), nil
}
