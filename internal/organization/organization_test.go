package organization_test

import (
	"context"
	"testing"

	"am-hris/internal/domain"
	"am-hris/internal/organization"
	organizationerrors "am-hris/internal/organization/errors"
	"am-hris/internal/organization/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Acme Corp":          "acme-corp",
		"  Café Ünïon, Ltd.": "cafe-union-ltd",
		"R&D -- Team 42":     "r-d-team-42",
		"!!!":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, organization.Slugify(in), in)
	}
}

func TestService_GetMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := organization.NewService(repo)
	caller := domain.Caller{UserID: uuid.New(), OrganizationID: uuid.New(), Role: domain.RoleEmployee}

	t.Run("found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), caller.OrganizationID).
			Return(&organization.Organization{ID: caller.OrganizationID, Name: "Acme", Slug: "acme"}, nil)

		resp, err := svc.GetMine(context.Background(), caller)

		require.NoError(t, err)
		assert.Equal(t, "acme", resp.Slug)
	})

	t.Run("missing", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), caller.OrganizationID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetMine(context.Background(), caller)

		assert.ErrorIs(t, err, organizationerrors.ErrOrganizationNotFound)
	})
}
