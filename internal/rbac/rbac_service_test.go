package rbac

import (
	"testing"

	"am-hris/internal/domain"
	"am-hris/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	e, err := infra.NewEnforcer()
	require.NoError(t, err)

	svc := NewService(e)
	require.NoError(t, svc.LoadPolicy(DefaultInheritance(), DefaultPermissions()))
	return svc
}

func TestService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		role     domain.Role
		resource string
		action   string
		want     bool
	}{
		{domain.RoleEmployee, domain.ResourceLeave, domain.ActionCreate, true},
		{domain.RoleEmployee, domain.ResourceApproval, domain.ActionApprove, false},
		{domain.RoleLeader, domain.ResourceApproval, domain.ActionApprove, true},
		{domain.RoleLeader, domain.ResourceLeave, domain.ActionCreate, true},
		{domain.RoleLeader, domain.ResourcePayroll, domain.ActionRead, false},
		{domain.RoleAdmin, domain.ResourcePayroll, domain.ActionRead, true},
		{domain.RoleAdmin, domain.ResourceApproval, domain.ActionApprove, true},
		{domain.RoleAdmin, domain.ResourceTimeLog, domain.ActionCreate, true},
		{domain.Role("GUEST"), domain.ResourceStaff, domain.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+" "+tt.resource+":"+tt.action, func(t *testing.T) {
			got, err := svc.Enforce(domain.EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_PermissionsIncludeInherited(t *testing.T) {
	svc := newTestService(t)

	perms, err := svc.Permissions(domain.RoleLeader)
	require.NoError(t, err)

	assert.Contains(t, perms, PermissionResponse{Resource: domain.ResourceApproval, Action: domain.ActionApprove})
	assert.Contains(t, perms, PermissionResponse{Resource: domain.ResourceLeave, Action: domain.ActionCreate})
	assert.NotContains(t, perms, PermissionResponse{Resource: domain.ResourceAudit, Action: domain.ActionRead})
}
