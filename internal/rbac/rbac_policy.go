package rbac

import "am-hris/internal/domain"

type PermissionRow struct {
	Role     domain.Role
	Resource string
	Action   string
}

type InheritanceRow struct {
	Role    domain.Role
	Inherit domain.Role
}

// DefaultInheritance: ADMIN can do everything a LEADER can, LEADER everything
// an EMPLOYEE can.
func DefaultInheritance() []InheritanceRow {
	return []InheritanceRow{
		{Role: domain.RoleAdmin, Inherit: domain.RoleLeader},
		{Role: domain.RoleLeader, Inherit: domain.RoleEmployee},
	}
}

func DefaultPermissions() []PermissionRow {
	emp, lead, adm := domain.RoleEmployee, domain.RoleLeader, domain.RoleAdmin
	return []PermissionRow{
		{emp, domain.ResourceStaff, domain.ActionRead},
		{emp, domain.ResourceTimeLog, domain.ActionRead},
		{emp, domain.ResourceTimeLog, domain.ActionCreate},
		{emp, domain.ResourceCorrection, domain.ActionRead},
		{emp, domain.ResourceCorrection, domain.ActionCreate},
		{emp, domain.ResourceLeave, domain.ActionRead},
		{emp, domain.ResourceLeave, domain.ActionCreate},
		{emp, domain.ResourceLeave, domain.ActionUpdate},
		{emp, domain.ResourceBalance, domain.ActionRead},

		{lead, domain.ResourceApproval, domain.ActionRead},
		{lead, domain.ResourceApproval, domain.ActionApprove},
		{lead, domain.ResourceTimeLog, domain.ActionManage},
		{lead, domain.ResourceStaff, domain.ActionResetPassword},

		{adm, domain.ResourceStaff, domain.ActionCreate},
		{adm, domain.ResourceStaff, domain.ActionUpdate},
		{adm, domain.ResourceStaff, domain.ActionDelete},
		{adm, domain.ResourceStaff, domain.ActionManage},
		{adm, domain.ResourceTimeLog, domain.ActionUpdate},
		{adm, domain.ResourceBalance, domain.ActionUpdate},
		{adm, domain.ResourcePayroll, domain.ActionRead},
		{adm, domain.ResourceAudit, domain.ActionRead},
	}
}
