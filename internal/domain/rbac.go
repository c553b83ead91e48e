package domain

// EnforceRequest is a single authorization question asked of the policy engine.
type EnforceRequest struct {
	Role     Role
	Resource string
	Action   string
}

const (
	ResourceStaff      = "staff"
	ResourceTimeLog    = "timelog"
	ResourceCorrection = "correction"
	ResourceLeave      = "leave"
	ResourceBalance    = "balance"
	ResourceApproval   = "approval"
	ResourcePayroll    = "payroll"
	ResourceAudit      = "audit"
)

const (
	ActionRead    = "read"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionApprove = "approve"
	ActionManage  = "manage"

	ActionResetPassword = "reset_password"
)
