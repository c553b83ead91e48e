package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Action string

const (
	ActionCreateStaff          Action = "CREATE_STAFF"
	ActionUpdateStaff          Action = "UPDATE_STAFF"
	ActionDeleteStaff          Action = "DELETE_STAFF"
	ActionResetPassword        Action = "RESET_PASSWORD"
	ActionUpdateLeaveBalance   Action = "UPDATE_LEAVE_BALANCE"
	ActionCreateLeaveRequest   Action = "CREATE_LEAVE_REQUEST"
	ActionCancelLeaveRequest   Action = "CANCEL_LEAVE_REQUEST"
	ActionApproveCorrection    Action = "APPROVE_CORRECTION"
	ActionRejectCorrection     Action = "REJECT_CORRECTION"
	ActionApproveManualEntry   Action = "APPROVE_MANUAL_ENTRY"
	ActionRejectManualEntry    Action = "REJECT_MANUAL_ENTRY"
	ActionApproveLeaveRequest  Action = "APPROVE_LEAVE_REQUEST"
	ActionRejectLeaveRequest   Action = "REJECT_LEAVE_REQUEST"
	ActionAdminClockOut        Action = "ADMIN_CLOCK_OUT"
	ActionInitializeSystem     Action = "INITIALIZE_SYSTEM"
	ActionCompleteOnboarding   Action = "COMPLETE_ONBOARDING"
	ActionRequestCorrection    Action = "REQUEST_CORRECTION"
	ActionCreateManualTimeLog  Action = "CREATE_MANUAL_TIME_LOG"
)

// AuditLog rows are append-only; there is no update or delete path.
type AuditLog struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID      `gorm:"type:uuid;not null;index"`
	ActorID        *uuid.UUID     `gorm:"type:uuid"`
	ActorName      string         `gorm:"not null"`
	ActorEmail     string         `gorm:"not null"`
	Action         Action         `gorm:"type:varchar(64);not null"`
	EntityType     string         `gorm:"type:varchar(64);not null"`
	EntityID       string         `gorm:"type:varchar(64);not null"`
	OldValue       datatypes.JSON `gorm:"type:jsonb"`
	NewValue       datatypes.JSON `gorm:"type:jsonb"`
	IPAddress      string
	UserAgent      string
	CreatedAt      time.Time `gorm:"not null;index"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
