package leave

import (
	"time"

	"am-hris/internal/domain"
	"am-hris/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeaveRequest struct {
	ID             uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	UserID         uuid.UUID        `gorm:"column:user_id;type:uuid;not null;index:idx_leave_requests_user_dates"`
	OrganizationID uuid.UUID        `gorm:"column:organization_id;type:uuid;not null;index:idx_leave_requests_org_status"`
	Type           domain.LeaveType `gorm:"column:type;type:varchar(16);not null"`
	StartDate      time.Time        `gorm:"column:start_date;type:date;not null;index:idx_leave_requests_user_dates"`
	EndDate        time.Time        `gorm:"column:end_date;type:date;not null;index:idx_leave_requests_user_dates"`
	NetDays        decimal.Decimal  `gorm:"column:net_days;type:numeric(6,2);not null"`
	Reason         *string          `gorm:"column:reason;type:text"`
	Status         domain.Status    `gorm:"column:status;type:varchar(16);not null;default:PENDING;index:idx_leave_requests_org_status"`
	ProcessedByID  *uuid.UUID       `gorm:"column:processed_by_id;type:uuid"`
	ProcessedAt    *time.Time       `gorm:"column:processed_at;type:timestamptz"`
	CreatedAt      time.Time        `gorm:"column:created_at"`
	UpdatedAt      time.Time        `gorm:"column:updated_at"`

	User *user.Ref `gorm:"foreignKey:UserID;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
