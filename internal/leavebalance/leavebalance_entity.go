package leavebalance

import (
	"time"

	"am-hris/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeaveBalance struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_user_type"`
	Type      domain.LeaveType `gorm:"type:varchar(16);not null;uniqueIndex:uq_leave_balance_user_type"`
	Balance   decimal.Decimal  `gorm:"type:numeric(6,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// DefaultAllocations is what every new staff member starts with.
func DefaultAllocations() map[domain.LeaveType]decimal.Decimal {
	return map[domain.LeaveType]decimal.Decimal{
		domain.LeaveVacation: decimal.NewFromInt(5),
		domain.LeaveSick:     decimal.NewFromInt(5),
		domain.LeaveEarned:   decimal.Zero,
	}
}
