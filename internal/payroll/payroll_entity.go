package payroll

import (
	"am-hris/internal/domain"

	"github.com/google/uuid"
)

const (
	StatusReady      = "READY"
	StatusIncomplete = "INCOMPLETE"
)

// LogEntry is the slice of a time log the aggregation needs.
type LogEntry struct {
	UserID   uuid.UUID     `gorm:"column:user_id"`
	Duration *int64        `gorm:"column:duration"`
	Status   domain.Status `gorm:"column:status"`
	IsManual bool          `gorm:"column:is_manual"`
}
