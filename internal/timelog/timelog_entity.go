package timelog

import (
	"time"

	"am-hris/internal/domain"
	"am-hris/internal/user"

	"github.com/google/uuid"
)

type TimeLog struct {
	ID             uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	UserID         uuid.UUID          `gorm:"column:user_id;type:uuid;not null;index"`
	OrganizationID uuid.UUID          `gorm:"column:organization_id;type:uuid;not null;index"`
	StartTime      time.Time          `gorm:"column:start_time;type:timestamptz;not null"`
	EndTime        *time.Time         `gorm:"column:end_time;type:timestamptz"`
	Duration       *int64             `gorm:"column:duration"`
	Type           domain.TimeLogType `gorm:"column:type;type:varchar(16);not null;default:WORK"`
	Status         domain.Status      `gorm:"column:status;type:varchar(16);not null;default:APPROVED"`
	IsManual       bool               `gorm:"column:is_manual;not null;default:false"`
	Notes          *string            `gorm:"column:notes;type:text"`
	ProcessedByID  *uuid.UUID         `gorm:"column:processed_by_id;type:uuid"`
	ProcessedAt    *time.Time         `gorm:"column:processed_at;type:timestamptz"`
	CreatedAt      time.Time          `gorm:"column:created_at"`
	UpdatedAt      time.Time          `gorm:"column:updated_at"`

	User *user.Ref `gorm:"foreignKey:UserID;references:ID"`
}

func (TimeLog) TableName() string {
	return "time_logs"
}

// IsOpen reports whether the log is a running timer.
func (t TimeLog) IsOpen() bool {
	return t.EndTime == nil
}

// WholeSeconds truncates end-start to whole seconds.
func WholeSeconds(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Second)
}
