package correction

import (
	"time"

	"am-hris/internal/domain"
	"am-hris/internal/timelog"

	"github.com/google/uuid"
)

// TimeCorrection asks for a logged interval to be rewritten. It is immutable
// once it leaves PENDING.
type TimeCorrection struct {
	ID                 uuid.UUID     `gorm:"column:id;type:uuid;primaryKey"`
	TimeLogID          uuid.UUID     `gorm:"column:time_log_id;type:uuid;not null;index"`
	RequestedStartTime *time.Time    `gorm:"column:requested_start_time;type:timestamptz"`
	RequestedEndTime   *time.Time    `gorm:"column:requested_end_time;type:timestamptz"`
	Reason             string        `gorm:"column:reason;type:text;not null"`
	Status             domain.Status `gorm:"column:status;type:varchar(16);not null;default:PENDING"`
	ProcessedByID      *uuid.UUID    `gorm:"column:processed_by_id;type:uuid"`
	ProcessedAt        *time.Time    `gorm:"column:processed_at;type:timestamptz"`
	CreatedAt          time.Time     `gorm:"column:created_at"`
	UpdatedAt          time.Time     `gorm:"column:updated_at"`

	TimeLog *timelog.TimeLog `gorm:"foreignKey:TimeLogID;references:ID"`
}

func (TimeCorrection) TableName() string {
	return "time_corrections"
}
