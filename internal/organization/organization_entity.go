package organization

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the tenant every user, log and request belongs to.
type Organization struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(150);not null"`
	Slug      string    `gorm:"column:slug;type:varchar(150);not null;uniqueIndex:uq_organizations_slug"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Organization) TableName() string {
	return "organizations"
}
