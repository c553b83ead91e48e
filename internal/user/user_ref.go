package user

import "github.com/google/uuid"

// Ref is the read-only projection of a user embedded by other features'
// queries (feeds, approvals).
type Ref struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Name      string     `gorm:"column:name"`
	Email     string     `gorm:"column:email"`
	ManagerID *uuid.UUID `gorm:"column:manager_id"`
	Manager   *Ref       `gorm:"foreignKey:ManagerID;references:ID"`
}

func (Ref) TableName() string {
	return "users"
}
