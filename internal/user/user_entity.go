package user

import (
	"time"

	"am-hris/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultWorkHours applies when a user is created without explicit hours.
var DefaultWorkHours = decimal.NewFromInt(8)

// User is a staff member. Rows are hard-deleted; dependent rows go with them
// through ON DELETE CASCADE.
type User struct {
	ID                    uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	OrganizationID        uuid.UUID       `gorm:"column:organization_id;type:uuid;not null;index"`
	ManagerID             *uuid.UUID      `gorm:"column:manager_id;type:uuid;index"`
	Name                  string          `gorm:"column:name;type:varchar(255);not null"`
	Email                 string          `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	PasswordHash          string          `gorm:"column:password_hash;type:text;not null"`
	Role                  domain.Role     `gorm:"column:role;type:varchar(16);not null;default:EMPLOYEE"`
	RequirePasswordChange bool            `gorm:"column:require_password_change;not null;default:false"`
	Position              string          `gorm:"column:position;type:varchar(255)"`
	PhoneNumber           string          `gorm:"column:phone_number;type:varchar(64)"`
	Address               string          `gorm:"column:address;type:text"`
	DateOfBirth           *time.Time      `gorm:"column:date_of_birth;type:date"`
	DateHired             *time.Time      `gorm:"column:date_hired;type:date"`
	RegularWorkHours      decimal.Decimal `gorm:"column:regular_work_hours;type:numeric(4,2);not null;default:8"`
	JoinedAt              time.Time       `gorm:"column:joined_at;not null"`
	CreatedAt             time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time       `gorm:"column:updated_at;autoUpdateTime"`

	Manager *User `gorm:"foreignKey:ManagerID;references:ID"`
}

func (User) TableName() string {
	return "users"
}

func (u User) Caller() domain.Caller {
	return domain.Caller{
		UserID:         u.ID,
		OrganizationID: u.OrganizationID,
		Role:           u.Role,
		Name:           u.Name,
		Email:          u.Email,
	}
}
