package tenant

import (
	"am-hris/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope restricts a query to a single organization. column defaults to
// organization_id; pass a qualified name when the query joins.
func Scope(organizationID uuid.UUID, column ...string) func(db *gorm.DB) *gorm.DB {
	col := "organization_id"
	if len(column) > 0 && column[0] != "" {
		col = column[0]
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(col+" = ?", organizationID)
	}
}

// ReportsTo keeps rows whose owning user (userColumn) is a direct report of managerID.
func ReportsTo(managerID uuid.UUID, userColumn string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(userColumn+" IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Table("users").Select("id").Where("manager_id = ?", managerID),
		)
	}
}

// Visible applies the hierarchy rule used by approver views: admins see the
// whole organization, leaders only their direct reports.
func Visible(caller domain.Caller, userColumn string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if caller.Role == domain.RoleLeader {
			return db.Scopes(ReportsTo(caller.UserID, userColumn))
		}
		return db
	}
}
