package payroll

import (
	"context"
	"time"

	"am-hris/internal/tenant"
	"am-hris/internal/timelog"
	"am-hris/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	FindMembers(ctx context.Context, organizationID uuid.UUID) ([]user.Ref, error)
	FindLogs(ctx context.Context, organizationID uuid.UUID, from, until time.Time) ([]LogEntry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindMembers lists every user of the organization with their manager, ordered
// by name.
func (r *repository) FindMembers(ctx context.Context, organizationID uuid.UUID) ([]user.Ref, error) {
	var members []user.Ref
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Preload("Manager").
		Order("name ASC").
		Find(&members).Error
	return members, err
}

// FindLogs returns logs whose start falls in [from, until], both inclusive.
func (r *repository) FindLogs(ctx context.Context, organizationID uuid.UUID, from, until time.Time) ([]LogEntry, error) {
	var entries []LogEntry
	err := r.db.WithContext(ctx).
		Model(&timelog.TimeLog{}).
		Scopes(tenant.Scope(organizationID)).
		Select("user_id", "duration", "status", "is_manual").
		Where("start_time >= ? AND start_time <= ?", from, until).
		Scan(&entries).Error
	return entries, err
}
