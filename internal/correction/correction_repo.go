package correction

import (
	"context"
	"time"

	"am-hris/internal/domain"
	"am-hris/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=correction_repo.go -destination=mock/correction_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, c *TimeCorrection) error
	FindByID(ctx context.Context, organizationID, id uuid.UUID) (*TimeCorrection, error)
	HasPending(ctx context.Context, timeLogID uuid.UUID) (bool, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]TimeCorrection, error)
	FindPending(ctx context.Context, caller domain.Caller) ([]TimeCorrection, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.Status, processedBy uuid.UUID, processedAt time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, c *TimeCorrection) error {
	return r.db.WithContext(ctx).Omit("TimeLog").Create(c).Error
}

// FindByID resolves through the target log, so a correction is only visible
// inside the organization that owns the log.
func (r *repository) FindByID(ctx context.Context, organizationID, id uuid.UUID) (*TimeCorrection, error) {
	var c TimeCorrection
	err := r.db.WithContext(ctx).
		Joins("JOIN time_logs ON time_logs.id = time_corrections.time_log_id").
		Scopes(tenant.Scope(organizationID, "time_logs.organization_id")).
		Preload("TimeLog.User").
		First(&c, "time_corrections.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) HasPending(ctx context.Context, timeLogID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TimeCorrection{}).
		Where("time_log_id = ? AND status = ?", timeLogID, domain.StatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByUser(ctx context.Context, userID uuid.UUID) ([]TimeCorrection, error) {
	var corrections []TimeCorrection
	err := r.db.WithContext(ctx).
		Joins("JOIN time_logs ON time_logs.id = time_corrections.time_log_id").
		Where("time_logs.user_id = ?", userID).
		Preload("TimeLog").
		Order("time_corrections.created_at DESC").
		Find(&corrections).Error
	return corrections, err
}

func (r *repository) FindPending(ctx context.Context, caller domain.Caller) ([]TimeCorrection, error) {
	var corrections []TimeCorrection
	err := r.db.WithContext(ctx).
		Joins("JOIN time_logs ON time_logs.id = time_corrections.time_log_id").
		Scopes(tenant.Scope(caller.OrganizationID, "time_logs.organization_id"), tenant.Visible(caller, "time_logs.user_id")).
		Where("time_corrections.status = ?", domain.StatusPending).
		Preload("TimeLog.User").
		Order("time_corrections.created_at DESC").
		Find(&corrections).Error
	return corrections, err
}

// TransitionStatus flips status only while it still equals from.
func (r *repository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.Status, processedBy uuid.UUID, processedAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&TimeCorrection{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":          to,
			"processed_by_id": processedBy,
			"processed_at":    processedAt,
			"updated_at":      time.Now(),
		})
	return res.RowsAffected, res.Error
}
