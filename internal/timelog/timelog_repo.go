package timelog

import (
	"context"
	"time"

	"am-hris/internal/domain"
	"am-hris/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timelog_repo.go -destination=mock/timelog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, t *TimeLog) error
	CreateBatch(ctx context.Context, logs []TimeLog) error
	FindByID(ctx context.Context, organizationID, id uuid.UUID) (*TimeLog, error)
	FindActiveByUser(ctx context.Context, organizationID, userID uuid.UUID) (*TimeLog, error)
	Close(ctx context.Context, id uuid.UUID, end time.Time, duration int64) (int64, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.Status, processedBy uuid.UUID, processedAt time.Time) (int64, error)
	ApplyCorrection(ctx context.Context, id uuid.UUID, start time.Time, end *time.Time, duration *int64) error
	FindPendingManual(ctx context.Context, caller domain.Caller) ([]TimeLog, error)
	FindHistory(ctx context.Context, userID uuid.UUID, limit int) ([]TimeLog, error)
	FindActiveFeed(ctx context.Context, caller domain.Caller) ([]TimeLog, error)
	SumApprovedSeconds(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error)
	CountPendingCorrections(ctx context.Context, userID uuid.UUID) (int64, error)
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

func (r *repository) Create(ctx context.Context, t *TimeLog) error {
	return r.db.WithContext(ctx).Omit("User").Create(t).Error
}

func (r *repository) CreateBatch(ctx context.Context, logs []TimeLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("User").Create(&logs).Error
}

func (r *repository) FindByID(ctx context.Context, organizationID, id uuid.UUID) (*TimeLog, error) {
	var t TimeLog
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Preload("User").
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindActiveByUser(ctx context.Context, organizationID, userID uuid.UUID) (*TimeLog, error) {
	var t TimeLog
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("user_id = ? AND end_time IS NULL", userID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Close ends an open log; zero rows means it was already closed.
func (r *repository) Close(ctx context.Context, id uuid.UUID, end time.Time, duration int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&TimeLog{}).
		Where("id = ? AND end_time IS NULL", id).
		Updates(map[string]any{
			"end_time":   end,
			"duration":   duration,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

// TransitionStatus flips status only while it still equals from. The affected
// row count is how callers detect a concurrent or repeated decision.
func (r *repository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.Status, processedBy uuid.UUID, processedAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&TimeLog{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":          to,
			"processed_by_id": processedBy,
			"processed_at":    processedAt,
			"updated_at":      time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *repository) ApplyCorrection(ctx context.Context, id uuid.UUID, start time.Time, end *time.Time, duration *int64) error {
	return r.db.WithContext(ctx).
		Model(&TimeLog{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"start_time": start,
			"end_time":   end,
			"duration":   duration,
			"status":     domain.StatusApproved,
			"updated_at": time.Now(),
		}).Error
}

// FindPendingManual lists manual entries awaiting a decision that do not also
// carry a pending correction; those surface through the correction instead.
func (r *repository) FindPendingManual(ctx context.Context, caller domain.Caller) ([]TimeLog, error) {
	var logs []TimeLog
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(caller.OrganizationID, "time_logs.organization_id"), tenant.Visible(caller, "time_logs.user_id")).
		Preload("User").
		Where("time_logs.is_manual = ? AND time_logs.status = ?", true, domain.StatusPending).
		Where("NOT EXISTS (SELECT 1 FROM time_corrections tc WHERE tc.time_log_id = time_logs.id AND tc.status = ?)", domain.StatusPending).
		Order("time_logs.created_at DESC").
		Find(&logs).Error
	return logs, err
}

func (r *repository) FindHistory(ctx context.Context, userID uuid.UUID, limit int) ([]TimeLog, error) {
	var logs []TimeLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND end_time IS NOT NULL", userID).
		Order("start_time DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (r *repository) FindActiveFeed(ctx context.Context, caller domain.Caller) ([]TimeLog, error) {
	var logs []TimeLog
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(caller.OrganizationID, "time_logs.organization_id"), tenant.Visible(caller, "time_logs.user_id")).
		Preload("User.Manager").
		Where("time_logs.end_time IS NULL").
		Order("time_logs.start_time ASC").
		Find(&logs).Error
	return logs, err
}

func (r *repository) SumApprovedSeconds(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&TimeLog{}).
		Select("COALESCE(SUM(duration), 0)").
		Where("user_id = ? AND status = ? AND start_time >= ? AND start_time < ?", userID, domain.StatusApproved, from, to).
		Scan(&total).Error
	return total, err
}

func (r *repository) CountPendingCorrections(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("time_corrections").
		Joins("JOIN time_logs ON time_logs.id = time_corrections.time_log_id").
		Where("time_logs.user_id = ? AND time_corrections.status = ?", userID, domain.StatusPending).
		Count(&count).Error
	return count, err
}
