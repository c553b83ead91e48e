package leave

import (
	"context"
	"time"

	"am-hris/internal/domain"
	"am-hris/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, organizationID, id uuid.UUID) (*LeaveRequest, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]LeaveRequest, error)
	FindPending(ctx context.Context, caller domain.Caller) ([]LeaveRequest, error)
	HasOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.Status, processedBy *uuid.UUID, processedAt *time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Omit("User").Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, organizationID, id uuid.UUID) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Preload("User").
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindByUser(ctx context.Context, userID uuid.UUID) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindPending(ctx context.Context, caller domain.Caller) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(caller.OrganizationID, "leave_requests.organization_id"), tenant.Visible(caller, "leave_requests.user_id")).
		Where("leave_requests.status = ?", domain.StatusPending).
		Preload("User").
		Order("leave_requests.created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

// HasOverlap checks [start, end] against the user's PENDING and APPROVED
// requests, bounds inclusive.
func (r *repository) HasOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("user_id = ?", userID).
		Where("status IN ?", []domain.Status{domain.StatusPending, domain.StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Count(&count).Error
	return count > 0, err
}

// TransitionStatus flips status only while it still equals from. processedBy
// and processedAt are left untouched when nil (owner cancellation).
func (r *repository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.Status, processedBy *uuid.UUID, processedAt *time.Time) (int64, error) {
	updates := map[string]any{
		"status":     to,
		"updated_at": time.Now(),
	}
	if processedBy != nil {
		updates["processed_by_id"] = *processedBy
	}
	if processedAt != nil {
		updates["processed_at"] = *processedAt
	}
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}
