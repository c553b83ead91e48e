package leavebalance

import (
	"context"
	"time"

	"am-hris/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leavebalance_repo.go -destination=mock/leavebalance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateDefaults(ctx context.Context, userID uuid.UUID) error
	FindByUserAndType(ctx context.Context, userID uuid.UUID, leaveType domain.LeaveType, forUpdate bool) (*LeaveBalance, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]LeaveBalance, error)
	Decrement(ctx context.Context, id uuid.UUID, days decimal.Decimal) error
	Set(ctx context.Context, userID uuid.UUID, leaveType domain.LeaveType, balance decimal.Decimal) (*LeaveBalance, error)
	UserInOrganization(ctx context.Context, userID, organizationID uuid.UUID) (bool, error)
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

func (r *repository) CreateDefaults(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	rows := make([]LeaveBalance, 0, len(domain.LeaveTypes))
	allocations := DefaultAllocations()
	for _, t := range domain.LeaveTypes {
		rows = append(rows, LeaveBalance{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      t,
			Balance:   allocations[t],
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

// FindByUserAndType optionally takes a row lock (SELECT ... FOR UPDATE) that
// is held until the surrounding transaction ends.
func (r *repository) FindByUserAndType(ctx context.Context, userID uuid.UUID, leaveType domain.LeaveType, forUpdate bool) (*LeaveBalance, error) {
	q := r.db.WithContext(ctx)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var b LeaveBalance
	if err := q.Where("user_id = ? AND type = ?", userID, leaveType).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("type ASC").
		Find(&balances).Error
	return balances, err
}

// Decrement subtracts in a single statement; the caller has already checked
// the floor under the row lock.
func (r *repository) Decrement(ctx context.Context, id uuid.UUID, days decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&LeaveBalance{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance - ?", days),
			"updated_at": time.Now(),
		}).Error
}

func (r *repository) Set(ctx context.Context, userID uuid.UUID, leaveType domain.LeaveType, balance decimal.Decimal) (*LeaveBalance, error) {
	now := time.Now()
	row := LeaveBalance{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      leaveType,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"balance", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) UserInOrganization(ctx context.Context, userID, organizationID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("id = ? AND organization_id = ?", userID, organizationID).
		Count(&count).Error
	return count > 0, err
}
