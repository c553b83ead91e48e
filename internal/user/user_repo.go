package user

import (
	"context"

	"am-hris/internal/domain"
	"am-hris/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, organizationID, id uuid.UUID) (*User, error)
	FindByIDWithManager(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAllByOrganization(ctx context.Context, organizationID uuid.UUID) ([]User, error)
	FindManagers(ctx context.Context, organizationID uuid.UUID) ([]User, error)
	ManagerIDOf(ctx context.Context, id uuid.UUID) (*uuid.UUID, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, organizationID, id uuid.UUID) (int64, error)
	SetRequirePasswordChange(ctx context.Context, id uuid.UUID, required bool) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
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

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Omit("Manager").Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, organizationID, id uuid.UUID) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByIDWithManager(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("Manager").
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID uuid.UUID) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("joined_at DESC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindManagers(ctx context.Context, organizationID uuid.UUID) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Select("id", "name", "email", "role").
		Scopes(tenant.Scope(organizationID)).
		Where("role IN ?", []domain.Role{domain.RoleAdmin, domain.RoleLeader}).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

// ManagerIDOf returns nil for a user without a manager.
func (r *repository) ManagerIDOf(ctx context.Context, id uuid.UUID) (*uuid.UUID, error) {
	var u User
	err := r.db.WithContext(ctx).Select("manager_id").First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return u.ManagerID, nil
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Omit("Manager").Save(u).Error
}

func (r *repository) Delete(ctx context.Context, organizationID, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("id = ?", id).
		Delete(&User{})
	return res.RowsAffected, res.Error
}

func (r *repository) SetRequirePasswordChange(ctx context.Context, id uuid.UUID, required bool) error {
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Update("require_password_change", required).Error
}

func (r *repository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password_hash":           passwordHash,
			"require_password_change": false,
		}).Error
}
