package uow

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// UnitOfWork runs fn inside one SERIALIZABLE transaction. fn's error (or a
// panic) rolls everything back; otherwise the transaction commits once.
//
//go:generate mockgen -source=uow.go -destination=mock/uow_mock.go -package=mock
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormUnitOfWork struct {
	db   *gorm.DB
	opts *sql.TxOptions
}

func New(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db, opts: &sql.TxOptions{Isolation: sql.LevelSerializable}}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn, u.opts)
}
