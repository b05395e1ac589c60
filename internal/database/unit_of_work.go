package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UnitOfWork runs a group of writes as one transaction. Every write made
// through tx is committed when fn returns nil and discarded otherwise,
// including when fn panics.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx *gorm.DB) error) error
	// Reader returns a handle for reads outside any unit of work.
	Reader(ctx context.Context) *gorm.DB
}

type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a UnitOfWork backed by gorm transactions on db.
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn)
}

func (u *gormUnitOfWork) Reader(ctx context.Context) *gorm.DB {
	return u.db.WithContext(ctx)
}

// ForUpdate locks the selected rows until the surrounding transaction ends.
// SQLite has no row locks; its driver drops the clause and the single
// writer lock serializes transactions instead.
func ForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
