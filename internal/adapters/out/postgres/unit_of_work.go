// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. Every logical write in the fulfillment core (an order
// transition, its package advance, the audit append, and the evidence
// link) runs inside exactly one unit of work, so the trail can never get
// ahead of or behind the status fields.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.PackageRepository().Update(ctx, pkg); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each Create() call returns a fresh instance with its own transaction
// state, so concurrent operations stay isolated. Rollback after a commit
// is a no-op error and safe to defer.
package postgres

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/actionrepo"
	"fulfillment/internal/adapters/out/postgres/directoryrepo"
	"fulfillment/internal/adapters/out/postgres/evidencerepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/preprepo"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the
// fulfillment repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction. Calling Begin again on an
// instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the main connection when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// PackageRepository returns a package repository bound to the current
// transaction.
func (uow *GormUnitOfWork) PackageRepository() ports.PackageRepository {
	return preprepo.NewGormPackageRepository(uow.conn())
}

// ActionRepository returns an audit-trail repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ActionRepository() ports.ActionRepository {
	return actionrepo.NewGormActionRepository(uow.conn())
}

// EvidenceRepository returns an evidence repository bound to the current
// transaction.
func (uow *GormUnitOfWork) EvidenceRepository() ports.EvidenceRepository {
	return evidencerepo.NewGormEvidenceRepository(uow.conn())
}

// DirectoryRepository returns a directory repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DirectoryRepository() ports.DirectoryRepository {
	return directoryrepo.NewGormDirectoryRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
