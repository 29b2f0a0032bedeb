// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler declares the narrowest unit of work it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PackageRepoFactory provides access to the package repository within
	// a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// ActionRepoFactory provides access to the audit-trail repository
	// within a transaction.
	ActionRepoFactory interface {
		ActionRepository() ports.ActionRepository
	}

	// EvidenceRepoFactory provides access to the evidence repository
	// within a transaction.
	EvidenceRepoFactory interface {
		EvidenceRepository() ports.EvidenceRepository
	}

	// DirectoryRepoFactory provides access to the driver and warehouse
	// directory within a transaction.
	DirectoryRepoFactory interface {
		DirectoryRepository() ports.DirectoryRepository
	}

	// PackageUoW manages transactions for package-only operations.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
		DirectoryRepoFactory
	}

	// PackageUoWFactory creates new package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// CreatePackageUoW manages transactions for package creation, which
	// reads orders and writes the package with its item snapshots.
	CreatePackageUoW interface {
		TxManager
		OrderRepoFactory
		PackageRepoFactory
		DirectoryRepoFactory
	}

	// CreatePackageUoWFactory creates new creation unit of work instances.
	CreatePackageUoWFactory interface {
		Create() CreatePackageUoW
	}

	// TransitionUoW manages transactions for workflow transitions: the
	// order write, the package advance, the audit append, and the
	// evidence link all commit or roll back together.
	TransitionUoW interface {
		TxManager
		OrderRepoFactory
		PackageRepoFactory
		ActionRepoFactory
		EvidenceRepoFactory
	}

	// TransitionUoWFactory creates new transition unit of work instances.
	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// ActionUoW manages transactions for plain audit appends that do not
	// move any status.
	ActionUoW interface {
		TxManager
		OrderRepoFactory
		ActionRepoFactory
		EvidenceRepoFactory
	}

	// ActionUoWFactory creates new audit unit of work instances.
	ActionUoWFactory interface {
		Create() ActionUoW
	}

	// EvidenceUoW manages transactions for evidence housekeeping.
	EvidenceUoW interface {
		TxManager
		EvidenceRepoFactory
	}

	// EvidenceUoWFactory creates new evidence unit of work instances.
	EvidenceUoWFactory interface {
		Create() EvidenceUoW
	}
)
