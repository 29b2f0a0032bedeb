package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every logical
// write (order transition + package advance + audit append + evidence
// link) runs inside exactly one unit of work, so the trail can never get
// ahead of or behind the status fields.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Safe to defer after Begin; a no-op once committed.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// PackageRepository returns a PackageRepository bound to the current
	// transaction.
	PackageRepository() PackageRepository

	// ActionRepository returns an ActionRepository bound to the current
	// transaction.
	ActionRepository() ActionRepository

	// EvidenceRepository returns an EvidenceRepository bound to the
	// current transaction.
	EvidenceRepository() EvidenceRepository

	// DirectoryRepository returns a DirectoryRepository bound to the
	// current transaction.
	DirectoryRepository() DirectoryRepository
}
