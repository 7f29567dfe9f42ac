// Package repomanager vends seal and share repositories for a storage
// backend and runs units of work inside a transaction.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/sealkeeper/internal/server/repositories/seals"
	"github.com/dmitrijs2005/sealkeeper/internal/server/repositories/shares"
)

// Repositories is the set of repositories bound to one handle, either the
// pool or a transaction.
type Repositories struct {
	Seals  seals.Repository
	Shares shares.Repository
}

// RepositoryManager is implemented by the PostgreSQL and in-memory backends.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	// Repos returns repositories outside any transaction.
	Repos() Repositories
	// WithTx runs fn with repositories bound to one transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
	Close() error
}
