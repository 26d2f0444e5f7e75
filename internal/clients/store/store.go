package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/clientbook/internal/clients/domain"
)

var (
	ErrNotFound    = errors.New("store: not found")
	ErrInvalidSort = errors.New("store: invalid sort property")
	ErrInvalidPage = errors.New("store: invalid page request")
)

// Store is the root data access interface. Concrete drivers (sqlite, gorm)
// implement this. Repositories hang off it so a transaction-scoped Store can
// hand out the same repositories bound to the transaction.
type Store interface {
	Clients() Clients

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	// FindByID returns ErrNotFound when no client has the id.
	FindByID(ctx context.Context, id int64) (domain.Client, error)

	// GetReference returns a handle to the client with id without touching
	// the database. Existence is only checked by Reference.Resolve.
	GetReference(ctx context.Context, id int64) Reference

	// DeleteByID returns ErrNotFound when no row was removed.
	DeleteByID(ctx context.Context, id int64) error

	// Save inserts c when c.ID is zero and returns it with the generated id.
	// Otherwise it replaces every column of the existing row, returning
	// ErrNotFound if the row is gone.
	Save(ctx context.Context, c domain.Client) (domain.Client, error)

	// FindAll returns one page of every client.
	FindAll(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Client], error)

	// FindByIncomeGreaterThan returns one page of the clients whose income is
	// strictly greater than threshold.
	FindByIncomeGreaterThan(ctx context.Context, threshold float64, req domain.PageRequest) (domain.Page[domain.Client], error)
}

// Reference is a lazily loaded client handle.
type Reference interface {
	ID() int64

	// Resolve loads the client, returning ErrNotFound if it does not exist.
	Resolve(ctx context.Context) (domain.Client, error)
}
