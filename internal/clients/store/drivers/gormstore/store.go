// Package gormstore implements store.Store on top of gorm so the service can
// run against postgres (or any other gorm dialect) instead of the embedded
// sqlite database.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/clientbook/internal/clients/store"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNestedTx is returned when a transaction-scoped store is asked to open
// another transaction.
var ErrNestedTx = errors.New("gormstore: nested transactions are not supported")

type Store struct {
	db *gorm.DB
}

// Open connects through dialector. gorm's own logging is silenced, errors are
// returned to the caller and logged there.
func Open(dialector gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("gormstore: open: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenPostgres connects to the postgres database described by dsn.
func OpenPostgres(dsn string) (*Store, error) {
	return Open(postgres.Open(dsn))
}

// OpenSQLite opens a sqlite database through gorm. In-memory databases are
// pinned to one connection so every query sees the same schema.
func OpenSQLite(dsn string) (*Store, error) {
	s, err := Open(sqlite.Open(dsn))
	if err != nil {
		return nil, err
	}

	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		sqlDB, err := s.db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return s, nil
}

// ApplyMigrations creates or updates the client table from the record model.
func (s *Store) ApplyMigrations() error {
	return s.db.AutoMigrate(&clientRecord{})
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &txStore{db: tx}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after a successful commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Clients() store.Clients { return &clientsRepo{db: s.db} }

type txStore struct {
	db   *gorm.DB
	done bool
}

func (t *txStore) Clients() store.Clients { return &clientsRepo{db: t.db} }

func (t *txStore) Commit() error {
	t.done = true
	return t.db.Commit().Error
}

func (t *txStore) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.db.Rollback().Error
}

func (t *txStore) ApplyMigrations() error         { return nil }
func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, ErrNestedTx
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return ErrNestedTx
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}
