package app

import (
	"fmt"

	"github.com/aussiebroadwan/clientbook/internal/clients/store"
	"github.com/aussiebroadwan/clientbook/internal/clients/store/drivers/gormstore"
	"github.com/aussiebroadwan/clientbook/internal/clients/store/drivers/sqlite"
)

// OpenStore connects to the configured database and brings its schema up
// to date.
func OpenStore(cfg Config) (store.Store, error) {
	var (
		st  store.Store
		err error
	)

	switch cfg.DatabaseDriver {
	case DriverPostgres:
		st, err = gormstore.OpenPostgres(cfg.DatabaseURL)
	case DriverSQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
		st, err = sqlite.NewStore(dsn)
	default:
		return nil, fmt.Errorf("%w: unknown database driver %q", ErrInvalidConfig, cfg.DatabaseDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return st, nil
}
