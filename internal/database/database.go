package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"interview-bank/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqlitePragmas are applied to every pooled connection through the DSN.
// foreign_keys is per-connection in SQLite, so it cannot be set once.
var sqlitePragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

// Open connects to the configured store and verifies the connection.
func Open(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn := cfg.DSN
	if cfg.Driver == config.DriverSQLite {
		dsn = SQLiteDSN(dsn)
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	return db, nil
}

// SQLiteDSN appends the connection pragmas to a SQLite DSN unless the DSN
// already sets them.
func SQLiteDSN(dsn string) string {
	var params []string
	for _, p := range sqlitePragmas {
		if !strings.Contains(dsn, p) {
			params = append(params, "_pragma="+p)
		}
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}
