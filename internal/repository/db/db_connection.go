package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const pingTimeout = 5 * time.Second

// InitDB opens the database for driver ("sqlite" or "postgres") and ensures
// tables exist. dsn is a file path for sqlite and a connection string for postgres.
func InitDB(driver, dsn string) (*sql.DB, Dialect, error) {
	d, err := DialectFor(driver)
	if err != nil {
		return nil, nil, err
	}

	conn, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	switch d.(type) {
	case SQLite:
		// SQLite is not great with many writers
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		for _, pragma := range []string{
			"PRAGMA journal_mode = WAL;",
			"PRAGMA foreign_keys = ON;",
			"PRAGMA busy_timeout = 5000;",
		} {
			if _, err := conn.ExecContext(ctx, pragma); err != nil {
				_ = conn.Close()
				return nil, nil, fmt.Errorf("set %s: %w", pragma, err)
			}
		}
	case Postgres:
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(5)
		conn.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := ensureSchema(ctx, conn, d); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return conn, d, nil
}

func ensureSchema(ctx context.Context, conn *sql.DB, d Dialect) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range d.Schema() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
