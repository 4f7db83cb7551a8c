// Package db manages the PostgreSQL connection and row-level helpers for
// prompt and file records.
package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"promptstudio/internal/logging"
)

var Conn *sqlx.DB

// ErrNotConfigured is returned by helpers when no database connection was
// established at startup.
var ErrNotConfigured = errors.New("database not configured")

// Connect opens the PostgreSQL connection and pings it.
func Connect(databaseURL string) error {
	var err error
	Conn, err = sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	Conn.SetMaxOpenConns(10)
	Conn.SetMaxIdleConns(5)

	logging.L().Info("connected to database")
	return nil
}

// MigrationsUp runs pending schema migrations from the given directory.
func MigrationsUp(dir string) error {
	if Conn == nil {
		return ErrNotConfigured
	}

	driver, err := postgres.WithInstance(Conn.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	logging.L().Info("database migrations up to date")
	return nil
}
