// Package migrations embeds the schema and applies it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var migrationsFS embed.FS

// Status reports the schema version before and after a run.
type Status struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return nil, fmt.Errorf("iofs.New: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres.WithInstance: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("migrate.NewWithInstance: %w", err)
	}
	return m, nil
}

// Up applies every pending migration.
func Up(db *sql.DB) (Status, error) {
	var status Status
	m, err := newMigrate(db)
	if err != nil {
		return status, err
	}

	status.PreMigrationVersion, err = version(m)
	if err != nil {
		return status, fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return status, fmt.Errorf("m.Up: %w", err)
	}

	status.PostMigrationVersion, err = version(m)
	if err != nil {
		return status, fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}
	return status, nil
}

// Steps moves the schema n migrations forward, or backward when n is negative.
func Steps(db *sql.DB, n int) (Status, error) {
	var status Status
	m, err := newMigrate(db)
	if err != nil {
		return status, err
	}

	status.PreMigrationVersion, err = version(m)
	if err != nil {
		return status, fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return status, fmt.Errorf("m.Steps: %w", err)
	}

	status.PostMigrationVersion, err = version(m)
	if err != nil {
		return status, fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}
	return status, nil
}

func version(m *migrate.Migrate) (uint, error) {
	v, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	return v, err
}
