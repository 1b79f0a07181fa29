package database

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Direction selects which way Migrate moves the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Migrate applies the migrations in dir of source. Up applies all pending
// migrations; Down reverts the most recent one. An already current schema
// is not an error.
//
// Migrations run on their own connection, opened from cfg and closed
// before Migrate returns, so the service pool is never borrowed from.
func Migrate(cfg *Config, source fs.FS, dir string, direction Direction) (err error) {
	if direction != Up && direction != Down {
		return fmt.Errorf("invalid migration direction: %s", direction)
	}

	m, err := newMigrate(cfg, source, dir)
	if err != nil {
		return err
	}
	defer closeMigrate(m, &err)

	if direction == Up {
		err = m.Up()
	} else {
		err = m.Steps(-1)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}
	return nil
}

// Version reports the current schema version and whether it is dirty.
// A database without any applied migration reports version 0.
func Version(cfg *Config, source fs.FS, dir string) (v uint, dirty bool, err error) {
	m, err := newMigrate(cfg, source, dir)
	if err != nil {
		return 0, false, err
	}
	defer closeMigrate(m, &err)

	v, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// MigrationURL returns the connection URL in the form the golang-migrate
// pgx/v5 driver registers for.
func (c *Config) MigrationURL() string {
	return "pgx5" + strings.TrimPrefix(c.Dsn(), "postgres")
}

func newMigrate(cfg *Config, source fs.FS, dir string) (*migrate.Migrate, error) {
	src, err := iofs.New(source, dir)
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.MigrationURL())
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("migrate init: %w", err)
	}
	return m, nil
}

// closeMigrate releases the migration source and connection, reporting a
// close failure only when no earlier error occurred.
func closeMigrate(m *migrate.Migrate, err *error) {
	srcErr, dbErr := m.Close()
	if *err != nil {
		return
	}
	if srcErr != nil {
		*err = fmt.Errorf("close migration source: %w", srcErr)
	} else if dbErr != nil {
		*err = fmt.Errorf("close migration connection: %w", dbErr)
	}
}
