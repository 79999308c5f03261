package sqlite

import (
	"errors"

	"github.com/aussiebroadwan/grantstore/internal/voot/store"
	"github.com/aussiebroadwan/grantstore/internal/voot/store/drivers/sqlite/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ApplyMigrations brings the VOOT schema up to date, seeding the member,
// manager and admin roles on first run.
func (s *Store) ApplyMigrations() error {
	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return store.Fault("migrate.driver", err)
	}

	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return store.Fault("migrate.source", err)
	}

	instance, err := migrate.NewWithInstance("iofs", source, "", driver)
	if err != nil {
		return store.Fault("migrate.init", err)
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return store.Fault("migrate.up", err)
	}

	return nil
}
