package app

import (
	"fmt"

	authapp "github.com/aussiebroadwan/grantstore/internal/auth/app"
	authsqlite "github.com/aussiebroadwan/grantstore/internal/auth/store/drivers/sqlite"
	vootapp "github.com/aussiebroadwan/grantstore/internal/voot/app"
	vootsqlite "github.com/aussiebroadwan/grantstore/internal/voot/store/drivers/sqlite"
	"github.com/aussiebroadwan/grantstore/pkg/cryptox"
)

// Server configuration as loaded from the environment, with the database
// and pepper paths overridden by flags.
var (
	authCfg authapp.Config
	vootCfg vootapp.Config
)

// openAuthStore opens and migrates the authorization server database.
func openAuthStore() (*authsqlite.Store, error) {
	cryptox.SetPepperPath(authCfg.PepperFile)

	s, err := authsqlite.NewStore(authCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", authCfg.DatabaseFile, err)
	}
	if err := s.ApplyMigrations(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("migrate %s: %w", authCfg.DatabaseFile, err)
	}
	return s, nil
}

// openVootStore opens and migrates the VOOT database.
func openVootStore() (*vootsqlite.Store, error) {
	s, err := vootsqlite.NewStore(vootCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", vootCfg.DatabaseFile, err)
	}
	if err := s.ApplyMigrations(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("migrate %s: %w", vootCfg.DatabaseFile, err)
	}
	return s, nil
}
