// Package app holds the authctl commands for operating grantstore databases
// directly, without going through the HTTP APIs.
package app

import (
	"errors"

	authapp "github.com/aussiebroadwan/grantstore/internal/auth/app"
	vootapp "github.com/aussiebroadwan/grantstore/internal/voot/app"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the authctl command tree. Flag defaults come from the
// same configuration the servers load, .env file included.
func NewRootCmd() *cobra.Command {
	var authErr, vootErr error
	authCfg, authErr = authapp.LoadConfig()
	vootCfg, vootErr = vootapp.LoadConfig()

	rootCmd := &cobra.Command{
		Use:          "authctl",
		Short:        "Administer grantstore databases",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return errors.Join(authErr, vootErr)
		},
	}

	rootCmd.PersistentFlags().StringVar(&authCfg.DatabaseFile, "auth-db", authCfg.DatabaseFile,
		"Path to the authorization server database")
	rootCmd.PersistentFlags().StringVar(&vootCfg.DatabaseFile, "voot-db", vootCfg.DatabaseFile,
		"Path to the VOOT database")
	rootCmd.PersistentFlags().StringVar(&authCfg.PepperFile, "pepper-file", authCfg.PepperFile,
		"File holding the client secret pepper")

	rootCmd.AddCommand(newMigrateCmd(), newClientsCmd(), newVootCmd())
	return rootCmd
}
