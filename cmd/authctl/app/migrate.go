package app

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var authOnly, vootOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schemas",
		Long: `Apply the embedded migrations to the authorization server database and the
VOOT database. Running it against up to date databases is a no-op.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !vootOnly {
				s, err := openAuthStore()
				if err != nil {
					return err
				}
				_ = s.Close()
				cmd.Printf("migrated %s\n", authCfg.DatabaseFile)
			}
			if !authOnly {
				s, err := openVootStore()
				if err != nil {
					return err
				}
				_ = s.Close()
				cmd.Printf("migrated %s\n", vootCfg.DatabaseFile)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&authOnly, "auth-only", false, "Only migrate the authorization server database")
	cmd.Flags().BoolVar(&vootOnly, "voot-only", false, "Only migrate the VOOT database")
	cmd.MarkFlagsMutuallyExclusive("auth-only", "voot-only")
	return cmd
}
