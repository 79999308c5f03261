package app

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/grantstore/internal/voot/fixtures"
	"github.com/spf13/cobra"
)

func newVootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voot",
		Short: "Manage VOOT groups and memberships",
	}
	cmd.AddCommand(newVootSeedCmd())
	return cmd
}

func newVootSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <fixtures.yaml>",
		Short: "Load groups and memberships from a YAML file",
		Long: `Load groups and memberships from a YAML file of the form

  groups:
    - id: devs
      title: Developers
      members:
        - id: alice
          role: manager   # member (default), manager or admin

Existing groups or memberships are reported as errors; seeding stops there.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fh, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer fh.Close()

			file, err := fixtures.Parse(fh)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			s, err := openVootStore()
			if err != nil {
				return err
			}
			defer s.Close()

			stats, err := fixtures.Apply(cmd.Context(), s, file)
			cmd.Printf("added %d groups, %d memberships\n", stats.Groups, stats.Memberships)
			return err
		},
	}
}
