package app

import (
	"fmt"
	"text/tabwriter"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/aussiebroadwan/grantstore/internal/auth/service"
	"github.com/spf13/cobra"
)

func newClientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage registered OAuth2 clients",
	}
	cmd.AddCommand(newClientsAddCmd(), newClientsListCmd(), newClientsDeleteCmd())
	return cmd
}

func newClientsAddCmd() *cobra.Command {
	var in service.ClientInput
	var clientType string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a client",
		Long: `Register a client. Web applications are confidential: a secret is generated
and printed once. It cannot be recovered later, only rotated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openAuthStore()
			if err != nil {
				return err
			}
			defer s.Close()

			in.Type = domain.ClientType(clientType)
			svc := &service.ClientService{Store: s}
			client, secret, err := svc.CreateClient(cmd.Context(), in)
			if err != nil {
				return err
			}

			cmd.Printf("client_id:     %s\n", client.ID)
			if secret != "" {
				cmd.Printf("client_secret: %s\n", secret)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in.ID, "id", "", "Client id (generated when empty)")
	cmd.Flags().StringVar(&in.Name, "name", "", "Display name shown on the consent screen")
	cmd.Flags().StringVar(&in.Description, "description", "", "Description shown on the consent screen")
	cmd.Flags().StringVar(&in.RedirectURI, "redirect-uri", "", "Registered redirect URI")
	cmd.Flags().StringVar(&clientType, "type", string(domain.ClientTypeWebApplication),
		"web_application, user_agent_based_application or native_application")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("redirect-uri")
	return cmd
}

func newClientsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openAuthStore()
			if err != nil {
				return err
			}
			defer s.Close()

			clients, err := (&service.ClientService{Store: s}).ListClients(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tREDIRECT URI")
			for _, c := range clients {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Type, c.RedirectURI)
			}
			return w.Flush()
		},
	}
}

func newClientsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <client-id>",
		Short: "Delete a client with its approvals, tokens and codes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openAuthStore()
			if err != nil {
				return err
			}
			defer s.Close()

			deleted, err := (&service.ClientService{Store: s}).DeleteClient(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("client %q not found", args[0])
			}
			cmd.Printf("deleted %s\n", args[0])
			return nil
		},
	}
}
